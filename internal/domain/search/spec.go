// Package search holds the typed search specification and result shapes
// for the market search pipeline.
package search

import "github.com/harvest-cloud/marketdex/internal/domain"

// Pagination bounds. Unparsable values degrade to defaults, never to errors.
const (
	DefaultLimit = 12
	MaxLimit     = 100
)

// Sort selects the result ordering.
type Sort string

const (
	// SortDefault is the composite ranking: rating descending (nulls last),
	// then name ascending.
	SortDefault Sort = "default"
	// SortRating orders by rating descending, nulls last.
	SortRating Sort = "rating"
	// SortName orders by name ascending.
	SortName Sort = "name"
	// SortDistance orders by haversine distance ascending. Requires Geo.
	SortDistance Sort = "distance"
)

// Geo is a center point plus radius. All three values are present together
// or the whole struct is absent from the Spec.
type Geo struct {
	Lat         float64
	Lng         float64
	RadiusMiles float64
}

// Spec is a validated, request-scoped search specification. Construct it
// with Normalize; it is used once and discarded.
type Spec struct {
	Text           string // lowercased free text, "" = no filter
	StateCode      string // uppercased, "" = no filter
	City           string // "" = no filter
	Products       []domain.Product
	PaymentMethods []domain.Payment
	DayOpen        domain.Day // "" = no filter
	Geo            *Geo
	Sort           Sort
	Page           int // >= 1
	Limit          int // [1, MaxLimit]
}

// HasGeo reports whether a radius search was requested.
func (s *Spec) HasGeo() bool { return s.Geo != nil }

// Offset is the store-level row offset for the requested page.
func (s *Spec) Offset() int { return (s.Page - 1) * s.Limit }
