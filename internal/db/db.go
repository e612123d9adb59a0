// Package db defines the storage contract for the market directory. The
// drivers under postgres/ and memory/ implement it; everything above speaks
// in terms of MarketQuery and MarketRow and never sees SQL.
package db

import (
	"context"
	"time"
)

// Store is the database facade. Consumers depend on narrow sub-interfaces.
type Store interface {
	Pinger
	MarketReader
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MarketReader provides read access to market rows. This core never writes;
// ingestion and enrichment live outside it.
type MarketReader interface {
	// QueryMarkets returns rows matching all predicates of q, sorted and
	// paginated at the store, plus the exact pre-pagination match count.
	QueryMarkets(ctx context.Context, q *MarketQuery) (*MarketPage, error)
	// GetMarketBySlug returns one active market row or ErrNoRows.
	GetMarketBySlug(ctx context.Context, slug string) (*MarketRow, error)
	// CountByState returns active-market counts grouped by state code.
	CountByState(ctx context.Context) ([]StateRowCount, error)
}

// MarketPage is the output of QueryMarkets.
type MarketPage struct {
	Rows  []MarketRow
	Total int
}

// StateRowCount is one row of the per-state aggregation.
type StateRowCount struct {
	StateCode string
	Markets   int
}

// HoursRow is one day's opening window as stored.
type HoursRow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// MarketRow is a flat market record as stored. Tag maps and the schedule are
// string-keyed here; the repository layer validates them into the closed
// domain vocabularies.
type MarketRow struct {
	ID                 string
	Slug               string
	Name               string
	Description        string
	Address            string
	City               string
	State              string
	StateCode          string
	ZipCode            string
	Latitude           *float64
	Longitude          *float64
	Phone              string
	Website            string
	Schedule           map[string]*HoursRow
	GoogleRating       *float64
	GoogleReviewsCount int
	Products           map[string]bool
	PaymentMethods     map[string]bool
	IsActive           bool
}
