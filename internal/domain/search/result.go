package search

import "github.com/harvest-cloud/marketdex/internal/domain"

// RankedResult is a market plus its computed distance. DistanceMiles is set
// only for geo searches; it is computed exactly once, in the geo ranker, and
// carried through to the response.
type RankedResult struct {
	Market        domain.Market
	DistanceMiles *float64
}

// Page is one page of ranked results.
//
// TotalMatches is the store's count after the non-geo predicates. When geo
// filtering also applies it can overstate the in-radius total; that
// approximation is part of the contract, not a bug.
type Page struct {
	Items        []RankedResult
	TotalMatches int
	Page         int
	Limit        int
	TotalPages   int
}

// NewPage assembles a result page, deriving TotalPages from the pre-geo
// match count.
func NewPage(items []RankedResult, totalMatches, page, limit int) *Page {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalMatches + limit - 1) / limit
	}
	return &Page{
		Items:        items,
		TotalMatches: totalMatches,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}
}
