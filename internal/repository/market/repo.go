// Package market translates search specifications into store queries and
// store rows into validated domain records.
package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/harvest-cloud/marketdex/internal/db"
	"github.com/harvest-cloud/marketdex/internal/domain"
	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
)

// store is the consumer interface for market reads (ISP).
type store interface {
	QueryMarkets(ctx context.Context, q *db.MarketQuery) (*db.MarketPage, error)
	GetMarketBySlug(ctx context.Context, slug string) (*db.MarketRow, error)
	CountByState(ctx context.Context) ([]db.StateRowCount, error)
}

// Repo implements usecase/search.Repository and usecase/market.Repository.
type Repo struct {
	store store
}

// New creates a market repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// FetchCandidates pushes all non-geo predicates down to the store and
// returns the matching rows plus the exact pre-pagination count.
func (r *Repo) FetchCandidates(
	ctx context.Context, spec *domsearch.Spec, limit, offset int,
) ([]domain.Market, int, error) {
	page, err := r.store.QueryMarkets(ctx, buildQuery(spec, limit, offset))
	if err != nil {
		return nil, 0, fmt.Errorf("query markets: %w", err)
	}

	markets := make([]domain.Market, len(page.Rows))
	for i := range page.Rows {
		markets[i] = rowToMarket(&page.Rows[i])
	}
	return markets, page.Total, nil
}

// GetBySlug returns one active market, mapping a store miss to
// domain.ErrMarketNotFound.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (domain.Market, error) {
	row, err := r.store.GetMarketBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return domain.Market{}, domain.ErrMarketNotFound
		}
		return domain.Market{}, fmt.Errorf("get market by slug: %w", err)
	}
	return rowToMarket(row), nil
}

// StateCounts returns active-market counts per state code.
func (r *Repo) StateCounts(ctx context.Context) ([]domain.StateCount, error) {
	rows, err := r.store.CountByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by state: %w", err)
	}
	out := make([]domain.StateCount, len(rows))
	for i, row := range rows {
		out[i] = domain.StateCount{StateCode: row.StateCode, Markets: row.Markets}
	}
	return out, nil
}

// buildQuery maps a validated spec onto store predicates. Distance ordering
// stays in-process; under geo the store just delivers a deterministic
// composite order for the over-fetch window.
func buildQuery(spec *domsearch.Spec, limit, offset int) *db.MarketQuery {
	q := &db.MarketQuery{
		Text:      spec.Text,
		StateCode: spec.StateCode,
		City:      spec.City,
		DayOpen:   string(spec.DayOpen),
		Offset:    offset,
		Limit:     limit,
	}

	for _, p := range spec.Products {
		q.ProductTags = append(q.ProductTags, string(p))
	}
	for _, p := range spec.PaymentMethods {
		q.PaymentTags = append(q.PaymentTags, string(p))
	}

	switch spec.Sort {
	case domsearch.SortRating:
		q.Sort = db.SortRatingDesc
	case domsearch.SortName:
		q.Sort = db.SortNameAsc
	default:
		q.Sort = db.SortComposite
	}

	return q
}
