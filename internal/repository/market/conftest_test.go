package market

import (
	"context"

	"github.com/harvest-cloud/marketdex/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	queryFn        func(ctx context.Context, q *db.MarketQuery) (*db.MarketPage, error)
	getBySlugFn    func(ctx context.Context, slug string) (*db.MarketRow, error)
	countByStateFn func(ctx context.Context) ([]db.StateRowCount, error)

	lastQuery *db.MarketQuery
}

func (m *mockStore) QueryMarkets(ctx context.Context, q *db.MarketQuery) (*db.MarketPage, error) {
	m.lastQuery = q
	if m.queryFn != nil {
		return m.queryFn(ctx, q)
	}
	return &db.MarketPage{}, nil
}

func (m *mockStore) GetMarketBySlug(ctx context.Context, slug string) (*db.MarketRow, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, db.ErrNoRows
}

func (m *mockStore) CountByState(ctx context.Context) ([]db.StateRowCount, error) {
	if m.countByStateFn != nil {
		return m.countByStateFn(ctx)
	}
	return nil, nil
}

func fptr(v float64) *float64 { return &v }

func testRow(slug string) db.MarketRow {
	return db.MarketRow{
		ID:                 "id-" + slug,
		Slug:               slug,
		Name:               "Test Market",
		City:               "Sacramento",
		State:              "California",
		StateCode:          "CA",
		Latitude:           fptr(38.58),
		Longitude:          fptr(-121.49),
		GoogleRating:       fptr(4.5),
		GoogleReviewsCount: 120,
		Schedule: map[string]*db.HoursRow{
			"saturday": {Open: "08:00", Close: "13:00"},
		},
		Products:       map[string]bool{"honey": true, "eggs": true},
		PaymentMethods: map[string]bool{"cash": true, "snap": true},
		IsActive:       true,
	}
}
