package market

import (
	"context"
	"errors"
	"testing"

	"github.com/harvest-cloud/marketdex/internal/db"
	"github.com/harvest-cloud/marketdex/internal/domain"
	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
)

func TestFetchCandidates_PushesPredicatesDown(t *testing.T) {
	ms := &mockStore{
		queryFn: func(_ context.Context, _ *db.MarketQuery) (*db.MarketPage, error) {
			return &db.MarketPage{Rows: []db.MarketRow{testRow("a")}, Total: 42}, nil
		},
	}
	repo := New(ms)

	spec := &domsearch.Spec{
		Text:           "honey",
		StateCode:      "CA",
		City:           "Sacramento",
		Products:       []domain.Product{domain.ProductHoney},
		PaymentMethods: []domain.Payment{domain.PaymentSNAP},
		DayOpen:        domain.Saturday,
		Sort:           domsearch.SortDefault,
		Page:           1,
		Limit:          12,
	}
	rows, total, err := repo.FetchCandidates(context.Background(), spec, 12, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := ms.lastQuery
	if q.Text != "honey" || q.StateCode != "CA" || q.City != "Sacramento" {
		t.Errorf("predicates not pushed down: %+v", q)
	}
	if len(q.ProductTags) != 1 || q.ProductTags[0] != "honey" {
		t.Errorf("ProductTags = %v", q.ProductTags)
	}
	if len(q.PaymentTags) != 1 || q.PaymentTags[0] != "snap" {
		t.Errorf("PaymentTags = %v", q.PaymentTags)
	}
	if q.DayOpen != "saturday" {
		t.Errorf("DayOpen = %q", q.DayOpen)
	}
	if q.Limit != 12 || q.Offset != 24 {
		t.Errorf("pagination = limit %d offset %d, want 12/24", q.Limit, q.Offset)
	}
	if total != 42 {
		t.Errorf("total = %d, want 42", total)
	}
	if len(rows) != 1 || rows[0].Slug != "a" {
		t.Errorf("rows = %v", rows)
	}
}

func TestBuildQuery_SortMapping(t *testing.T) {
	tests := []struct {
		sort domsearch.Sort
		want db.SortOrder
	}{
		{domsearch.SortRating, db.SortRatingDesc},
		{domsearch.SortName, db.SortNameAsc},
		{domsearch.SortDefault, db.SortComposite},
		// distance ranking happens in-process; the store delivers the
		// composite order for the over-fetch window
		{domsearch.SortDistance, db.SortComposite},
	}
	for _, tt := range tests {
		q := buildQuery(&domsearch.Spec{Sort: tt.sort}, 10, 0)
		if q.Sort != tt.want {
			t.Errorf("sort %q mapped to %v, want %v", tt.sort, q.Sort, tt.want)
		}
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	repo := New(&mockStore{})

	_, err := repo.GetBySlug(context.Background(), "nope")
	if !errors.Is(err, domain.ErrMarketNotFound) {
		t.Errorf("expected ErrMarketNotFound, got %v", err)
	}
}

func TestGetBySlug_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	ms := &mockStore{
		getBySlugFn: func(context.Context, string) (*db.MarketRow, error) {
			return nil, storeErr
		},
	}
	repo := New(ms)

	_, err := repo.GetBySlug(context.Background(), "slug")
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, domain.ErrMarketNotFound) {
		t.Error("store failures must not masquerade as not-found")
	}
}

func TestGetBySlug_Found(t *testing.T) {
	row := testRow("downtown")
	ms := &mockStore{
		getBySlugFn: func(_ context.Context, slug string) (*db.MarketRow, error) {
			if slug != "downtown" {
				t.Errorf("slug = %q", slug)
			}
			return &row, nil
		},
	}
	repo := New(ms)

	m, err := repo.GetBySlug(context.Background(), "downtown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Slug != "downtown" || m.StateCode != "CA" {
		t.Errorf("market = %+v", m)
	}
}

func TestStateCounts(t *testing.T) {
	ms := &mockStore{
		countByStateFn: func(context.Context) ([]db.StateRowCount, error) {
			return []db.StateRowCount{
				{StateCode: "CA", Markets: 12},
				{StateCode: "OR", Markets: 3},
			}, nil
		},
	}
	repo := New(ms)

	counts, err := repo.StateCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 counts, got %d", len(counts))
	}
	if counts[0].StateCode != "CA" || counts[0].Markets != 12 {
		t.Errorf("counts[0] = %+v", counts[0])
	}
}
