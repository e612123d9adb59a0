package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/harvest-cloud/marketdex/internal/db"
	"github.com/harvest-cloud/marketdex/internal/db/memory"
	marketrepo "github.com/harvest-cloud/marketdex/internal/repository/market"
	healthuc "github.com/harvest-cloud/marketdex/internal/usecase/health"
	marketuc "github.com/harvest-cloud/marketdex/internal/usecase/market"
	searchuc "github.com/harvest-cloud/marketdex/internal/usecase/search"
)

func fptr(v float64) *float64 { return &v }

func seedRows() []db.MarketRow {
	return []db.MarketRow{
		{
			ID: "1", Slug: "midtown", Name: "Midtown Farmers Market",
			City: "Sacramento", State: "California", StateCode: "CA",
			Latitude: fptr(38.5737), Longitude: fptr(-121.4760),
			GoogleRating: fptr(4.8), GoogleReviewsCount: 210,
			Products:       map[string]bool{"honey": true, "vegetables": true},
			PaymentMethods: map[string]bool{"cash": true, "snap": true},
			Schedule:       map[string]*db.HoursRow{"saturday": {Open: "08:00", Close: "13:00"}},
			IsActive:       true,
		},
		{
			ID: "2", Slug: "riverside", Name: "Riverside Market",
			City: "Portland", State: "Oregon", StateCode: "OR",
			Latitude: fptr(45.5152), Longitude: fptr(-122.6784),
			GoogleRating: fptr(4.2),
			IsActive:     true,
		},
		{
			ID: "3", Slug: "hidden", Name: "Hidden Market",
			City: "Sacramento", State: "California", StateCode: "CA",
			IsActive: false,
		},
	}
}

// newTestRouter builds the full handler stack over the in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	store.Seed(seedRows())
	repo := marketrepo.New(store)

	srv := NewServer(
		searchuc.New(repo),
		marketuc.New(repo),
		healthuc.New(store),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// failingPinger simulates an unreachable database for health checks.
type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }
