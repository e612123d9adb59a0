package search

import (
	"context"

	"github.com/harvest-cloud/marketdex/internal/domain"
	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	rows  []domain.Market
	total int
	err   error

	calls      int
	lastLimit  int
	lastOffset int
}

func (m *mockRepo) FetchCandidates(
	_ context.Context, _ *domsearch.Spec, limit, offset int,
) ([]domain.Market, int, error) {
	m.calls++
	m.lastLimit = limit
	m.lastOffset = offset
	return m.rows, m.total, m.err
}

// testCenter is the geo center used by the fixtures below.
var testCenter = domsearch.Geo{Lat: 40, Lng: -100, RadiusMiles: 25}

// marketAt places a market approximately the given number of miles due north
// of testCenter. One degree of latitude is ~69.097 statute miles.
func marketAt(id string, miles float64) domain.Market {
	lat := testCenter.Lat + miles/69.097
	lng := testCenter.Lng
	return domain.Market{
		ID:        id,
		Slug:      id,
		Name:      id,
		Latitude:  &lat,
		Longitude: &lng,
		IsActive:  true,
	}
}

func markets(ids ...string) []domain.Market {
	out := make([]domain.Market, len(ids))
	for i, id := range ids {
		out[i] = domain.Market{ID: id, Slug: id, Name: id, IsActive: true}
	}
	return out
}

func marketNoCoords(id string) domain.Market {
	return domain.Market{ID: id, Slug: id, Name: id, IsActive: true}
}

func geoSpec(page, limit int) *domsearch.Spec {
	g := testCenter
	return &domsearch.Spec{
		Sort:  domsearch.SortDistance,
		Page:  page,
		Limit: limit,
		Geo:   &g,
	}
}
