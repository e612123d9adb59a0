package search

import (
	"sort"

	"github.com/harvest-cloud/marketdex/internal/domain"
	"github.com/harvest-cloud/marketdex/internal/domain/geo"
	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
)

// rankByGeo computes each candidate's great-circle distance from the center,
// discards rows without coordinates or beyond the radius, and sorts by
// distance when requested. An explicit non-distance sort keeps the order the
// store established; geo then only filters.
//
// Distance is computed once here and carried on the result for the response.
func rankByGeo(rows []domain.Market, g domsearch.Geo, order domsearch.Sort) []domsearch.RankedResult {
	out := make([]domsearch.RankedResult, 0, len(rows))
	for _, m := range rows {
		if !m.HasCoordinates() {
			continue
		}
		d := geo.Haversine(g.Lat, g.Lng, *m.Latitude, *m.Longitude)
		if d > g.RadiusMiles {
			continue
		}
		dist := d
		out = append(out, domsearch.RankedResult{Market: m, DistanceMiles: &dist})
	}

	if order == domsearch.SortDistance {
		sort.SliceStable(out, func(i, j int) bool {
			return *out[i].DistanceMiles < *out[j].DistanceMiles
		})
	}

	return out
}
