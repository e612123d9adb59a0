package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
	"github.com/harvest-cloud/marketdex/internal/logger"
	"github.com/harvest-cloud/marketdex/internal/metrics"
)

// DefaultGeoFetchCap bounds the candidate over-fetch for the geo pass when
// no explicit cap is configured.
const DefaultGeoFetchCap = 2000

// Service runs the search pipeline: candidate filter (store push-down),
// geo rank (in-process), pagination, response assembly.
type Service struct {
	repo        Repository
	geoFetchCap int
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo, geoFetchCap: DefaultGeoFetchCap}
}

// WithGeoFetchCap overrides the geo over-fetch cap.
func (s *Service) WithGeoFetchCap(n int) *Service {
	if n > 0 {
		s.geoFetchCap = n
	}
	return s
}

// Search executes one search specification and assembles the result page.
//
// Without geo the store paginates; with geo the filter over-fetches up to
// the cap, the geo ranker discards out-of-radius rows and the final page is
// sliced here. TotalMatches always reflects the pre-geo count: when the cap
// is exceeded the geo-filtered page set may be undercounted, which is the
// documented approximation of this pipeline.
func (s *Service) Search(ctx context.Context, spec *domsearch.Spec) (*domsearch.Page, error) {
	if !spec.HasGeo() {
		return s.searchPlain(ctx, spec)
	}
	return s.searchGeo(ctx, spec)
}

func (s *Service) searchPlain(ctx context.Context, spec *domsearch.Spec) (*domsearch.Page, error) {
	metrics.SearchesTotal.WithLabelValues("plain").Inc()

	rows, total, err := s.repo.FetchCandidates(ctx, spec, spec.Limit, spec.Offset())
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	items := make([]domsearch.RankedResult, len(rows))
	for i, m := range rows {
		items[i] = domsearch.RankedResult{Market: m}
	}

	return domsearch.NewPage(items, total, spec.Page, spec.Limit), nil
}

func (s *Service) searchGeo(ctx context.Context, spec *domsearch.Spec) (*domsearch.Page, error) {
	metrics.SearchesTotal.WithLabelValues("geo").Inc()

	rows, total, err := s.repo.FetchCandidates(ctx, spec, s.geoFetchCap, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	metrics.GeoCandidates.Observe(float64(len(rows)))
	if len(rows) >= s.geoFetchCap {
		metrics.GeoFetchTruncatedTotal.Inc()
		logger.FromContext(ctx).Warn("geo over-fetch cap reached, results may be undercounted",
			zap.Int("cap", s.geoFetchCap),
			zap.Int("total_matches", total),
		)
	}

	ranked := rankByGeo(rows, *spec.Geo, spec.Sort)
	items := slicePage(ranked, spec.Offset(), spec.Limit)

	return domsearch.NewPage(items, total, spec.Page, spec.Limit), nil
}

// slicePage applies offset/limit to the geo-filtered result set.
func slicePage(items []domsearch.RankedResult, offset, limit int) []domsearch.RankedResult {
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
