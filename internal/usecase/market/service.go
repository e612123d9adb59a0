package market

import (
	"context"
	"fmt"

	"github.com/harvest-cloud/marketdex/internal/domain"
)

// Service handles single-market lookups and the per-state directory index.
type Service struct {
	repo Repository
}

// New creates a market service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetBySlug returns one active market. Wraps domain.ErrMarketNotFound when
// the slug is unknown or inactive.
func (s *Service) GetBySlug(ctx context.Context, slug string) (domain.Market, error) {
	m, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Market{}, fmt.Errorf("get market %q: %w", slug, err)
	}
	return m, nil
}

// StateCounts returns active-market counts per state, sorted by state code,
// with display names attached.
func (s *Service) StateCounts(ctx context.Context) ([]domain.StateCount, error) {
	counts, err := s.repo.StateCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("state counts: %w", err)
	}
	for i := range counts {
		counts[i].StateName = domain.StateName(counts[i].StateCode)
	}
	return counts, nil
}
