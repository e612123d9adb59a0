package market

import (
	"context"

	"github.com/harvest-cloud/marketdex/internal/domain"
)

// Repository defines the storage contract for single-market reads and
// directory aggregations.
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (domain.Market, error)
	StateCounts(ctx context.Context) ([]domain.StateCount, error)
}
