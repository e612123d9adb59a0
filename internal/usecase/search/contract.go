package search

import (
	"context"

	"github.com/harvest-cloud/marketdex/internal/domain"
	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
)

// Repository defines the storage contract for the candidate filter. The
// implementation pushes every non-geo predicate of the spec down to the
// store; limit/offset here are store-level and may differ from the spec's
// page when the geo pass repaginates in-process.
type Repository interface {
	FetchCandidates(
		ctx context.Context, spec *domsearch.Spec, limit, offset int,
	) (rows []domain.Market, totalMatches int, err error)
}
