package destination

import (
	"context"

	domdest "github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
)

// Repository defines the storage contract for destinations.
type Repository interface {
	Create(ctx context.Context, d domdest.Destination) error
	Update(ctx context.Context, d domdest.Destination) error
	Get(ctx context.Context, id string) (domdest.Destination, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, plan query.Plan[domdest.Destination]) ([]domdest.Destination, error)
}
