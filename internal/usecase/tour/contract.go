package tour

import (
	"context"

	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// Repository defines the storage contract for packages.
type Repository interface {
	Create(ctx context.Context, p domtour.Package) error
	Update(ctx context.Context, p domtour.Package) error
	Get(ctx context.Context, id string) (domtour.Package, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, plan query.Plan[domtour.Package]) ([]domtour.Package, error)
}
