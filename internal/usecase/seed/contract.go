package seed

import (
	"context"

	domdest "github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// DestinationCatalog lists and creates destinations.
type DestinationCatalog interface {
	List(ctx context.Context, c query.Criteria) ([]domdest.Destination, error)
	Create(ctx context.Context, f domdest.Fields) (domdest.Destination, error)
}

// PackageCatalog lists and creates packages.
type PackageCatalog interface {
	List(ctx context.Context, c query.Criteria) ([]domtour.Package, error)
	Create(ctx context.Context, f domtour.Fields) (domtour.Package, error)
}
