package search

import (
	"context"

	"github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	"github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// DestinationFinder evaluates a query plan over destinations.
type DestinationFinder interface {
	Find(ctx context.Context, plan query.Plan[destination.Destination]) ([]destination.Destination, error)
}

// PackageFinder evaluates a query plan over packages.
type PackageFinder interface {
	Find(ctx context.Context, plan query.Plan[tour.Package]) ([]tour.Package, error)
}
