package tour

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/db"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
	"github.com/kailas-cloud/tripdex/internal/logger"
	"github.com/kailas-cloud/tripdex/internal/repository/catalog"
)

// CollectionName is the storage collection for travel packages.
const CollectionName = "packages"

// store is the consumer interface for packages (ISP).
type store interface {
	db.JSONStore
	db.SortedSetStore
}

// Repo implements usecase/tour.Repository and usecase/search.PackageFinder.
type Repo struct {
	coll *catalog.Collection
}

// New creates a package repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{coll: catalog.NewCollection(s, keyPrefix, CollectionName)}
}

// Create stores a new package.
func (r *Repo) Create(ctx context.Context, p domtour.Package) error {
	data, err := json.Marshal(toDoc(p))
	if err != nil {
		return fmt.Errorf("marshal package: %w", err)
	}
	return r.coll.Insert(ctx, p.ID(), p.CreatedAt(), data)
}

// Update overwrites an existing package.
func (r *Repo) Update(ctx context.Context, p domtour.Package) error {
	data, err := json.Marshal(toDoc(p))
	if err != nil {
		return fmt.Errorf("marshal package: %w", err)
	}
	return r.coll.Replace(ctx, p.ID(), data)
}

// Get returns a package by ID.
func (r *Repo) Get(ctx context.Context, id string) (domtour.Package, error) {
	raw, err := r.coll.Get(ctx, id)
	if err != nil {
		return domtour.Package{}, err
	}
	var doc packageDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domtour.Package{}, fmt.Errorf("decode package %s: %w", id, err)
	}
	return fromDoc(id, doc), nil
}

// Delete removes a package.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}

// Find evaluates a query plan over the collection.
func (r *Repo) Find(ctx context.Context, plan query.Plan[domtour.Package]) ([]domtour.Package, error) {
	entries, err := r.coll.All(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domtour.Package, 0, len(entries))
	for _, e := range entries {
		var doc packageDoc
		if e.Data != nil {
			if err := json.Unmarshal(e.Data, &doc); err != nil {
				logger.FromContext(ctx).Warn("malformed document, using defaults",
					zap.String("collection", CollectionName),
					zap.String("id", e.ID),
					zap.Error(err),
				)
			}
		}
		items = append(items, fromDoc(e.ID, doc))
	}
	return plan.Apply(items), nil
}
