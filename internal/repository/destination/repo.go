package destination

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/db"
	domdest "github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	"github.com/kailas-cloud/tripdex/internal/logger"
	"github.com/kailas-cloud/tripdex/internal/repository/catalog"
)

// CollectionName is the storage collection for destinations.
const CollectionName = "destinations"

// store is the consumer interface for destinations (ISP).
type store interface {
	db.JSONStore
	db.SortedSetStore
}

// Repo implements usecase/destination.Repository and usecase/search.DestinationFinder.
type Repo struct {
	coll *catalog.Collection
}

// New creates a destination repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{coll: catalog.NewCollection(s, keyPrefix, CollectionName)}
}

// Create stores a new destination.
func (r *Repo) Create(ctx context.Context, d domdest.Destination) error {
	data, err := json.Marshal(toDoc(d))
	if err != nil {
		return fmt.Errorf("marshal destination: %w", err)
	}
	return r.coll.Insert(ctx, d.ID(), d.CreatedAt(), data)
}

// Update overwrites an existing destination.
func (r *Repo) Update(ctx context.Context, d domdest.Destination) error {
	data, err := json.Marshal(toDoc(d))
	if err != nil {
		return fmt.Errorf("marshal destination: %w", err)
	}
	return r.coll.Replace(ctx, d.ID(), data)
}

// Get returns a destination by ID.
func (r *Repo) Get(ctx context.Context, id string) (domdest.Destination, error) {
	raw, err := r.coll.Get(ctx, id)
	if err != nil {
		return domdest.Destination{}, err
	}
	var doc destinationDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domdest.Destination{}, fmt.Errorf("decode destination %s: %w", id, err)
	}
	return fromDoc(id, doc), nil
}

// Delete removes a destination.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.coll.Delete(ctx, id)
}

// Find evaluates a query plan over the collection.
// Documents that fail to decode are hydrated with empty fields.
func (r *Repo) Find(ctx context.Context, plan query.Plan[domdest.Destination]) ([]domdest.Destination, error) {
	entries, err := r.coll.All(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domdest.Destination, 0, len(entries))
	for _, e := range entries {
		var doc destinationDoc
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
