package destination

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain"
	domdest "github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
)

// PopularLimit caps the popular destinations list.
const PopularLimit = 6

// Service manages the destination catalog.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// New creates a destination service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now, newID: domain.NewID}
}

// List returns destinations matching the criteria.
func (s *Service) List(ctx context.Context, c query.Criteria) ([]domdest.Destination, error) {
	items, err := s.repo.Find(ctx, query.ForDestinations(c))
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return items, nil
}

// Popular returns the highest-rated destinations.
func (s *Service) Popular(ctx context.Context) ([]domdest.Destination, error) {
	plan := query.ForDestinations(query.Criteria{Sort: query.SortRating}).WithLimit(PopularLimit)
	items, err := s.repo.Find(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("popular destinations: %w", err)
	}
	return items, nil
}

// ByCategory returns destinations whose category contains the given text.
func (s *Service) ByCategory(ctx context.Context, category string) ([]domdest.Destination, error) {
	c := query.NewCriteria("", category, "", "")
	if c.Category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	items, err := s.repo.Find(ctx, query.ForDestinations(c))
	if err != nil {
		return nil, fmt.Errorf("destinations by category: %w", err)
	}
	return items, nil
}

// Get returns a destination by its external ID.
func (s *Service) Get(ctx context.Context, rawID string) (domdest.Destination, error) {
	id, err := domain.ParseID(strings.TrimSpace(rawID))
	if err != nil {
		return domdest.Destination{}, err
	}
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdest.Destination{}, fmt.Errorf("get destination: %w", err)
	}
	return d, nil
}

// Create validates and stores a new destination.
func (s *Service) Create(ctx context.Context, f domdest.Fields) (domdest.Destination, error) {
	d, err := domdest.New(s.newID(), f, s.now().UTC())
	if err != nil {
		return domdest.Destination{}, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return domdest.Destination{}, fmt.Errorf("create destination: %w", err)
	}
	return d, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, rawID string, p domdest.Patch) (domdest.Destination, error) {
	current, err := s.Get(ctx, rawID)
	if err != nil {
		return domdest.Destination{}, err
	}
	updated, err := current.Apply(p, s.now().UTC())
	if err != nil {
		return domdest.Destination{}, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return domdest.Destination{}, fmt.Errorf("update destination: %w", err)
	}
	return updated, nil
}

// Delete removes a destination.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ParseID(strings.TrimSpace(rawID))
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	return nil
}
