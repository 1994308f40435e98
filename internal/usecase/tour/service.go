package tour

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// ShowcaseLimit caps the top-selling and luxury lists.
const ShowcaseLimit = 6

// Service manages the package catalog.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// New creates a package service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now, newID: domain.NewID}
}

// List returns packages matching the criteria.
func (s *Service) List(ctx context.Context, c query.Criteria) ([]domtour.Package, error) {
	items, err := s.repo.Find(ctx, query.ForPackages(c))
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return items, nil
}

// TopSelling returns the newest packages flagged best seller or popular.
func (s *Service) TopSelling(ctx context.Context) ([]domtour.Package, error) {
	match := func(p domtour.Package) bool {
		return p.HasFlag(domtour.FlagBestSeller) || p.HasFlag(domtour.FlagPopular)
	}
	plan := query.NewPlan(match, query.SortNewest, newestFirst).WithLimit(ShowcaseLimit)
	items, err := s.repo.Find(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("top selling packages: %w", err)
	}
	return items, nil
}

// Luxury returns the newest luxury packages.
func (s *Service) Luxury(ctx context.Context) ([]domtour.Package, error) {
	plan := query.ForPackages(query.Criteria{Type: domtour.FlagLuxury}).WithLimit(ShowcaseLimit)
	items, err := s.repo.Find(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("luxury packages: %w", err)
	}
	return items, nil
}

// Get returns a package by its external ID.
func (s *Service) Get(ctx context.Context, rawID string) (domtour.Package, error) {
	id, err := domain.ParseID(strings.TrimSpace(rawID))
	if err != nil {
		return domtour.Package{}, err
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domtour.Package{}, fmt.Errorf("get package: %w", err)
	}
	return p, nil
}

// Create validates and stores a new package.
func (s *Service) Create(ctx context.Context, f domtour.Fields) (domtour.Package, error) {
	p, err := domtour.New(s.newID(), f, s.now().UTC())
	if err != nil {
		return domtour.Package{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return domtour.Package{}, fmt.Errorf("create package: %w", err)
	}
	return p, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, rawID string, patch domtour.Patch) (domtour.Package, error) {
	current, err := s.Get(ctx, rawID)
	if err != nil {
		return domtour.Package{}, err
	}
	updated, err := current.Apply(patch, s.now().UTC())
	if err != nil {
		return domtour.Package{}, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return domtour.Package{}, fmt.Errorf("update package: %w", err)
	}
	return updated, nil
}

// Delete removes a package.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ParseID(strings.TrimSpace(rawID))
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}

func newestFirst(a, b domtour.Package) int {
	return b.CreatedAt().Compare(a.CreatedAt())
}
