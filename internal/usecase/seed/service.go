package seed

import (
	"context"
	"fmt"
	"strings"

	dombatch "github.com/kailas-cloud/tripdex/internal/domain/batch"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
)

// MaxItems caps the number of items in one import.
const MaxItems = 1000

// Report lists per-item outcomes in input order.
type Report struct {
	Destinations []dombatch.Result
	Packages     []dombatch.Result
}

// All returns destination results followed by package results.
func (r Report) All() []dombatch.Result {
	out := make([]dombatch.Result, 0, len(r.Destinations)+len(r.Packages))
	out = append(out, r.Destinations...)
	return append(out, r.Packages...)
}

// Service imports catalog items with per-item error reporting.
type Service struct {
	dests    DestinationCatalog
	pkgs     PackageCatalog
	maxItems int
}

// New creates a seed service.
func New(dests DestinationCatalog, pkgs PackageCatalog) *Service {
	return &Service{dests: dests, pkgs: pkgs, maxItems: MaxItems}
}

// WithMaxItems configures the import size cap.
func (s *Service) WithMaxItems(n int) *Service {
	if n > 0 {
		s.maxItems = n
	}
	return s
}

// Import creates every item that is not already present. Destinations are
// matched by name and packages by title, case-insensitively, so re-running a
// seed is harmless. A failing item does not stop the rest; a cancelled
// context fails all remaining items.
func (s *Service) Import(ctx context.Context, cat Catalog) (Report, error) {
	if n := len(cat.Destinations) + len(cat.Packages); n > s.maxItems {
		return Report{}, fmt.Errorf("seed has %d items, limit is %d", n, s.maxItems)
	}

	existingDests, err := s.dests.List(ctx, query.Criteria{})
	if err != nil {
		return Report{}, fmt.Errorf("list destinations: %w", err)
	}
	seenDests := make(map[string]struct{}, len(existingDests))
	for _, d := range existingDests {
		seenDests[key(d.Name())] = struct{}{}
	}

	existingPkgs, err := s.pkgs.List(ctx, query.Criteria{})
	if err != nil {
		return Report{}, fmt.Errorf("list packages: %w", err)
	}
	seenPkgs := make(map[string]struct{}, len(existingPkgs))
	for _, p := range existingPkgs {
		seenPkgs[key(p.Title())] = struct{}{}
	}

	var rep Report
	rep.Destinations = make([]dombatch.Result, len(cat.Destinations))
	for i, f := range cat.Destinations {
		rep.Destinations[i] = importOne(ctx, dombatch.KindDestination, f.Name, seenDests, func() (string, error) {
			d, err := s.dests.Create(ctx, f)
			return d.ID(), err
		})
	}

	rep.Packages = make([]dombatch.Result, len(cat.Packages))
	for i, f := range cat.Packages {
		rep.Packages[i] = importOne(ctx, dombatch.KindPackage, f.Title, seenPkgs, func() (string, error) {
			p, err := s.pkgs.Create(ctx, f)
			return p.ID(), err
		})
	}

	return rep, nil
}

func importOne(
	ctx context.Context, kind dombatch.Kind, label string,
	seen map[string]struct{}, create func() (string, error),
) dombatch.Result {
	if err := ctx.Err(); err != nil {
		return dombatch.NewError(kind, label, err)
	}
	k := key(label)
	if _, ok := seen[k]; ok && k != "" {
		return dombatch.NewSkipped(kind, label)
	}
	id, err := create()
	if err != nil {
		return dombatch.NewError(kind, label, fmt.Errorf("create %s: %w", kind, err))
	}
	seen[k] = struct{}{}
	return dombatch.NewOK(kind, label, id)
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
