package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/search/query"
	"github.com/kailas-cloud/tripdex/internal/domain/search/record"
	"github.com/kailas-cloud/tripdex/internal/domain/tour"
	"github.com/kailas-cloud/tripdex/internal/logger"
	"github.com/kailas-cloud/tripdex/internal/metrics"
)

// Defaults applied by New when the config leaves a field zero.
const (
	DefaultSubqueryTimeout = 3 * time.Second
	DefaultSuggestions     = 5
	MaxSuggestions         = 20
)

// Config tunes the search service.
type Config struct {
	SubqueryTimeout    time.Duration
	DefaultSuggestions int
	MaxSuggestions     int
}

// Result is an aggregated search: destinations first, then packages.
// Failed lists the collections whose sub-query failed or timed out.
type Result struct {
	Records []record.Record
	Failed  []record.Type
}

// Partial reports whether some collection is missing from the result.
func (r Result) Partial() bool { return len(r.Failed) > 0 }

// Suggestions is a ranked, capped search result.
type Suggestions struct {
	Items  []record.Scored
	Failed []record.Type
}

var errSubqueryPanic = errors.New("subquery panicked")

// Service runs the free-text search over both catalog collections.
type Service struct {
	dests DestinationFinder
	pkgs  PackageFinder
	cfg   Config
	newID func() string
}

// New creates a search service.
func New(dests DestinationFinder, pkgs PackageFinder, cfg Config) *Service {
	if cfg.SubqueryTimeout <= 0 {
		cfg.SubqueryTimeout = DefaultSubqueryTimeout
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = MaxSuggestions
	}
	if cfg.DefaultSuggestions <= 0 {
		cfg.DefaultSuggestions = DefaultSuggestions
	}
	if cfg.DefaultSuggestions > cfg.MaxSuggestions {
		cfg.DefaultSuggestions = cfg.MaxSuggestions
	}
	return &Service{dests: dests, pkgs: pkgs, cfg: cfg, newID: domain.NewID}
}

// Aggregate queries destinations and packages concurrently with the same
// text and merges the tagged results. A failing collection contributes
// nothing and is reported in Result.Failed. Only when both fail does
// Aggregate return ErrSearchUnavailable. Blank input returns an empty
// result without touching storage.
func (s *Service) Aggregate(ctx context.Context, text string) (Result, error) {
	return s.aggregate(ctx, query.NewCriteria(text, "", "", ""))
}

func (s *Service) aggregate(ctx context.Context, crit query.Criteria) (Result, error) {
	if crit.Text == "" {
		metrics.SearchAggregationsTotal.WithLabelValues("empty").Inc()
		return Result{}, nil
	}

	var (
		dests           []destination.Destination
		pkgs            []tour.Package
		destErr, pkgErr error
		g               errgroup.Group
	)
	// Branches never return an error: each outcome is kept separately so one
	// failure cannot cancel the other.
	g.Go(func() error {
		dests, destErr = subquery(ctx, s.cfg.SubqueryTimeout, record.TypeDestination,
			func(ctx context.Context) ([]destination.Destination, error) {
				return s.dests.Find(ctx, query.ForDestinations(query.Criteria{Text: crit.Text}))
			})
		return nil
	})
	g.Go(func() error {
		pkgs, pkgErr = subquery(ctx, s.cfg.SubqueryTimeout, record.TypePackage,
			func(ctx context.Context) ([]tour.Package, error) {
				return s.pkgs.Find(ctx, query.ForPackages(query.Criteria{Text: crit.Text}))
			})
		return nil
	})
	_ = g.Wait()

	var res Result
	if destErr != nil {
		res.Failed = append(res.Failed, record.TypeDestination)
	}
	if pkgErr != nil {
		res.Failed = append(res.Failed, record.TypePackage)
	}
	if destErr != nil && pkgErr != nil {
		metrics.SearchAggregationsTotal.WithLabelValues("unavailable").Inc()
		return res, fmt.Errorf("%w: %w", domain.ErrSearchUnavailable, errors.Join(destErr, pkgErr))
	}

	res.Records = make([]record.Record, 0, len(dests)+len(pkgs))
	for _, d := range dests {
		res.Records = append(res.Records, s.ensureID(record.FromDestination(d)))
	}
	for _, p := range pkgs {
		res.Records = append(res.Records, s.ensureID(record.FromPackage(p)))
	}

	outcome := "complete"
	if res.Partial() {
		outcome = "partial"
	}
	metrics.SearchAggregationsTotal.WithLabelValues(outcome).Inc()
	return res, nil
}

// Suggest aggregates, scores and ranks, keeping the best limit records.
// limit <= 0 selects the configured default; larger values are clamped.
func (s *Service) Suggest(ctx context.Context, text string, limit int) (Suggestions, error) {
	// Score against the same clipped text the store matched.
	crit := query.NewCriteria(text, "", "", "")
	q := normalize(crit.Text)
	if q == "" {
		return Suggestions{}, nil
	}

	res, err := s.aggregate(ctx, crit)
	if err != nil {
		return Suggestions{Failed: res.Failed}, err
	}

	ranked := Rank(res.Records, q)
	if n := s.clampLimit(limit); len(ranked) > n {
		ranked = ranked[:n]
	}
	return Suggestions{Items: ranked, Failed: res.Failed}, nil
}

func (s *Service) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return s.cfg.DefaultSuggestions
	case limit > s.cfg.MaxSuggestions:
		return s.cfg.MaxSuggestions
	default:
		return limit
	}
}

func (s *Service) ensureID(r record.Record) record.Record {
	if strings.TrimSpace(r.ID()) == "" {
		return r.WithID(s.newID())
	}
	return r
}

// subquery runs fn under its own deadline. A result that arrives after the
// deadline is dropped even if fn ignores ctx.
func subquery[T any](
	ctx context.Context, timeout time.Duration, coll record.Type,
	fn func(context.Context) ([]T, error),
) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		items []T
		err   error
	}
	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		// The request recoverer cannot see this goroutine.
		defer func() {
			if p := recover(); p != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", errSubqueryPanic, p)}
			}
		}()
		items, err := fn(ctx)
		done <- outcome{items: items, err: err}
	}()

	var o outcome
	select {
	case o = <-done:
	case <-ctx.Done():
		o.err = ctx.Err()
	}

	elapsed := time.Since(start)
	metrics.SearchSubqueryDuration.WithLabelValues(string(coll)).Observe(elapsed.Seconds())

	status := "ok"
	switch {
	case errors.Is(o.err, context.DeadlineExceeded):
		status = "timeout"
	case errors.Is(o.err, errSubqueryPanic):
		status = "panic"
	case o.err != nil:
		status = "error"
	}
	metrics.SearchSubqueriesTotal.WithLabelValues(string(coll), status).Inc()

	if o.err != nil {
		logger.FromContext(ctx).Warn("search subquery failed",
			zap.String("collection", string(coll)),
			zap.String("status", status),
			zap.Duration("elapsed", elapsed),
			zap.Error(o.err),
		)
		return nil, fmt.Errorf("%s: %w", coll, o.err)
	}
	return o.items, nil
}
