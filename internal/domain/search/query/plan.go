package query

import (
	"regexp"
	"slices"

	"github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// Plan is a compiled query over one collection: a match predicate, an
// ordering and an optional result cap.
type Plan[T any] struct {
	match   func(T) bool
	compare func(a, b T) int
	sort    SortKey
	limit   int
}

// NewPlan builds a plan from explicit parts. A nil match accepts everything.
func NewPlan[T any](match func(T) bool, sort SortKey, compare func(a, b T) int) Plan[T] {
	return Plan[T]{match: match, compare: compare, sort: sort}
}

// WithLimit returns a copy capped at n results. n <= 0 means unlimited.
func (p Plan[T]) WithLimit(n int) Plan[T] {
	p.limit = n
	return p
}

// Sort returns the ordering the plan applies.
func (p Plan[T]) Sort() SortKey { return p.sort }

// Limit returns the result cap, zero when unlimited.
func (p Plan[T]) Limit() int { return p.limit }

// Matches reports whether v satisfies the predicate.
func (p Plan[T]) Matches(v T) bool {
	return p.match == nil || p.match(v)
}

// Apply filters, stably sorts and caps items. The input is not modified.
func (p Plan[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if p.Matches(it) {
			out = append(out, it)
		}
	}
	if p.compare != nil {
		slices.SortStableFunc(out, p.compare)
	}
	if p.limit > 0 && len(out) > p.limit {
		out = out[:p.limit]
	}
	return out
}

// ForDestinations compiles criteria into a destination plan.
// Text matches name, state or description; Category matches category.
func ForDestinations(c Criteria) Plan[destination.Destination] {
	text := containsFold(c.Text)
	category := containsFold(c.Category)

	match := func(d destination.Destination) bool {
		if text != nil && !text.MatchString(d.Name()) &&
			!text.MatchString(d.State()) && !text.MatchString(d.Description()) {
			return false
		}
		if category != nil && !category.MatchString(d.Category()) {
			return false
		}
		return true
	}
	return NewPlan(match, c.Sort, comparator(c.Sort, destinationKeys))
}

// ForPackages compiles criteria into a package plan.
// Text matches title, description or any city; Type requires that flag.
func ForPackages(c Criteria) Plan[tour.Package] {
	text := containsFold(c.Text)
	flag := c.Type

	match := func(p tour.Package) bool {
		if text != nil && !text.MatchString(p.Title()) &&
			!text.MatchString(p.Description()) && !anyMatch(text, p.Cities()) {
			return false
		}
		if flag != "" && !p.HasFlag(flag) {
			return false
		}
		return true
	}
	return NewPlan(match, c.Sort, comparator(c.Sort, packageKeys))
}

// containsFold compiles a case-insensitive literal substring matcher.
// Empty input yields nil (no constraint).
func containsFold(s string) *regexp.Regexp {
	if s == "" {
		return nil
	}
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(s))
}

func anyMatch(re *regexp.Regexp, values []string) bool {
	for _, v := range values {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}
