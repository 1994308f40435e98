package search

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/tripdex/internal/domain/search/record"
)

// Rule weights.
const (
	weightExact          = 100
	weightNamePrefix     = 50
	weightNameContains   = 20
	weightLocationSubstr = 10
	weightDestination    = 5
)

// rule contributes a partial score. Rules are independent and additive.
type rule func(name, location string, r record.Record, q string) float64

var rules = []rule{
	exactMatch,
	nameMatch,
	locationMatch,
	typeBias,
	ratingBoost,
}

// score sums every rule for r against an already normalized query.
// It reads no state and never fails; missing fields count as empty.
func score(r record.Record, q string) float64 {
	name := normalize(r.DisplayName())
	location := normalize(r.Location())

	var total float64
	for _, apply := range rules {
		total += apply(name, location, r, q)
	}
	return total
}

func exactMatch(name, location string, _ record.Record, q string) float64 {
	if name == q || location == q {
		return weightExact
	}
	return 0
}

func nameMatch(name, _ string, _ record.Record, q string) float64 {
	switch {
	case strings.HasPrefix(name, q):
		return weightNamePrefix
	case strings.Contains(name, q):
		return weightNameContains
	default:
		return 0
	}
}

func locationMatch(_, location string, _ record.Record, q string) float64 {
	if location != "" && strings.Contains(location, q) {
		return weightLocationSubstr
	}
	return 0
}

func typeBias(_, _ string, r record.Record, _ string) float64 {
	if r.Type() == record.TypeDestination {
		return weightDestination
	}
	return 0
}

func ratingBoost(_, _ string, r record.Record, _ string) float64 {
	return r.Rating()
}

// Rank scores records against query and orders them by score descending,
// breaking ties by display name, case-insensitively. The input is not modified.
func Rank(records []record.Record, query string) []record.Scored {
	q := normalize(query)
	out := make([]record.Scored, len(records))
	for i, r := range records {
		out[i] = record.NewScored(r, score(r, q))
	}

	// collate.Collator is not safe for concurrent use.
	coll := collate.New(language.Und, collate.IgnoreCase)
	slices.SortStableFunc(out, func(a, b record.Scored) int {
		if c := cmp.Compare(b.Score(), a.Score()); c != 0 {
			return c
		}
		return coll.CompareString(a.Record().DisplayName(), b.Record().DisplayName())
	})
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
