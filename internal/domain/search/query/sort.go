package query

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/tour"
)

type sortKeys[T any] struct {
	price     func(T) string
	rating    func(T) float64
	reviews   func(T) int
	createdAt func(T) time.Time
}

var destinationKeys = sortKeys[destination.Destination]{
	price:     destination.Destination.Price,
	rating:    destination.Destination.Rating,
	reviews:   destination.Destination.Reviews,
	createdAt: destination.Destination.CreatedAt,
}

var packageKeys = sortKeys[tour.Package]{
	price:     tour.Package.Price,
	rating:    tour.Package.Rating,
	reviews:   tour.Package.Reviews,
	createdAt: tour.Package.CreatedAt,
}

// comparator orders by the primary key, then newest first.
func comparator[T any](key SortKey, k sortKeys[T]) func(a, b T) int {
	newest := func(a, b T) int { return k.createdAt(b).Compare(k.createdAt(a)) }

	var primary func(a, b T) int
	switch key {
	case SortPriceAsc:
		primary = func(a, b T) int { return comparePrice(k.price(a), k.price(b), false) }
	case SortPriceDesc:
		primary = func(a, b T) int { return comparePrice(k.price(a), k.price(b), true) }
	case SortRating:
		primary = func(a, b T) int { return cmp.Compare(k.rating(b), k.rating(a)) }
	case SortReviews:
		primary = func(a, b T) int { return cmp.Compare(k.reviews(b), k.reviews(a)) }
	default:
		return newest
	}

	return func(a, b T) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return newest(a, b)
	}
}

// comparePrice orders parsed prices; unparsable prices sort last in both
// directions.
func comparePrice(a, b string, desc bool) int {
	pa, okA := ParsePrice(a)
	pb, okB := ParsePrice(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	case desc:
		return cmp.Compare(pb, pa)
	default:
		return cmp.Compare(pa, pb)
	}
}

// ParsePrice extracts the first amount from a free-form price such as
// "₹8,000", "$1,299.50 per person" or "8000-12000". "Free" parses as zero.
func ParsePrice(s string) (float64, bool) {
	if strings.Contains(strings.ToLower(s), "free") {
		return 0, true
	}

	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, false
	}

	var b strings.Builder
	for _, r := range s[start:] {
		switch {
		case isDigit(r), r == '.':
			b.WriteRune(r)
		case r == ',':
			// thousands separator
		default:
			return parseAmount(b.String())
		}
	}
	return parseAmount(b.String())
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimRight(s, "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
