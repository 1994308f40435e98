package query

import (
	"strings"

	"github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// MaxTextLength caps free-text input; longer input is truncated.
const MaxTextLength = 256

// SortKey names a result ordering.
type SortKey string

// Sort keys accepted on list endpoints.
const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortReviews   SortKey = "reviews"
)

// IsValid checks if the key is one of the supported values.
func (k SortKey) IsValid() bool {
	switch k {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortRating, SortReviews:
		return true
	default:
		return false
	}
}

// ParseSortKey maps raw input to a SortKey. Unknown or empty input falls
// back to SortNewest.
func ParseSortKey(s string) SortKey {
	if k := SortKey(strings.TrimSpace(s)); k.IsValid() {
		return k
	}
	return SortNewest
}

// Criteria is the user-facing query over the catalog.
// Category applies to destinations only, Type to packages only.
type Criteria struct {
	Text     string
	Category string
	Type     tour.Flag
	Sort     SortKey
}

// NewCriteria normalizes raw request parameters. Unknown package types are
// ignored and unknown sort keys fall back to newest.
func NewCriteria(text, category, typ, sortBy string) Criteria {
	c := Criteria{
		Text:     clip(strings.TrimSpace(text)),
		Category: clip(strings.TrimSpace(category)),
		Sort:     ParseSortKey(sortBy),
	}
	if f, ok := tour.ParseFlag(strings.TrimSpace(typ)); ok {
		c.Type = f
	}
	return c
}

func clip(s string) string {
	if len(s) <= MaxTextLength {
		return s
	}
	// Cut on a rune boundary.
	for i := MaxTextLength; i > 0; i-- {
		if isRuneStart(s[i]) {
			return s[:i]
		}
	}
	return ""
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
