// Package tour holds the travel package aggregate. The Go name avoids the
// reserved word; everywhere outside the code the entity is a "package".
package tour

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain"
)

// MaxRating is the upper bound of the rating scale.
const MaxRating = 5.0

// Flag is a merchandising marker on a package.
type Flag string

// Known package flags.
const (
	FlagBestSeller Flag = "bestSeller"
	FlagPopular    Flag = "popular"
	FlagLuxury     Flag = "luxury"
)

// ParseFlag returns the flag named by s. Matching is exact, as the catalog
// clients send the camelCase names.
func ParseFlag(s string) (Flag, bool) {
	switch f := Flag(s); f {
	case FlagBestSeller, FlagPopular, FlagLuxury:
		return f, true
	default:
		return "", false
	}
}

// Fields holds the user-editable attributes of a package.
type Fields struct {
	Title         string
	Duration      string
	Price         string
	OriginalPrice string
	Cities        []string
	Destination   string
	Rating        float64
	Reviews       int
	Inclusions    []string
	Highlights    []string
	Image         string
	Description   string
	BestSeller    bool
	Popular       bool
	Luxury        bool
}

// Package is a bookable travel package aggregate (immutable value object).
type Package struct {
	id        string
	fields    Fields
	createdAt time.Time
	updatedAt time.Time
}

// New validates and creates a Package stamped with now.
func New(id string, f Fields, now time.Time) (Package, error) {
	if id == "" {
		return Package{}, fmt.Errorf("%w: package ID is required", domain.ErrInvalidInput)
	}
	f = normalize(f)
	if err := validate(f); err != nil {
		return Package{}, err
	}
	return Package{id: id, fields: f, createdAt: now, updatedAt: now}, nil
}

// Reconstruct creates a Package without validation (storage hydration).
func Reconstruct(id string, f Fields, createdAt, updatedAt time.Time) Package {
	return Package{id: id, fields: f, createdAt: createdAt, updatedAt: updatedAt}
}

func (p Package) ID() string            { return p.id }
func (p Package) Title() string         { return p.fields.Title }
func (p Package) Duration() string      { return p.fields.Duration }
func (p Package) Price() string         { return p.fields.Price }
func (p Package) OriginalPrice() string { return p.fields.OriginalPrice }
func (p Package) Cities() []string      { return slices.Clone(p.fields.Cities) }
func (p Package) Destination() string   { return p.fields.Destination }
func (p Package) Rating() float64       { return p.fields.Rating }
func (p Package) Reviews() int          { return p.fields.Reviews }
func (p Package) Inclusions() []string  { return slices.Clone(p.fields.Inclusions) }
func (p Package) Highlights() []string  { return slices.Clone(p.fields.Highlights) }
func (p Package) Image() string         { return p.fields.Image }
func (p Package) Description() string   { return p.fields.Description }
func (p Package) BestSeller() bool      { return p.fields.BestSeller }
func (p Package) Popular() bool         { return p.fields.Popular }
func (p Package) Luxury() bool          { return p.fields.Luxury }
func (p Package) CreatedAt() time.Time  { return p.createdAt }
func (p Package) UpdatedAt() time.Time  { return p.updatedAt }

// HasFlag reports whether the given merchandising flag is set.
func (p Package) HasFlag(f Flag) bool {
	switch f {
	case FlagBestSeller:
		return p.fields.BestSeller
	case FlagPopular:
		return p.fields.Popular
	case FlagLuxury:
		return p.fields.Luxury
	default:
		return false
	}
}

// Fields returns a copy of the editable attributes.
func (p Package) Fields() Fields {
	f := p.fields
	f.Cities = slices.Clone(f.Cities)
	f.Inclusions = slices.Clone(f.Inclusions)
	f.Highlights = slices.Clone(f.Highlights)
	return f
}

// Apply returns a copy with the patch merged in and updatedAt set to now.
func (p Package) Apply(patch Patch, now time.Time) (Package, error) {
	if patch.IsEmpty() {
		return Package{}, fmt.Errorf("%w: at least one field must be provided", domain.ErrInvalidInput)
	}
	f := normalize(patch.merge(p.Fields()))
	if err := validate(f); err != nil {
		return Package{}, err
	}
	return Package{id: p.id, fields: f, createdAt: p.createdAt, updatedAt: now}, nil
}

func normalize(f Fields) Fields {
	f.Title = strings.TrimSpace(f.Title)
	f.Duration = strings.TrimSpace(f.Duration)
	f.Price = strings.TrimSpace(f.Price)
	f.OriginalPrice = strings.TrimSpace(f.OriginalPrice)
	f.Destination = strings.TrimSpace(f.Destination)
	cities := make([]string, 0, len(f.Cities))
	for _, c := range f.Cities {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	f.Cities = cities
	f.Inclusions = slices.Clone(f.Inclusions)
	f.Highlights = slices.Clone(f.Highlights)
	return f
}

func validate(f Fields) error {
	required := []struct {
		name, value string
	}{
		{"title", f.Title},
		{"duration", f.Duration},
		{"price", f.Price},
		{"description", f.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, r.name)
		}
	}
	if len(f.Cities) == 0 {
		return fmt.Errorf("%w: at least one city is required", domain.ErrInvalidInput)
	}
	if f.Rating < 0 || f.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be between 0 and %g", domain.ErrInvalidInput, MaxRating)
	}
	if f.Reviews < 0 {
		return fmt.Errorf("%w: reviews must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}
