package destination

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain"
)

// MaxRating is the upper bound of the rating scale.
const MaxRating = 5.0

// Fields holds the user-editable attributes of a destination.
type Fields struct {
	Name        string
	State       string
	Category    string
	Price       string
	Rating      float64
	Reviews     int
	BestTime    string
	Highlights  []string
	Image       string
	Description string
}

// Destination is a travel destination aggregate (immutable value object).
type Destination struct {
	id        string
	fields    Fields
	createdAt time.Time
	updatedAt time.Time
}

// New validates and creates a Destination stamped with now.
func New(id string, f Fields, now time.Time) (Destination, error) {
	if id == "" {
		return Destination{}, fmt.Errorf("%w: destination ID is required", domain.ErrInvalidInput)
	}
	f = normalize(f)
	if err := validate(f); err != nil {
		return Destination{}, err
	}
	return Destination{id: id, fields: f, createdAt: now, updatedAt: now}, nil
}

// Reconstruct creates a Destination without validation (storage hydration).
func Reconstruct(id string, f Fields, createdAt, updatedAt time.Time) Destination {
	return Destination{id: id, fields: f, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the destination identifier.
func (d Destination) ID() string { return d.id }

// Name returns the display name.
func (d Destination) Name() string { return d.fields.Name }

// State returns the region the destination belongs to.
func (d Destination) State() string { return d.fields.State }

// Category returns the free-form category label.
func (d Destination) Category() string { return d.fields.Category }

// Price returns the free-form price string.
func (d Destination) Price() string { return d.fields.Price }

// Rating returns the 0-5 rating.
func (d Destination) Rating() float64 { return d.fields.Rating }

// Reviews returns the review count.
func (d Destination) Reviews() int { return d.fields.Reviews }

// BestTime returns the recommended visiting season.
func (d Destination) BestTime() string { return d.fields.BestTime }

// Highlights returns a copy of the ordered highlight list.
func (d Destination) Highlights() []string { return slices.Clone(d.fields.Highlights) }

// Image returns the image URI.
func (d Destination) Image() string { return d.fields.Image }

// Description returns the long description.
func (d Destination) Description() string { return d.fields.Description }

// CreatedAt returns the creation timestamp.
func (d Destination) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last modification timestamp.
func (d Destination) UpdatedAt() time.Time { return d.updatedAt }

// Fields returns a copy of the editable attributes.
func (d Destination) Fields() Fields {
	f := d.fields
	f.Highlights = slices.Clone(f.Highlights)
	return f
}

// Apply returns a copy with the patch merged in and updatedAt set to now.
// The merged result is validated as a whole.
func (d Destination) Apply(p Patch, now time.Time) (Destination, error) {
	if p.IsEmpty() {
		return Destination{}, fmt.Errorf("%w: at least one field must be provided", domain.ErrInvalidInput)
	}
	f := p.merge(d.Fields())
	f = normalize(f)
	if err := validate(f); err != nil {
		return Destination{}, err
	}
	return Destination{id: d.id, fields: f, createdAt: d.createdAt, updatedAt: now}, nil
}

func normalize(f Fields) Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.State = strings.TrimSpace(f.State)
	f.Category = strings.TrimSpace(f.Category)
	f.Price = strings.TrimSpace(f.Price)
	f.Highlights = slices.Clone(f.Highlights)
	return f
}

func validate(f Fields) error {
	required := []struct {
		name, value string
	}{
		{"name", f.Name},
		{"state", f.State},
		{"category", f.Category},
		{"price", f.Price},
		{"description", f.Description},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidInput, r.name)
		}
	}
	if f.Rating < 0 || f.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be between 0 and %g", domain.ErrInvalidInput, MaxRating)
	}
	if f.Reviews < 0 {
		return fmt.Errorf("%w: reviews must be non-negative", domain.ErrInvalidInput)
	}
	return nil
}
