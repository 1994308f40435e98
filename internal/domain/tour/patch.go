package tour

import "slices"

// Patch is a partial package update. Nil fields are unchanged.
type Patch struct {
	Title         *string
	Duration      *string
	Price         *string
	OriginalPrice *string
	Cities        []string
	Destination   *string
	Rating        *float64
	Reviews       *int
	Inclusions    []string
	Highlights    []string
	Image         *string
	Description   *string
	BestSeller    *bool
	Popular       *bool
	Luxury        *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Duration == nil && p.Price == nil && p.OriginalPrice == nil &&
		p.Cities == nil && p.Destination == nil && p.Rating == nil && p.Reviews == nil &&
		p.Inclusions == nil && p.Highlights == nil && p.Image == nil && p.Description == nil &&
		p.BestSeller == nil && p.Popular == nil && p.Luxury == nil
}

func (p Patch) merge(f Fields) Fields {
	set(&f.Title, p.Title)
	set(&f.Duration, p.Duration)
	set(&f.Price, p.Price)
	set(&f.OriginalPrice, p.OriginalPrice)
	set(&f.Destination, p.Destination)
	set(&f.Rating, p.Rating)
	set(&f.Reviews, p.Reviews)
	set(&f.Image, p.Image)
	set(&f.Description, p.Description)
	set(&f.BestSeller, p.BestSeller)
	set(&f.Popular, p.Popular)
	set(&f.Luxury, p.Luxury)
	if p.Cities != nil {
		f.Cities = slices.Clone(p.Cities)
	}
	if p.Inclusions != nil {
		f.Inclusions = slices.Clone(p.Inclusions)
	}
	if p.Highlights != nil {
		f.Highlights = slices.Clone(p.Highlights)
	}
	return f
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
