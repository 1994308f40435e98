package destination

import "slices"

// Patch is a partial destination update. Nil fields are unchanged.
type Patch struct {
	Name        *string
	State       *string
	Category    *string
	Price       *string
	Rating      *float64
	Reviews     *int
	BestTime    *string
	Highlights  []string
	Image       *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.State == nil && p.Category == nil && p.Price == nil &&
		p.Rating == nil && p.Reviews == nil && p.BestTime == nil && p.Highlights == nil &&
		p.Image == nil && p.Description == nil
}

func (p Patch) merge(f Fields) Fields {
	setString(&f.Name, p.Name)
	setString(&f.State, p.State)
	setString(&f.Category, p.Category)
	setString(&f.Price, p.Price)
	setString(&f.BestTime, p.BestTime)
	setString(&f.Image, p.Image)
	setString(&f.Description, p.Description)
	if p.Rating != nil {
		f.Rating = *p.Rating
	}
	if p.Reviews != nil {
		f.Reviews = *p.Reviews
	}
	if p.Highlights != nil {
		f.Highlights = slices.Clone(p.Highlights)
	}
	return f
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
