package tour

import (
	"time"

	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// packageDoc is the stored JSON shape of a travel package.
type packageDoc struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Duration      string    `json:"duration"`
	Price         string    `json:"price"`
	OriginalPrice string    `json:"originalPrice,omitempty"`
	Cities        []string  `json:"cities"`
	Destination   string    `json:"destination,omitempty"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Inclusions    []string  `json:"inclusions"`
	Highlights    []string  `json:"highlights"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	BestSeller    bool      `json:"bestSeller"`
	Popular       bool      `json:"popular"`
	Luxury        bool      `json:"luxury"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toDoc(p domtour.Package) packageDoc {
	f := p.Fields()
	return packageDoc{
		ID:            p.ID(),
		Title:         f.Title,
		Duration:      f.Duration,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Cities:        f.Cities,
		Destination:   f.Destination,
		Rating:        f.Rating,
		Reviews:       f.Reviews,
		Inclusions:    f.Inclusions,
		Highlights:    f.Highlights,
		Image:         f.Image,
		Description:   f.Description,
		BestSeller:    f.BestSeller,
		Popular:       f.Popular,
		Luxury:        f.Luxury,
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func fromDoc(id string, doc packageDoc) domtour.Package {
	return domtour.Reconstruct(id, domtour.Fields{
		Title:         doc.Title,
		Duration:      doc.Duration,
		Price:         doc.Price,
		OriginalPrice: doc.OriginalPrice,
		Cities:        doc.Cities,
		Destination:   doc.Destination,
		Rating:        doc.Rating,
		Reviews:       doc.Reviews,
		Inclusions:    doc.Inclusions,
		Highlights:    doc.Highlights,
		Image:         doc.Image,
		Description:   doc.Description,
		BestSeller:    doc.BestSeller,
		Popular:       doc.Popular,
		Luxury:        doc.Luxury,
	}, doc.CreatedAt, doc.UpdatedAt)
}
