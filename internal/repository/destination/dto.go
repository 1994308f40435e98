package destination

import (
	"time"

	domdest "github.com/kailas-cloud/tripdex/internal/domain/destination"
)

// destinationDoc is the stored JSON shape. Field names follow the public API.
type destinationDoc struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	BestTime    string    `json:"bestTime"`
	Highlights  []string  `json:"highlights"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toDoc(d domdest.Destination) destinationDoc {
	f := d.Fields()
	return destinationDoc{
		ID:          d.ID(),
		Name:        f.Name,
		State:       f.State,
		Category:    f.Category,
		Price:       f.Price,
		Rating:      f.Rating,
		Reviews:     f.Reviews,
		BestTime:    f.BestTime,
		Highlights:  f.Highlights,
		Image:       f.Image,
		Description: f.Description,
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

// fromDoc hydrates without validation. The index member is authoritative for the ID.
func fromDoc(id string, doc destinationDoc) domdest.Destination {
	return domdest.Reconstruct(id, domdest.Fields{
		Name:        doc.Name,
		State:       doc.State,
		Category:    doc.Category,
		Price:       doc.Price,
		Rating:      doc.Rating,
		Reviews:     doc.Reviews,
		BestTime:    doc.BestTime,
		Highlights:  doc.Highlights,
		Image:       doc.Image,
		Description: doc.Description,
	}, doc.CreatedAt, doc.UpdatedAt)
}
