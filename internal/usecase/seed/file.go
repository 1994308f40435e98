package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	domdest "github.com/kailas-cloud/tripdex/internal/domain/destination"
	domtour "github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// Catalog is the content of a seed file.
type Catalog struct {
	Destinations []domdest.Fields
	Packages     []domtour.Fields
}

type fileDoc struct {
	Destinations []destinationItem `yaml:"destinations"`
	Packages     []packageItem     `yaml:"packages"`
}

type destinationItem struct {
	Name        string   `yaml:"name"`
	State       string   `yaml:"state"`
	Category    string   `yaml:"category"`
	Price       string   `yaml:"price"`
	Rating      float64  `yaml:"rating"`
	Reviews     int      `yaml:"reviews"`
	BestTime    string   `yaml:"best_time"`
	Highlights  []string `yaml:"highlights"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
}

type packageItem struct {
	Title         string   `yaml:"title"`
	Duration      string   `yaml:"duration"`
	Price         string   `yaml:"price"`
	OriginalPrice string   `yaml:"original_price"`
	Cities        []string `yaml:"cities"`
	Destination   string   `yaml:"destination"`
	Rating        float64  `yaml:"rating"`
	Reviews       int      `yaml:"reviews"`
	Inclusions    []string `yaml:"inclusions"`
	Highlights    []string `yaml:"highlights"`
	Image         string   `yaml:"image"`
	Description   string   `yaml:"description"`
	BestSeller    bool     `yaml:"best_seller"`
	Popular       bool     `yaml:"popular"`
	Luxury        bool     `yaml:"luxury"`
}

// LoadFile reads a YAML seed file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied
	if err != nil {
		return Catalog{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed YAML. Unknown keys are rejected so typos surface early.
func Parse(data []byte) (Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc fileDoc
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("parse seed file: %w", err)
	}

	cat := Catalog{
		Destinations: make([]domdest.Fields, 0, len(doc.Destinations)),
		Packages:     make([]domtour.Fields, 0, len(doc.Packages)),
	}
	for _, d := range doc.Destinations {
		cat.Destinations = append(cat.Destinations, domdest.Fields{
			Name:        d.Name,
			State:       d.State,
			Category:    d.Category,
			Price:       d.Price,
			Rating:      d.Rating,
			Reviews:     d.Reviews,
			BestTime:    d.BestTime,
			Highlights:  d.Highlights,
			Image:       d.Image,
			Description: d.Description,
		})
	}
	for _, p := range doc.Packages {
		cat.Packages = append(cat.Packages, domtour.Fields{
			Title:         p.Title,
			Duration:      p.Duration,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Cities:        p.Cities,
			Destination:   p.Destination,
			Rating:        p.Rating,
			Reviews:       p.Reviews,
			Inclusions:    p.Inclusions,
			Highlights:    p.Highlights,
			Image:         p.Image,
			Description:   p.Description,
			BestSeller:    p.BestSeller,
			Popular:       p.Popular,
			Luxury:        p.Luxury,
		})
	}
	return cat, nil
}
