package seed

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleSeed = `
destinations:
  - name: Munnar
    state: Kerala
    category: Hill Station
    price: "₹6,500"
    rating: 4.7
    reviews: 1200
    best_time: Sep - Mar
    highlights: [Tea gardens, Eravikulam]
    description: Rolling tea estates.
packages:
  - title: Kerala Backwaters
    duration: 5 Days / 4 Nights
    price: "₹25,000"
    original_price: "₹30,000"
    cities: [Kochi, Alleppey]
    destination: Kerala
    best_seller: true
    description: Houseboat stay.
`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(sampleSeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Destinations) != 1 || len(cat.Packages) != 1 {
		t.Fatalf("got %d destinations, %d packages", len(cat.Destinations), len(cat.Packages))
	}
	d := cat.Destinations[0]
	if d.Name != "Munnar" || d.BestTime != "Sep - Mar" || len(d.Highlights) != 2 || d.Reviews != 1200 {
		t.Errorf("unexpected destination: %+v", d)
	}
	p := cat.Packages[0]
	if p.OriginalPrice != "₹30,000" || !p.BestSeller || p.Luxury || len(p.Cities) != 2 {
		t.Errorf("unexpected package: %+v", p)
	}
}

func TestParse_UnknownField(t *testing.T) {
	if _, err := Parse([]byte("destinations:\n  - nmae: typo\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParse_Empty(t *testing.T) {
	cat, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Destinations) != 0 || len(cat.Packages) != 0 {
		t.Errorf("expected empty catalog, got %+v", cat)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(sampleSeed), 0o600); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Destinations) != 1 {
		t.Errorf("expected 1 destination, got %d", len(cat.Destinations))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
