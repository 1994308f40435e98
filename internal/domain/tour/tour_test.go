package tour

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain"
)

var now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func validFields() Fields {
	return Fields{
		Title:       "Golden Triangle",
		Duration:    "6 Days / 5 Nights",
		Price:       "₹24,999",
		Cities:      []string{"Delhi", " Agra ", "", "Jaipur"},
		Rating:      4.5,
		Reviews:     320,
		Description: "Classic circuit of north India.",
		BestSeller:  true,
	}
}

func TestNew_Valid(t *testing.T) {
	p, err := New("p-1", validFields(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title() != "Golden Triangle" {
		t.Errorf("Title() = %q", p.Title())
	}
	cities := p.Cities()
	if len(cities) != 3 || cities[1] != "Agra" {
		t.Errorf("cities not normalized: %v", cities)
	}
	if !p.HasFlag(FlagBestSeller) || p.HasFlag(FlagLuxury) {
		t.Error("flags not reflected by HasFlag")
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
	}{
		{"empty title", func(f *Fields) { f.Title = "" }},
		{"empty duration", func(f *Fields) { f.Duration = "" }},
		{"empty price", func(f *Fields) { f.Price = " " }},
		{"empty description", func(f *Fields) { f.Description = "" }},
		{"no cities", func(f *Fields) { f.Cities = []string{" "} }},
		{"rating above scale", func(f *Fields) { f.Rating = 6 }},
		{"negative reviews", func(f *Fields) { f.Reviews = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			if _, err := New("p-1", f, now); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in   string
		want Flag
		ok   bool
	}{
		{"bestSeller", FlagBestSeller, true},
		{"popular", FlagPopular, true},
		{"luxury", FlagLuxury, true},
		{"bestseller", "", false},
		{"budget", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseFlag(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseFlag(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApply_FlagsAndLists(t *testing.T) {
	p, _ := New("p-1", validFields(), now)
	later := now.Add(time.Minute)

	lux := true
	best := false
	updated, err := p.Apply(Patch{Luxury: &lux, BestSeller: &best, Cities: []string{"Udaipur"}}, later)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Luxury() || updated.BestSeller() {
		t.Errorf("flags not patched: luxury=%v bestSeller=%v", updated.Luxury(), updated.BestSeller())
	}
	if c := updated.Cities(); len(c) != 1 || c[0] != "Udaipur" {
		t.Errorf("cities not replaced: %v", c)
	}
	if !updated.UpdatedAt().Equal(later) || !updated.CreatedAt().Equal(now) {
		t.Error("timestamps wrong after Apply")
	}
	if !p.BestSeller() {
		t.Error("original mutated by Apply")
	}
}

func TestApply_Empty(t *testing.T) {
	p, _ := New("p-1", validFields(), now)
	if _, err := p.Apply(Patch{}, now); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
