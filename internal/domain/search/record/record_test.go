package record

import (
	"testing"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/tour"
)

func TestFromDestination(t *testing.T) {
	d := destination.Reconstruct("d-1", destination.Fields{Name: "Munnar", State: "Kerala", Rating: 4.7}, time.Time{}, time.Time{})
	r := FromDestination(d)

	if r.Type() != TypeDestination {
		t.Errorf("Type() = %q", r.Type())
	}
	if r.ID() != "d-1" || r.DisplayName() != "Munnar" || r.Location() != "Kerala" || r.Rating() != 4.7 {
		t.Errorf("unexpected projection: %q %q %q %v", r.ID(), r.DisplayName(), r.Location(), r.Rating())
	}
	if _, ok := r.Package(); ok {
		t.Error("destination record reported a package")
	}
}

func TestFromPackage_Location(t *testing.T) {
	tests := []struct {
		name   string
		fields tour.Fields
		want   string
	}{
		{"label wins", tour.Fields{Destination: "Rajasthan", Cities: []string{"Jaipur"}}, "Rajasthan"},
		{"cities fallback", tour.Fields{Cities: []string{"Delhi", "Agra", "Jaipur"}}, "Delhi, Agra, Jaipur"},
		{"nothing", tour.Fields{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromPackage(tour.Reconstruct("p-1", tt.fields, time.Time{}, time.Time{}))
			if got := r.Location(); got != tt.want {
				t.Errorf("Location() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithID_KeepsType(t *testing.T) {
	r := FromPackage(tour.Reconstruct("", tour.Fields{Title: "Goa Beaches"}, time.Time{}, time.Time{}))
	withID := r.WithID("generated")

	if withID.ID() != "generated" || withID.Type() != TypePackage {
		t.Errorf("WithID changed tag or lost id: %q %q", withID.ID(), withID.Type())
	}
	if r.ID() != "" {
		t.Error("WithID mutated the receiver")
	}
}

func TestZeroRecord(t *testing.T) {
	var r Record
	if r.DisplayName() != "" || r.Location() != "" || r.Rating() != 0 {
		t.Error("zero record should project to empty values")
	}
}
