package record

import (
	"strings"

	"github.com/kailas-cloud/tripdex/internal/domain/destination"
	"github.com/kailas-cloud/tripdex/internal/domain/tour"
)

// Type discriminates the two searchable collections.
type Type string

// Record types.
const (
	TypeDestination Type = "destination"
	TypePackage     Type = "package"
)

// Record is a catalog item tagged with the collection it came from.
// The tag is set once by FromDestination or FromPackage and never changes.
type Record struct {
	typ  Type
	id   string
	dest destination.Destination
	pkg  tour.Package
}

// FromDestination tags a destination.
func FromDestination(d destination.Destination) Record {
	return Record{typ: TypeDestination, id: d.ID(), dest: d}
}

// FromPackage tags a package.
func FromPackage(p tour.Package) Record {
	return Record{typ: TypePackage, id: p.ID(), pkg: p}
}

// Type returns the collection tag.
func (r Record) Type() Type { return r.typ }

// ID returns the record identifier, which may differ from the underlying
// entity ID when one was synthesized.
func (r Record) ID() string { return r.id }

// WithID returns a copy carrying the given identifier.
func (r Record) WithID(id string) Record {
	r.id = id
	return r
}

// Destination returns the underlying destination, if this is one.
func (r Record) Destination() (destination.Destination, bool) {
	return r.dest, r.typ == TypeDestination
}

// Package returns the underlying package, if this is one.
func (r Record) Package() (tour.Package, bool) {
	return r.pkg, r.typ == TypePackage
}

// DisplayName is the destination name or the package title.
func (r Record) DisplayName() string {
	switch r.typ {
	case TypeDestination:
		return r.dest.Name()
	case TypePackage:
		return r.pkg.Title()
	default:
		return ""
	}
}

// Location is the destination state, or for a package its destination label
// falling back to its cities joined with ", ".
func (r Record) Location() string {
	switch r.typ {
	case TypeDestination:
		return r.dest.State()
	case TypePackage:
		if label := r.pkg.Destination(); label != "" {
			return label
		}
		return strings.Join(r.pkg.Cities(), ", ")
	default:
		return ""
	}
}

// Rating returns the entity rating, zero when unknown.
func (r Record) Rating() float64 {
	switch r.typ {
	case TypeDestination:
		return r.dest.Rating()
	case TypePackage:
		return r.pkg.Rating()
	default:
		return 0
	}
}

// Scored pairs a record with a relevance score. It is never persisted.
type Scored struct {
	record Record
	score  float64
}

// NewScored creates a scored record.
func NewScored(r Record, score float64) Scored {
	return Scored{record: r, score: score}
}

// Record returns the scored record.
func (s Scored) Record() Record { return s.record }

// Score returns the relevance score.
func (s Scored) Score() float64 { return s.score }
