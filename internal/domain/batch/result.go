// Package batch describes per-item outcomes of bulk catalog imports.
package batch

// Kind names the catalog collection an item belongs to.
type Kind string

// Importable kinds.
const (
	KindDestination Kind = "destination"
	KindPackage     Kind = "package"
)

// ItemStatus is the processing outcome of a single item.
type ItemStatus string

// Item status values.
const (
	StatusOK      ItemStatus = "ok"
	StatusSkipped ItemStatus = "skipped"
	StatusError   ItemStatus = "error"
)

// Result is the outcome of importing one item. Label is the human name
// (destination name or package title); ID is set only when stored.
type Result struct {
	kind   Kind
	label  string
	id     string
	status ItemStatus
	err    error
}

// NewOK creates a successful result.
func NewOK(kind Kind, label, id string) Result {
	return Result{kind: kind, label: label, id: id, status: StatusOK}
}

// NewSkipped marks an item that already exists.
func NewSkipped(kind Kind, label string) Result {
	return Result{kind: kind, label: label, status: StatusSkipped}
}

// NewError creates a failed result.
func NewError(kind Kind, label string, err error) Result {
	return Result{kind: kind, label: label, status: StatusError, err: err}
}

func (r Result) Kind() Kind         { return r.kind }
func (r Result) Label() string      { return r.label }
func (r Result) ID() string         { return r.id }
func (r Result) Status() ItemStatus { return r.status }
func (r Result) Err() error         { return r.err }

// Summary counts results per status.
type Summary struct {
	OK      int
	Skipped int
	Failed  int
}

// Summarize tallies a result list.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.status {
		case StatusOK:
			s.OK++
		case StatusSkipped:
			s.Skipped++
		case StatusError:
			s.Failed++
		}
	}
	return s
}
