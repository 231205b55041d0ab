// Package search holds the client-side state for paginated, filterable
// server searches. Each Resource owns one State and is driven from a single
// Bubble Tea loop: actions reduce synchronously, fetches run as tea.Cmds and
// come back as FetchedMsg.
package search

// UnknownTotal marks a total that is not known yet because a search is loading
const UnknownTotal = -1

// GateTerminal is the value at which the initial load gate stops moving
const GateTerminal = 2

// Pager is implemented by every query type. Queries must be comparable so the
// runner can tell whether a query is already being fetched.
type Pager[Q any] interface {
	comparable
	GetPage() int
	GetPageSize() int
	WithPage(page int) Q
}

// Status summarizes a State for rendering
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// State is the result cache for one resource. It is a value: every
// transition returns a new State and never mutates Results in place.
type State[Q Pager[Q], T any] struct {
	Query           Q
	Results         []T // Server order, never re-sorted
	TotalResults    int // UnknownTotal while loading
	Searching       bool
	InitialLoadGate int // 0, 1 or GateTerminal
	Err             error
}

// NewState returns the loading state a resource starts in
func NewState[Q Pager[Q], T any](query Q) State[Q, T] {
	return State[Q, T]{
		Query:        query,
		Results:      []T{},
		TotalResults: UnknownTotal,
		Searching:    true,
	}
}

// Status reports whether the state is loading, loaded, or failed
func (s State[Q, T]) Status() Status {
	if s.Err != nil {
		return StatusErrored
	}
	if s.Searching || s.TotalResults == UnknownTotal {
		return StatusLoading
	}
	return StatusLoaded
}

// TotalPages returns ceil(total / pageSize), or 0 when nothing is known
func (s State[Q, T]) TotalPages() int {
	size := s.Query.GetPageSize()
	if s.TotalResults <= 0 || size <= 0 {
		return 0
	}
	return (s.TotalResults + size - 1) / size
}
