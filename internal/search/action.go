package search

// ActionKind enumerates the transitions a resource accepts
type ActionKind int

const (
	ActionSetQuery ActionKind = iota
	ActionSetPage
	ActionForceInitialLoad
	ActionResultsArrived
	ActionRequestFailed
)

func (k ActionKind) String() string {
	switch k {
	case ActionSetQuery:
		return "SetQuery"
	case ActionSetPage:
		return "SetPage"
	case ActionForceInitialLoad:
		return "ForceInitialLoad"
	case ActionResultsArrived:
		return "ResultsArrived"
	case ActionRequestFailed:
		return "RequestFailed"
	default:
		return "Unknown"
	}
}

// Action is a tagged union; only the fields for Kind are meaningful
type Action[Q Pager[Q], T any] struct {
	Kind ActionKind

	Query   Q     // ActionSetQuery
	Page    int   // ActionSetPage
	Results []T   // ActionResultsArrived
	Total   *int  // ActionResultsArrived; nil keeps the stored total
	Err     error // ActionRequestFailed
}

// Triggers reports whether the action can start a fetch
func (a Action[Q, T]) Triggers() bool {
	switch a.Kind {
	case ActionSetQuery, ActionSetPage, ActionForceInitialLoad:
		return true
	}
	return false
}

// SetQueryAction replaces the whole query
func SetQueryAction[Q Pager[Q], T any](q Q) Action[Q, T] {
	return Action[Q, T]{Kind: ActionSetQuery, Query: q}
}

// SetPageAction moves to page n, keeping every other filter
func SetPageAction[Q Pager[Q], T any](n int) Action[Q, T] {
	return Action[Q, T]{Kind: ActionSetPage, Page: n}
}

// ForceInitialLoadAction bumps the initial load gate
func ForceInitialLoadAction[Q Pager[Q], T any]() Action[Q, T] {
	return Action[Q, T]{Kind: ActionForceInitialLoad}
}

// ResultsArrivedAction commits a batch of results with a known total
func ResultsArrivedAction[Q Pager[Q], T any](results []T, total int) Action[Q, T] {
	return Action[Q, T]{Kind: ActionResultsArrived, Results: results, Total: &total}
}

// LoadingAction clears results and marks the total unknown
func LoadingAction[Q Pager[Q], T any]() Action[Q, T] {
	return ResultsArrivedAction[Q, T]([]T{}, UnknownTotal)
}

// RequestFailedAction records a failed search
func RequestFailedAction[Q Pager[Q], T any](err error) Action[Q, T] {
	return Action[Q, T]{Kind: ActionRequestFailed, Err: err}
}

// Reduce applies a to s. It is pure and total.
func Reduce[Q Pager[Q], T any](s State[Q, T], a Action[Q, T]) State[Q, T] {
	next := s

	switch a.Kind {
	case ActionSetQuery:
		next.Query = a.Query
		next.Searching = true

	case ActionSetPage:
		next.Query = s.Query.WithPage(a.Page)

	case ActionResultsArrived:
		if a.Total != nil {
			next.TotalResults = *a.Total
		}
		next.Results = a.Results
		if next.Results == nil {
			next.Results = []T{}
		}
		next.Searching = a.Total != nil && *a.Total == UnknownTotal
		next.Err = nil

	case ActionForceInitialLoad:
		next.InitialLoadGate = min(s.InitialLoadGate+1, GateTerminal)

	case ActionRequestFailed:
		next.Err = a.Err
		next.Searching = false
	}

	return next
}
