package search

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Fetcher loads one page for a query and reports the total match count
type Fetcher[Q any, T any] func(ctx context.Context, q Q) ([]T, int, error)

// FetchedMsg carries a fetch result back into the loop. Seq identifies the
// request so superseded responses can be dropped.
type FetchedMsg[Q Pager[Q], T any] struct {
	Resource string
	Seq      uint64
	Query    Q
	Results  []T
	Total    int
	Err      error
}

// ActionMsg routes an action to the named resource through tea.Program.Send
type ActionMsg[Q Pager[Q], T any] struct {
	Resource string
	Action   Action[Q, T]
}

// AlertMsg is emitted when a search fails and the user should be told
type AlertMsg struct {
	Resource string
	Err      error
}

func (m AlertMsg) Error() string {
	return "failed to fetch " + m.Resource + " - " + m.Err.Error()
}

func (m AlertMsg) Unwrap() error {
	return m.Err
}

// Options configures a Resource
type Options[Q Pager[Q], T any] struct {
	// Name routes messages and labels logs, e.g. "playlists"
	Name string

	Fetch Fetcher[Q, T]

	// Timeout bounds each request; zero leaves it to the fetcher
	Timeout time.Duration

	// OnQueryChange runs after every SetQuery is reduced
	OnQueryChange func(q Q)

	Logger *slog.Logger
}

// Resource is one independently paginated search. It is not safe for
// concurrent use: all methods must run on the loop that owns it.
type Resource[Q Pager[Q], T any] struct {
	name          string
	fetch         Fetcher[Q, T]
	timeout       time.Duration
	onQueryChange func(Q)
	logger        *slog.Logger

	state State[Q, T]

	seq           uint64 // last issued request
	inFlight      bool
	inFlightQuery Q
	cancel        context.CancelFunc
}

// New creates a resource in its initial loading state
func New[Q Pager[Q], T any](initial Q, opts Options[Q, T]) *Resource[Q, T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resource[Q, T]{
		name:          opts.Name,
		fetch:         opts.Fetch,
		timeout:       opts.Timeout,
		onQueryChange: opts.OnQueryChange,
		logger:        logger.With("resource", opts.Name),
		state:         NewState[Q, T](initial),
	}
}

// Name returns the routing name of the resource
func (r *Resource[Q, T]) Name() string {
	return r.name
}

// State returns the current state value
func (r *Resource[Q, T]) State() State[Q, T] {
	return r.state
}

// Seq returns the sequence number of the most recently issued request
func (r *Resource[Q, T]) Seq() uint64 {
	return r.seq
}

// SetQuery replaces the query and refetches
func (r *Resource[Q, T]) SetQuery(q Q) tea.Cmd {
	return r.Dispatch(SetQueryAction[Q, T](q))
}

// SetPage moves to page n and refetches
func (r *Resource[Q, T]) SetPage(n int) tea.Cmd {
	return r.Dispatch(SetPageAction[Q, T](n))
}

// ForceInitialLoad fetches the first time it is called and never again
func (r *Resource[Q, T]) ForceInitialLoad() tea.Cmd {
	return r.Dispatch(ForceInitialLoadAction[Q, T]())
}

// Retry refetches the current query
func (r *Resource[Q, T]) Retry() tea.Cmd {
	return r.search()
}

// Dispatch reduces a and runs its effect. The returned command, if any,
// performs the fetch.
func (r *Resource[Q, T]) Dispatch(a Action[Q, T]) tea.Cmd {
	r.state = Reduce(r.state, a)

	switch a.Kind {
	case ActionSetQuery:
		if r.onQueryChange != nil {
			r.onQueryChange(r.state.Query)
		}
		if r.inFlight && r.inFlightQuery == r.state.Query {
			r.logger.Debug("query already in flight", "seq", r.seq)
			return nil
		}
		return r.search()

	case ActionSetPage:
		if r.inFlight && r.inFlightQuery == r.state.Query {
			r.logger.Debug("page already in flight", "seq", r.seq)
			return nil
		}
		return r.search()

	case ActionForceInitialLoad:
		// The gate was bumped in the same step; only the 0->1 bump loads
		if r.state.InitialLoadGate >= GateTerminal {
			return nil
		}
		return r.search()
	}

	return nil
}

// Update handles messages addressed to this resource and ignores the rest
func (r *Resource[Q, T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FetchedMsg[Q, T]:
		if msg.Resource != r.name {
			return nil
		}
		return r.commit(msg)
	case ActionMsg[Q, T]:
		if msg.Resource != r.name {
			return nil
		}
		return r.Dispatch(msg.Action)
	}
	return nil
}

// search clears the results, then returns the command that fetches the
// current query. The clear is applied before the command exists, so a
// render in between never shows stale rows as current.
func (r *Resource[Q, T]) search() tea.Cmd {
	if r.cancel != nil {
		r.cancel()
	}

	q := r.state.Query
	r.seq++
	seq := r.seq
	r.inFlight = true
	r.inFlightQuery = q

	r.state = Reduce(r.state, LoadingAction[Q, T]())

	var ctx context.Context
	var cancel context.CancelFunc
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), r.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	r.cancel = cancel

	r.logger.Debug("search issued", "seq", seq, "page", q.GetPage())

	name, fetch := r.name, r.fetch
	return func() tea.Msg {
		defer cancel()
		results, total, err := fetch(ctx, q)
		return FetchedMsg[Q, T]{
			Resource: name,
			Seq:      seq,
			Query:    q,
			Results:  results,
			Total:    total,
			Err:      err,
		}
	}
}

// commit applies a fetch result if it answers the latest request
func (r *Resource[Q, T]) commit(msg FetchedMsg[Q, T]) tea.Cmd {
	if msg.Seq != r.seq {
		r.logger.Debug("dropping superseded response", "seq", msg.Seq, "latest", r.seq)
		return nil
	}

	r.inFlight = false
	r.cancel = nil

	if msg.Err != nil {
		r.logger.Error("search failed", "seq", msg.Seq, "error", msg.Err)
		r.state = Reduce(r.state, RequestFailedAction[Q, T](msg.Err))
		alert := AlertMsg{Resource: r.name, Err: msg.Err}
		return func() tea.Msg { return alert }
	}

	r.logger.Debug("search committed", "seq", msg.Seq, "results", len(msg.Results), "total", msg.Total)
	r.state = Reduce(r.state, ResultsArrivedAction[Q, T](msg.Results, msg.Total))
	return nil
}
