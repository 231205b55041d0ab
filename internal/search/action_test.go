package search

import (
	"errors"
	"testing"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/stretchr/testify/assert"
)

type (
	pq     = domain.PlaylistQuery
	pstate = State[pq, string]
)

func defaultQuery() pq {
	return domain.DefaultPlaylistQuery(10, false)
}

func TestReduceSetQuery(t *testing.T) {
	s := NewState[pq, string](defaultQuery())
	s = Reduce(s, ResultsArrivedAction[pq, string]([]string{"a"}, 1))
	assert.False(t, s.Searching)

	q := defaultQuery()
	q.Library = domain.LibraryArcade
	next := Reduce(s, SetQueryAction[pq, string](q))

	assert.Equal(t, q, next.Query)
	assert.True(t, next.Searching)
	assert.Equal(t, []string{"a"}, next.Results, "results are cleared by the runner, not the reducer")
	assert.Equal(t, defaultQuery(), s.Query, "previous state is untouched")
}

func TestReduceSetPageKeepsFilters(t *testing.T) {
	q := pq{Page: 1, PageSize: 10, Order: domain.PlaylistOrderUpdatedAt, OrderReverse: true}
	s := NewState[pq, string](q)
	s.Searching = false

	next := Reduce(s, SetPageAction[pq, string](2))

	want := q
	want.Page = 2
	assert.Equal(t, want, next.Query)
	assert.False(t, next.Searching, "SetPage leaves searching to the runner")
}

func TestReduceResultsArrived(t *testing.T) {
	tests := []struct {
		name          string
		action        Action[pq, string]
		wantTotal     int
		wantSearching bool
	}{
		{
			name:          "loading sentinel",
			action:        LoadingAction[pq, string](),
			wantTotal:     UnknownTotal,
			wantSearching: true,
		},
		{
			name:          "zero total is stored",
			action:        ResultsArrivedAction[pq, string](nil, 0),
			wantTotal:     0,
			wantSearching: false,
		},
		{
			name:          "absent total keeps stored value",
			action:        Action[pq, string]{Kind: ActionResultsArrived, Results: []string{"x"}},
			wantTotal:     42,
			wantSearching: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState[pq, string](defaultQuery())
			s.TotalResults = 42
			s.Err = errors.New("old failure")

			next := Reduce(s, tt.action)

			assert.Equal(t, tt.wantTotal, next.TotalResults)
			assert.Equal(t, tt.wantSearching, next.Searching)
			assert.NotNil(t, next.Results)
			assert.NoError(t, next.Err)
		})
	}
}

func TestReduceGateIsMonotonicAndCapped(t *testing.T) {
	s := NewState[pq, string](defaultQuery())
	prev := s.InitialLoadGate
	for i := 0; i < 5; i++ {
		s = Reduce(s, ForceInitialLoadAction[pq, string]())
		assert.GreaterOrEqual(t, s.InitialLoadGate, prev)
		assert.LessOrEqual(t, s.InitialLoadGate, GateTerminal)
		prev = s.InitialLoadGate
	}
	assert.Equal(t, GateTerminal, s.InitialLoadGate)
}

func TestReduceRequestFailed(t *testing.T) {
	s := Reduce(NewState[pq, string](defaultQuery()), LoadingAction[pq, string]())
	boom := errors.New("503 Service Unavailable")

	s = Reduce(s, RequestFailedAction[pq, string](boom))

	assert.Equal(t, StatusErrored, s.Status())
	assert.Equal(t, UnknownTotal, s.TotalResults)
	assert.False(t, s.Searching)
	assert.ErrorIs(t, s.Err, boom)
}

func TestTotalPages(t *testing.T) {
	s := pstate{Query: pq{Page: 1, PageSize: 10}}
	for total, want := range map[int]int{UnknownTotal: 0, 0: 0, 1: 1, 10: 1, 11: 2, 95: 10} {
		s.TotalResults = total
		assert.Equal(t, want, s.TotalPages(), "total %d", total)
	}
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "ForceInitialLoad", ActionForceInitialLoad.String())
	assert.True(t, SetPageAction[pq, string](3).Triggers())
	assert.False(t, LoadingAction[pq, string]().Triggers())
}
