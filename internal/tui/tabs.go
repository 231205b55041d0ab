package tui

import (
	"fmt"
	"strings"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/FlashpointProject/CommunityWebsite/internal/search"
	"github.com/FlashpointProject/CommunityWebsite/internal/service"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

const dateLayout = "2006-01-02"

// tab is one searchable collection shown in the tab bar
type tab interface {
	Name() string
	Title() string

	Load() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	Retry() tea.Cmd
	NextPage() tea.Cmd
	PrevPage() tea.Cmd

	Rows() []components.Row
	Status() search.Status
	Err() error
	Pagination() (page, pages, total int)
	PageSize() int

	Orders() []string
	Order() (string, bool)
	SetOrder(field string, reverse bool) tea.Cmd
	CycleFilter(i int) tea.Cmd
	FilterSummary() string
}

// filterSpec cycles one string-valued filter field of a query
type filterSpec[Q any] struct {
	label   string
	options []string
	get     func(Q) string
	set     func(Q, string) Q
}

// resourceTab adapts a search resource to the tab interface
type resourceTab[Q search.Pager[Q], T any] struct {
	title   string
	res     *search.Resource[Q, T]
	row     func(T) components.Row
	orders  []string
	order   func(Q) (string, bool)
	reorder func(Q, string, bool) Q
	filters []filterSpec[Q]
}

func (t *resourceTab[Q, T]) Name() string  { return t.res.Name() }
func (t *resourceTab[Q, T]) Title() string { return t.title }

func (t *resourceTab[Q, T]) Load() tea.Cmd              { return t.res.ForceInitialLoad() }
func (t *resourceTab[Q, T]) Update(msg tea.Msg) tea.Cmd { return t.res.Update(msg) }
func (t *resourceTab[Q, T]) Retry() tea.Cmd             { return t.res.Retry() }

func (t *resourceTab[Q, T]) NextPage() tea.Cmd {
	st := t.res.State()
	if st.Query.GetPage() >= st.TotalPages() {
		return nil
	}
	return t.res.SetPage(st.Query.GetPage() + 1)
}

func (t *resourceTab[Q, T]) PrevPage() tea.Cmd {
	st := t.res.State()
	if st.Query.GetPage() <= 1 {
		return nil
	}
	return t.res.SetPage(st.Query.GetPage() - 1)
}

func (t *resourceTab[Q, T]) Rows() []components.Row {
	results := t.res.State().Results
	rows := make([]components.Row, len(results))
	for i, r := range results {
		rows[i] = t.row(r)
	}
	return rows
}

func (t *resourceTab[Q, T]) Status() search.Status { return t.res.State().Status() }
func (t *resourceTab[Q, T]) Err() error            { return t.res.State().Err }
func (t *resourceTab[Q, T]) PageSize() int         { return t.res.State().Query.GetPageSize() }

func (t *resourceTab[Q, T]) Pagination() (int, int, int) {
	st := t.res.State()
	return st.Query.GetPage(), st.TotalPages(), st.TotalResults
}

func (t *resourceTab[Q, T]) Orders() []string { return t.orders }

func (t *resourceTab[Q, T]) Order() (string, bool) {
	return t.order(t.res.State().Query)
}

func (t *resourceTab[Q, T]) SetOrder(field string, reverse bool) tea.Cmd {
	q := t.reorder(t.res.State().Query, field, reverse).WithPage(1)
	return t.res.SetQuery(q)
}

func (t *resourceTab[Q, T]) CycleFilter(i int) tea.Cmd {
	if i < 0 || i >= len(t.filters) {
		return nil
	}
	f := t.filters[i]
	q := t.res.State().Query

	next := f.options[0]
	cur := f.get(q)
	for j, opt := range f.options {
		if opt == cur {
			next = f.options[(j+1)%len(f.options)]
			break
		}
	}
	return t.res.SetQuery(f.set(q, next).WithPage(1))
}

func (t *resourceTab[Q, T]) FilterSummary() string {
	q := t.res.State().Query
	parts := make([]string, 0, len(t.filters))
	for _, f := range t.filters {
		parts = append(parts, f.label+": "+components.FieldLabel(f.get(q)))
	}
	return strings.Join(parts, "  ")
}

func names[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// === Playlists ===

func newPlaylistTab(r *service.PlaylistSearch) *resourceTab[domain.PlaylistQuery, domain.PlaylistInfo] {
	return &resourceTab[domain.PlaylistQuery, domain.PlaylistInfo]{
		title:  "Playlists",
		res:    r,
		row:    playlistRow,
		orders: names(domain.PlaylistOrders),
		order: func(q domain.PlaylistQuery) (string, bool) {
			return string(q.Order), q.OrderReverse
		},
		reorder: func(q domain.PlaylistQuery, field string, reverse bool) domain.PlaylistQuery {
			q.Order = domain.PlaylistOrder(field)
			q.OrderReverse = reverse
			return q
		},
		filters: []filterSpec[domain.PlaylistQuery]{{
			label:   "Library",
			options: names(domain.Libraries),
			get:     func(q domain.PlaylistQuery) string { return string(q.Library) },
			set: func(q domain.PlaylistQuery, v string) domain.PlaylistQuery {
				q.Library = domain.Library(v)
				return q
			},
		}},
	}
}

// setExtreme replaces the playlist query with the adult filter set to on
func setExtreme(r *service.PlaylistSearch, on bool) tea.Cmd {
	q := r.State().Query
	if q.Extreme == on {
		return nil
	}
	q.Extreme = on
	return r.SetQuery(q.WithPage(1))
}

func playlistRow(p domain.PlaylistInfo) components.Row {
	row := components.Row{
		Title: p.Name,
		Meta:  fmt.Sprintf("%d games · %s", p.TotalGames, p.Author.Username),
		Detail: []string{
			"Library: " + components.FieldLabel(string(p.Library)),
			"Updated: " + p.UpdatedAt.Format(dateLayout),
		},
	}
	if p.Description != "" {
		row.Detail = append([]string{p.Description}, row.Detail...)
	}
	if p.Extreme {
		row.Badge = "18+"
		row.Danger = true
	}
	return row
}

// === Content reports ===

func newReportTab(r *service.ContentReportSearch) *resourceTab[domain.ContentReportQuery, domain.ContentReport] {
	return &resourceTab[domain.ContentReportQuery, domain.ContentReport]{
		title:  "Reports",
		res:    r,
		row:    reportRow,
		orders: names(domain.ReportOrders),
		order: func(q domain.ContentReportQuery) (string, bool) {
			return string(q.Order), q.OrderReverse
		},
		reorder: func(q domain.ContentReportQuery, field string, reverse bool) domain.ContentReportQuery {
			q.Order = domain.ReportOrder(field)
			q.OrderReverse = reverse
			return q
		},
		filters: []filterSpec[domain.ContentReportQuery]{
			{
				label:   "Content",
				options: names(domain.ReportContentTypes),
				get:     func(q domain.ContentReportQuery) string { return string(q.Content) },
				set: func(q domain.ContentReportQuery, v string) domain.ContentReportQuery {
					q.Content = domain.ReportContentType(v)
					return q
				},
			},
			{
				label:   "State",
				options: names(domain.ReportStates),
				get:     func(q domain.ContentReportQuery) string { return string(q.ReportState) },
				set: func(q domain.ContentReportQuery, v string) domain.ContentReportQuery {
					q.ReportState = domain.ReportState(v)
					return q
				},
			},
		},
	}
}

func reportRow(r domain.ContentReport) components.Row {
	row := components.Row{
		Title: r.ContentRef,
		Meta:  "by " + r.ReportedBy.Username,
		Badge: string(r.State),
		Detail: []string{
			"Reason: " + r.ReportReason,
			"Reported user: " + r.ReportedUser.Username,
			"Created: " + r.CreatedAt.Format(dateLayout),
		},
	}
	if r.Context != "" {
		row.Detail = append(row.Detail, "Context: "+r.Context)
	}
	if r.Resolved() {
		resolver := "unknown"
		if r.ResolvedBy != nil {
			resolver = r.ResolvedBy.Username
		}
		row.Detail = append(row.Detail, fmt.Sprintf("Resolved by %s: %s", resolver, r.ActionTaken))
	} else {
		row.Danger = true
	}
	return row
}

// === GOTD suggestions ===

func newGotdTab(r *service.GotdSuggestionSearch) *resourceTab[domain.GotdSuggestionQuery, domain.GotdSuggestion] {
	return &resourceTab[domain.GotdSuggestionQuery, domain.GotdSuggestion]{
		title:  "GOTD Suggestions",
		res:    r,
		row:    gotdRow,
		orders: names(domain.GotdOrders),
		order: func(q domain.GotdSuggestionQuery) (string, bool) {
			return string(q.Order), q.OrderReverse
		},
		reorder: func(q domain.GotdSuggestionQuery, field string, reverse bool) domain.GotdSuggestionQuery {
			q.Order = domain.GotdOrder(field)
			q.OrderReverse = reverse
			return q
		},
	}
}

func gotdRow(s domain.GotdSuggestion) components.Row {
	date := "any day"
	if s.SuggestedDate != nil {
		date = s.SuggestedDate.Format(dateLayout)
	}
	row := components.Row{
		Title: s.Game.Title,
		Meta:  date + " · " + s.Author,
		Detail: []string{
			"Developer: " + s.Game.Developer,
			"Platform: " + s.Game.Platform,
		},
	}
	if s.Description != "" {
		row.Detail = append([]string{s.Description}, row.Detail...)
	}
	if s.Game.Extreme {
		row.Badge = "18+"
		row.Danger = true
	}
	return row
}
