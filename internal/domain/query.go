package domain

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// OrderDirection is the wire value of a sort direction
type OrderDirection string

const (
	OrderAsc  OrderDirection = "asc"
	OrderDesc OrderDirection = "desc"
)

// DirectionOf maps the reverse flag of a query to its wire direction
func DirectionOf(reverse bool) OrderDirection {
	if reverse {
		return OrderDesc
	}
	return OrderAsc
}

// DefaultPageSize is used when no page size is configured
const DefaultPageSize = 10

// === Playlists ===

// PlaylistOrder is a sortable playlist field
type PlaylistOrder string

const (
	PlaylistOrderName       PlaylistOrder = "name"
	PlaylistOrderTotalGames PlaylistOrder = "total_games"
	PlaylistOrderCreatedAt  PlaylistOrder = "created_at"
	PlaylistOrderUpdatedAt  PlaylistOrder = "updated_at"
)

// PlaylistOrders lists every valid playlist order, in display order
var PlaylistOrders = []PlaylistOrder{
	PlaylistOrderName, PlaylistOrderTotalGames, PlaylistOrderCreatedAt, PlaylistOrderUpdatedAt,
}

// Library is the playlist library filter. The zero value means all libraries.
type Library string

const (
	LibraryAll     Library = ""
	LibraryArcade  Library = "arcade"
	LibraryTheatre Library = "theatre"
)

// Libraries lists every valid library filter
var Libraries = []Library{LibraryAll, LibraryArcade, LibraryTheatre}

// PlaylistQuery filters and paginates playlist search
type PlaylistQuery struct {
	Page         int
	PageSize     int
	Order        PlaylistOrder
	OrderReverse bool
	Library      Library
	Extreme      bool // Include adult playlists
}

// DefaultPlaylistQuery returns the initial playlist query. includeAdult comes
// from the persisted preference.
func DefaultPlaylistQuery(pageSize int, includeAdult bool) PlaylistQuery {
	return PlaylistQuery{
		Page:         1,
		PageSize:     normalizePageSize(pageSize),
		Order:        PlaylistOrderUpdatedAt,
		OrderReverse: true,
		Library:      LibraryAll,
		Extreme:      includeAdult,
	}
}

// === Content reports ===

// ReportOrder is a sortable content report field
type ReportOrder string

const (
	ReportOrderCreatedAt            ReportOrder = "created_at"
	ReportOrderUpdatedAt            ReportOrder = "updated_at"
	ReportOrderAggregateReportScore ReportOrder = "aggregate_report_score"
	ReportOrderResolvedAt           ReportOrder = "resolved_at"
	ReportOrderActionTaken          ReportOrder = "action_taken"
	ReportOrderContentType          ReportOrder = "content_type"
	ReportOrderContentAuthor        ReportOrder = "content_author"
	ReportOrderReporter             ReportOrder = "reporter"
)

// ReportOrders lists every valid report order
var ReportOrders = []ReportOrder{
	ReportOrderCreatedAt, ReportOrderUpdatedAt, ReportOrderAggregateReportScore, ReportOrderResolvedAt,
	ReportOrderActionTaken, ReportOrderContentType, ReportOrderContentAuthor, ReportOrderReporter,
}

// ReportContentType filters reports by the kind of content reported
type ReportContentType string

const (
	ReportContentAll      ReportContentType = ""
	ReportContentPlaylist ReportContentType = "playlist"
	ReportContentComment  ReportContentType = "comment"
)

// ReportContentTypes lists every valid content type filter
var ReportContentTypes = []ReportContentType{ReportContentAll, ReportContentPlaylist, ReportContentComment}

// ReportState filters reports by moderation state
type ReportState string

const (
	ReportStateAll      ReportState = ""
	ReportStateReported ReportState = "reported"
	ReportStateResolved ReportState = "resolved"
)

// ReportStates lists every valid report state filter
var ReportStates = []ReportState{ReportStateAll, ReportStateReported, ReportStateResolved}

// ContentReportQuery filters and paginates content report search
type ContentReportQuery struct {
	Page         int
	PageSize     int
	Order        ReportOrder
	OrderReverse bool
	Content      ReportContentType
	ReportState  ReportState
}

// DefaultContentReportQuery returns the initial report query
func DefaultContentReportQuery(pageSize int) ContentReportQuery {
	return ContentReportQuery{
		Page:         1,
		PageSize:     normalizePageSize(pageSize),
		Order:        ReportOrderUpdatedAt,
		OrderReverse: true,
	}
}

// === GOTD suggestions ===

// GotdOrder is a sortable suggestion field
type GotdOrder string

const (
	GotdOrderSuggestedDate GotdOrder = "suggested_date"
	GotdOrderCreatedAt     GotdOrder = "created_at"
)

// GotdOrders lists every valid suggestion order
var GotdOrders = []GotdOrder{GotdOrderSuggestedDate, GotdOrderCreatedAt}

// GotdSuggestionQuery paginates Game of the Day suggestions
type GotdSuggestionQuery struct {
	Page         int
	PageSize     int
	Order        GotdOrder
	OrderReverse bool
}

// DefaultGotdSuggestionQuery returns the initial suggestion query
func DefaultGotdSuggestionQuery(pageSize int) GotdSuggestionQuery {
	return GotdSuggestionQuery{
		Page:         1,
		PageSize:     normalizePageSize(pageSize),
		Order:        GotdOrderCreatedAt,
		OrderReverse: true,
	}
}

func normalizePageSize(n int) int {
	if n <= 0 {
		return DefaultPageSize
	}
	return n
}

// === Parsing ===

// ParsePlaylistOrder validates a user supplied playlist order
func ParsePlaylistOrder(s string) (PlaylistOrder, error) {
	return parseOption("playlist order", s, PlaylistOrders)
}

// ParseLibrary validates a user supplied library filter
func ParseLibrary(s string) (Library, error) {
	return parseOption("library", s, Libraries)
}

// ParseReportOrder validates a user supplied report order
func ParseReportOrder(s string) (ReportOrder, error) {
	return parseOption("report order", s, ReportOrders)
}

// ParseReportContentType validates a user supplied content type filter
func ParseReportContentType(s string) (ReportContentType, error) {
	return parseOption("content type", s, ReportContentTypes)
}

// ParseReportState validates a user supplied report state filter
func ParseReportState(s string) (ReportState, error) {
	return parseOption("report state", s, ReportStates)
}

// ParseGotdOrder validates a user supplied suggestion order
func ParseGotdOrder(s string) (GotdOrder, error) {
	return parseOption("suggestion order", s, GotdOrders)
}

// parseOption accepts s only if it is one of valid. The error for an
// unknown value names the closest valid option when one is close enough.
func parseOption[T ~string](kind, s string, valid []T) (T, error) {
	targets := make([]string, 0, len(valid))
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
		if v != "" {
			targets = append(targets, string(v))
		}
	}

	var zero T
	if s == "" {
		return zero, fmt.Errorf("%w: empty %s", ErrUnknownOption, kind)
	}

	ranks := fuzzy.RankFindFold(s, targets)
	if len(ranks) == 0 {
		// Typos rarely form a subsequence; fall back to edit distance
		sort.Slice(targets, func(i, j int) bool {
			return fuzzy.LevenshteinDistance(s, targets[i]) < fuzzy.LevenshteinDistance(s, targets[j])
		})
		if len(targets) > 0 && fuzzy.LevenshteinDistance(s, targets[0]) <= len(s)/2 {
			return zero, fmt.Errorf("%w: %s %q (did you mean %q?)", ErrUnknownOption, kind, s, targets[0])
		}
		return zero, fmt.Errorf("%w: %s %q", ErrUnknownOption, kind, s)
	}
	sort.Sort(ranks)
	return zero, fmt.Errorf("%w: %s %q (did you mean %q?)", ErrUnknownOption, kind, s, ranks[0].Target)
}

// === Pagination accessors ===

// GetPage returns the 1-indexed page
func (q PlaylistQuery) GetPage() int { return q.Page }

// GetPageSize returns the number of results per page
func (q PlaylistQuery) GetPageSize() int { return q.PageSize }

// WithPage returns a copy of the query on page n
func (q PlaylistQuery) WithPage(n int) PlaylistQuery {
	q.Page = n
	return q
}

func (q ContentReportQuery) GetPage() int     { return q.Page }
func (q ContentReportQuery) GetPageSize() int { return q.PageSize }

func (q ContentReportQuery) WithPage(n int) ContentReportQuery {
	q.Page = n
	return q
}

func (q GotdSuggestionQuery) GetPage() int     { return q.Page }
func (q GotdSuggestionQuery) GetPageSize() int { return q.PageSize }

func (q GotdSuggestionQuery) WithPage(n int) GotdSuggestionQuery {
	q.Page = n
	return q
}
