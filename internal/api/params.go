package api

import (
	"net/url"
	"strconv"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
)

// Search endpoints
const (
	PathPlaylists       = "/api/playlists"
	PathContentReports  = "/api/reports"
	PathGotdSuggestions = "/api/gotd/suggestions"
)

// pageParams encodes the pagination and ordering fields shared by every search
func pageParams(page, pageSize int, order string, reverse bool) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(pageSize))
	v.Set("order_by", order)
	v.Set("order_direction", string(domain.DirectionOf(reverse)))
	return v
}

// PlaylistParams encodes a playlist query. Library and extreme are omitted
// when they hold their "no filter" value.
func PlaylistParams(q domain.PlaylistQuery) url.Values {
	v := pageParams(q.Page, q.PageSize, string(q.Order), q.OrderReverse)
	if q.Library != domain.LibraryAll {
		v.Set("library", string(q.Library))
	}
	if q.Extreme {
		v.Set("extreme", "true")
	}
	v.Set("include_total", "true")
	return v
}

// ContentReportParams encodes a content report query
func ContentReportParams(q domain.ContentReportQuery) url.Values {
	v := pageParams(q.Page, q.PageSize, string(q.Order), q.OrderReverse)
	if q.Content != domain.ReportContentAll {
		v.Set("content_type", string(q.Content))
	}
	if q.ReportState != domain.ReportStateAll {
		v.Set("report_state", string(q.ReportState))
	}
	v.Set("include_total", "true")
	return v
}

// GotdSuggestionParams encodes a suggestion query
func GotdSuggestionParams(q domain.GotdSuggestionQuery) url.Values {
	v := pageParams(q.Page, q.PageSize, string(q.Order), q.OrderReverse)
	v.Set("include_total", "true")
	return v
}
