// Package service binds the generic search resource to the community API.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/FlashpointProject/CommunityWebsite/internal/api"
	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/FlashpointProject/CommunityWebsite/internal/search"
)

// Resource names used for message routing and alerts
const (
	ResourcePlaylists       = "playlists"
	ResourceContentReports  = "contentReports"
	ResourceGotdSuggestions = "gotdSuggestions"
)

// Searcher is the subset of the API client the resources fetch through
type Searcher interface {
	SearchPlaylists(ctx context.Context, q domain.PlaylistQuery) ([]domain.PlaylistInfo, int, error)
	SearchContentReports(ctx context.Context, q domain.ContentReportQuery) ([]domain.ContentReport, int, error)
	SearchGotdSuggestions(ctx context.Context, q domain.GotdSuggestionQuery) ([]domain.GotdSuggestion, int, error)
}

var _ Searcher = (*api.Client)(nil)

type (
	PlaylistSearch       = search.Resource[domain.PlaylistQuery, domain.PlaylistInfo]
	ContentReportSearch  = search.Resource[domain.ContentReportQuery, domain.ContentReport]
	GotdSuggestionSearch = search.Resource[domain.GotdSuggestionQuery, domain.GotdSuggestion]
)

// Options configures the resources
type Options struct {
	PageSize int
	Timeout  time.Duration
}

// Services holds one resource per searchable collection
type Services struct {
	Session   domain.Session
	Playlists *PlaylistSearch
	Reports   *ContentReportSearch
	Gotd      *GotdSuggestionSearch

	prefs  domain.PreferenceStore
	logger *slog.Logger
}

// New creates the three resources with their default queries
func New(api Searcher, prefs domain.PreferenceStore, session domain.Session, opts Options, logger *slog.Logger) *Services {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Services{
		Session: session,
		prefs:   prefs,
		logger:  logger,
	}

	s.Playlists = NewPlaylistSearch(api, prefs, opts, logger)
	s.Reports = search.New(domain.DefaultContentReportQuery(opts.PageSize), search.Options[domain.ContentReportQuery, domain.ContentReport]{
		Name:    ResourceContentReports,
		Fetch:   api.SearchContentReports,
		Timeout: opts.Timeout,
		Logger:  logger,
	})
	s.Gotd = search.New(domain.DefaultGotdSuggestionQuery(opts.PageSize), search.Options[domain.GotdSuggestionQuery, domain.GotdSuggestion]{
		Name:    ResourceGotdSuggestions,
		Fetch:   api.SearchGotdSuggestions,
		Timeout: opts.Timeout,
		Logger:  logger,
	})
	return s
}

// NewPlaylistSearch creates the playlist resource. Its initial adult filter
// comes from the stored preference and every query change writes it back.
func NewPlaylistSearch(api Searcher, prefs domain.PreferenceStore, opts Options, logger *slog.Logger) *PlaylistSearch {
	if logger == nil {
		logger = slog.Default()
	}

	includeAdult, _ := prefs.Bool(domain.PrefPlaylistIncludeAdult) // unset means false
	initial := domain.DefaultPlaylistQuery(opts.PageSize, includeAdult)

	return search.New(initial, search.Options[domain.PlaylistQuery, domain.PlaylistInfo]{
		Name:    ResourcePlaylists,
		Fetch:   api.SearchPlaylists,
		Timeout: opts.Timeout,
		Logger:  logger,
		OnQueryChange: func(q domain.PlaylistQuery) {
			if err := prefs.SetBool(domain.PrefPlaylistIncludeAdult, q.Extreme); err != nil {
				logger.Warn("failed to persist playlist preference", "error", err)
			}
		},
	})
}

// CanModerate returns whether the content reports collection is available
func (s *Services) CanModerate() bool {
	return s.Session.Can(domain.PermModerate)
}
