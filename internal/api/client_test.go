package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "", time.Second, nil)
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

const playlistBody = `{
  "total": 42,
  "playlists": [{
    "id": 12,
    "name": "Arcade Classics",
    "total_games": 30,
    "description": "The good ones",
    "author": {"uid": "99", "username": "curator", "avatar_url": "https://cdn.example/a.png", "roles": ["r1"]},
    "library": "arcade",
    "extreme": false,
    "filter_groups": ["Flash"],
    "created_at": "2024-01-02T03:04:05Z",
    "updated_at": "2024-02-03T04:05:06Z"
  }]
}`

func TestSearchPlaylists(t *testing.T) {
	var gotReq *http.Request
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		respond(playlistBody)(w, r)
	})

	q := domain.DefaultPlaylistQuery(10, false)
	q.Library = domain.LibraryArcade
	playlists, total, err := c.SearchPlaylists(context.Background(), q)
	require.NoError(t, err)

	require.NotNil(t, gotReq)
	assert.Equal(t, PathPlaylists, gotReq.URL.Path)
	assert.Equal(t, "arcade", gotReq.URL.Query().Get("library"))
	assert.Equal(t, "application/json", gotReq.Header.Get("Accept"))
	assert.NotEmpty(t, gotReq.Header.Get("X-Request-ID"))

	want := []domain.PlaylistInfo{{
		ID:          12,
		Name:        "Arcade Classics",
		Description: "The good ones",
		Author: domain.User{
			ID:        "99",
			Username:  "curator",
			AvatarURL: "https://cdn.example/a.png",
			Roles:     []string{"r1"},
			Perms:     []domain.Perm{},
		},
		TotalGames:   30,
		Library:      domain.LibraryArcade,
		FilterGroups: []string{"Flash"},
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
	}}
	assert.Equal(t, 42, total)
	if diff := cmp.Diff(want, playlists); diff != "" {
		t.Errorf("playlists mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchContentReports(t *testing.T) {
	c := newTestServer(t, respond(`{
  "total": 1,
  "reports": [{
    "id": 5,
    "content_ref": "playlist:12",
    "report_state": "resolved",
    "reported_by": {"uid": "1", "username": "reporter"},
    "reported_user": {"uid": "2", "username": "author"},
    "resolved_by": {"uid": "3", "username": "mod"},
    "report_reason": "spam",
    "additional_context": "links everywhere",
    "resolved_at": "2024-03-01T00:00:00Z",
    "action_taken": "deleted"
  }]
}`))

	reports, total, err := c.SearchContentReports(context.Background(), domain.DefaultContentReportQuery(10))
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, 1, total)
	assert.Equal(t, "playlist:12", r.ContentRef)
	assert.Equal(t, domain.ReportStateResolved, r.State)
	assert.Equal(t, "reporter", r.ReportedBy.Username)
	assert.Equal(t, "author", r.ReportedUser.Username)
	require.NotNil(t, r.ResolvedBy)
	assert.Equal(t, "mod", r.ResolvedBy.Username)
	assert.Equal(t, "links everywhere", r.Context)
	assert.True(t, r.Resolved())
}

func TestSearchGotdSuggestions(t *testing.T) {
	c := newTestServer(t, respond(`{
  "total": 3,
  "suggestions": [{
    "id": 8,
    "game": {"id": "abc", "title": "Alien Hominid", "tags": [{"id": 1, "name": "Action", "category": "genre"}, null]},
    "author": "Anonymous",
    "description": "classic",
    "suggested_date": "2024-07-04T00:00:00Z"
  }]
}`))

	suggestions, total, err := c.SearchGotdSuggestions(context.Background(), domain.DefaultGotdSuggestionQuery(10))
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	s := suggestions[0]
	assert.Equal(t, 3, total)
	assert.Equal(t, "Alien Hominid", s.Game.Title)
	assert.Equal(t, []domain.Tag{{ID: 1, Name: "Action", Category: "genre"}}, s.Game.Tags)
	assert.Equal(t, "Anonymous", s.Author)
	require.NotNil(t, s.SuggestedDate)
	assert.Equal(t, 2024, s.SuggestedDate.Year())
}

func TestNullResultArrayIsEmpty(t *testing.T) {
	c := newTestServer(t, respond(`{"total": 0, "playlists": null}`))

	playlists, total, err := c.SearchPlaylists(context.Background(), domain.DefaultPlaylistQuery(10, false))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, playlists)
	assert.Empty(t, playlists)
}

func TestMalformedPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":      `<html>`,
		"missing total": `{"playlists": []}`,
		"null entry":    `{"total": 1, "playlists": [null]}`,
		"no author":     `{"total": 1, "playlists": [{"id": 1}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestServer(t, respond(body))
			_, _, err := c.SearchPlaylists(context.Background(), domain.DefaultPlaylistQuery(10, false))
			assert.ErrorIs(t, err, domain.ErrMalformedPayload)
		})
	}
}

func TestStatusErrors(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	_, _, err := c.SearchContentReports(context.Background(), domain.DefaultContentReportQuery(10))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
	assert.Equal(t, PathContentReports, statusErr.Path)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	c = newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, _, err = c.SearchGotdSuggestions(context.Background(), domain.DefaultGotdSuggestionQuery(10))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionCookieSent(t *testing.T) {
	var cookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie(LoginCookie); err == nil {
			cookie = ck.Value
		}
		respond(`{"total": 0, "suggestions": []}`)(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-session", time.Second, nil)
	_, _, err := c.SearchGotdSuggestions(context.Background(), domain.DefaultGotdSuggestionQuery(10))
	require.NoError(t, err)
	assert.Equal(t, "secret-session", cookie)
}

func TestServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", time.Second, nil)
	_, _, err := c.SearchPlaylists(context.Background(), domain.DefaultPlaylistQuery(10, false))
	assert.ErrorIs(t, err, domain.ErrServerUnreachable)
}

func TestCancelledRequest(t *testing.T) {
	c := newTestServer(t, respond(`{"total": 0, "playlists": []}`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := c.SearchPlaylists(ctx, domain.DefaultPlaylistQuery(10, false))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrServerUnreachable)
}
