package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/FlashpointProject/CommunityWebsite/internal/agegate"
	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/FlashpointProject/CommunityWebsite/internal/search"
	"github.com/FlashpointProject/CommunityWebsite/internal/service"
	"github.com/FlashpointProject/CommunityWebsite/internal/store"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu        sync.Mutex
	playlists []domain.PlaylistQuery
	reports   int
	gotd      int
	err       error
}

func (f *fakeAPI) SearchPlaylists(ctx context.Context, q domain.PlaylistQuery) ([]domain.PlaylistInfo, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playlists = append(f.playlists, q)
	if f.err != nil {
		return nil, 0, f.err
	}
	name := "Safe Picks"
	if q.Extreme {
		name = "Everything"
	}
	return []domain.PlaylistInfo{{ID: int64(q.Page), Name: name, Extreme: q.Extreme}}, 25, nil
}

func (f *fakeAPI) SearchContentReports(ctx context.Context, q domain.ContentReportQuery) ([]domain.ContentReport, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports++
	return []domain.ContentReport{{ID: 1, ContentRef: "playlist:1", State: domain.ReportStateReported}}, 1, nil
}

func (f *fakeAPI) SearchGotdSuggestions(ctx context.Context, q domain.GotdSuggestionQuery) ([]domain.GotdSuggestion, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotd++
	return []domain.GotdSuggestion{{ID: 1, Game: domain.Game{Title: "Alien Hominid"}, Author: "Anonymous"}}, 1, nil
}

type harness struct {
	t     *testing.T
	model Model
	api   *fakeAPI
	prefs *store.PreferenceStore
}

func newHarness(t *testing.T, session domain.Session) *harness {
	t.Helper()
	prefs, err := store.NewPreferenceStore("")
	require.NoError(t, err)

	fake := &fakeAPI{}
	svc := service.New(fake, prefs, session, service.Options{PageSize: 10}, nil)
	gate := agegate.New(prefs, nil)

	h := &harness{t: t, model: New(svc, gate, nil), api: fake, prefs: prefs}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.run(h.model.Init())
	return h
}

// send feeds msg to the model and runs every resulting command
func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	h.run(cmd)
}

// run executes cmd synchronously, skipping spinner ticks and quit
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case spinner.TickMsg, tea.QuitMsg, nil:
	default:
		h.send(msg)
	}
}

func (h *harness) key(s string) {
	h.t.Helper()
	switch s {
	case "tab":
		h.send(tea.KeyMsg{Type: tea.KeyTab})
	case "enter":
		h.send(tea.KeyMsg{Type: tea.KeyEnter})
	default:
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func TestInitLoadsFirstTabOnce(t *testing.T) {
	h := newHarness(t, domain.Session{})

	require.Len(t, h.api.playlists, 1)
	assert.Equal(t, search.StatusLoaded, h.model.activeTab().Status())
	assert.Contains(t, h.model.View(), "Safe Picks")
	assert.Contains(t, h.model.View(), "page 1 of 3")

	// Revisiting the tab does not reload it
	h.key("tab")
	h.key("tab")
	assert.Len(t, h.api.playlists, 1)
	assert.Equal(t, 1, h.api.gotd)
}

func TestHelpUsesPaletteStyles(t *testing.T) {
	h := newHarness(t, domain.Session{})

	assert.Equal(t, styles.Accent, h.model.help.Styles.ShortKey.GetForeground())
	assert.Equal(t, styles.Accent, h.model.help.Styles.FullKey.GetForeground())
	assert.Equal(t, styles.DimGray, h.model.help.Styles.ShortDesc.GetForeground())
	assert.Equal(t, styles.DimGray, h.model.help.Styles.FullDesc.GetForeground())
}

func TestReportsTabRequiresModeration(t *testing.T) {
	h := newHarness(t, domain.Session{})
	assert.Len(t, h.model.tabs, 2)

	mod := newHarness(t, domain.NewSession("1", "mod", []string{domain.RoleModerator}))
	require.Len(t, mod.model.tabs, 3)
	mod.key("tab")
	mod.key("tab")
	assert.Equal(t, service.ResourceContentReports, mod.model.activeTab().Name())
	assert.Equal(t, 1, mod.api.reports)
}

func TestPaging(t *testing.T) {
	h := newHarness(t, domain.Session{})

	h.key("l")
	require.Len(t, h.api.playlists, 2)
	assert.Equal(t, 2, h.api.playlists[1].Page)

	h.key("h")
	h.key("h") // already on page 1
	require.Len(t, h.api.playlists, 3)
	assert.Equal(t, 1, h.api.playlists[2].Page)
}

func TestAdultToggleGoesThroughAgeGate(t *testing.T) {
	h := newHarness(t, domain.Session{})

	h.key("x")
	assert.True(t, h.model.gate.Open())
	assert.Contains(t, h.model.View(), "Adult content")
	assert.Len(t, h.api.playlists, 1, "nothing is fetched before confirmation")

	h.key("y")
	assert.False(t, h.model.gate.Open())
	require.Len(t, h.api.playlists, 2)
	assert.True(t, h.api.playlists[1].Extreme)
	assert.Contains(t, h.model.View(), "Everything")

	adult, ok := h.prefs.Bool(domain.PrefAdult)
	assert.True(t, ok && adult)
	include, _ := h.prefs.Bool(domain.PrefPlaylistIncludeAdult)
	assert.True(t, include)

	// Turning it off and on again needs no second confirmation
	h.key("x")
	h.key("x")
	assert.False(t, h.model.gate.Open())
	require.Len(t, h.api.playlists, 4)
	assert.True(t, h.api.playlists[3].Extreme)
}

func TestDecliningAgeGateKeepsQuery(t *testing.T) {
	h := newHarness(t, domain.Session{})

	h.key("x")
	h.key("n")

	assert.False(t, h.model.gate.Open())
	assert.Len(t, h.api.playlists, 1)
	assert.False(t, h.model.svc.Playlists.State().Query.Extreme)
}

func TestOrderModalChangesQuery(t *testing.T) {
	h := newHarness(t, domain.Session{})

	h.key("o")
	require.True(t, h.model.orderModal.IsVisible())
	h.key("enter") // active field: flip direction

	require.Len(t, h.api.playlists, 2)
	assert.Equal(t, domain.PlaylistOrderUpdatedAt, h.api.playlists[1].Order)
	assert.False(t, h.api.playlists[1].OrderReverse)
}

func TestFilterCycling(t *testing.T) {
	h := newHarness(t, domain.Session{})

	h.key("f")
	require.Len(t, h.api.playlists, 2)
	assert.Equal(t, domain.LibraryArcade, h.api.playlists[1].Library)
	assert.Contains(t, h.model.View(), "Library: Arcade")
}

func TestFailureShowsAlertAndRetry(t *testing.T) {
	h := newHarness(t, domain.Session{})
	h.api.err = errors.New("boom")

	h.key("l")
	assert.Equal(t, search.StatusErrored, h.model.activeTab().Status())
	assert.Contains(t, h.model.status, "failed to fetch playlists - boom")
	assert.Contains(t, h.model.View(), "press r to retry")

	h.api.err = nil
	h.key("r")
	assert.Equal(t, search.StatusLoaded, h.model.activeTab().Status())
	assert.Empty(t, h.model.status)
}

func TestQuickFilterDoesNotFetch(t *testing.T) {
	h := newHarness(t, domain.Session{})

	h.key("/")
	h.key("s")
	h.key("x") // typed into the filter, not the adult toggle

	assert.Len(t, h.api.playlists, 1)
	assert.False(t, h.model.gate.Open())
	assert.True(t, h.model.list.IsFilterTyping())
}
