// Package tui is the interactive terminal front end: one tab per searchable
// collection, driven by the search resources on the Bubble Tea event loop.
package tui

import (
	"log/slog"

	"github.com/FlashpointProject/CommunityWebsite/internal/agegate"
	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/FlashpointProject/CommunityWebsite/internal/search"
	"github.com/FlashpointProject/CommunityWebsite/internal/service"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/components"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the main Bubble Tea model for the application
type Model struct {
	svc    *service.Services
	gate   *agegate.Coordinator
	logger *slog.Logger

	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	pager   paginator.Model

	tabs      []tab
	playlists *resourceTab[domain.PlaylistQuery, domain.PlaylistInfo]
	active    int

	list       *components.ResultList
	orderModal components.OrderModal
	ageModal   components.ConfirmModal

	status string // last fetch failure, cleared by the next query change

	width  int
	height int
}

// New creates the model. The reports tab is only present for moderators.
func New(svc *service.Services, gate *agegate.Coordinator, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.AccentStyle.Render("•")
	p.InactiveDot = styles.DimStyle.Render("•")

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	playlists := newPlaylistTab(svc.Playlists)
	tabs := []tab{playlists, newGotdTab(svc.Gotd)}
	if svc.CanModerate() {
		tabs = append(tabs, newReportTab(svc.Reports))
	}

	return Model{
		svc:        svc,
		gate:       gate,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		spinner:    s,
		pager:      p,
		tabs:       tabs,
		playlists:  playlists,
		list:       components.NewResultList(),
		orderModal: components.NewOrderModal(),
		ageModal: components.NewConfirmModal(
			"Adult content",
			"Some playlists contain content intended for adults. Are you 18 years of age or older?",
		),
	}
}

// Init mounts the first tab, which triggers its initial load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.activeTab().Load())
}

func (m Model) activeTab() tab {
	return m.tabs[m.active]
}

// Update handles all incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case search.AlertMsg:
		m.status = msg.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Fetch results and routed actions; each resource ignores the others'
	var cmds []tea.Cmd
	for _, t := range m.tabs {
		cmds = append(cmds, t.Update(msg))
	}
	m.syncList()
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Age confirmation is modal and takes every key
	if m.gate.Open() {
		answered, adult := m.ageModal.HandleKey(msg.String())
		if !answered {
			return m, nil
		}
		m.ageModal.Reset()
		cmd := m.gate.Respond(adult)
		m.afterQuery(cmd)
		return m, cmd
	}

	if m.orderModal.IsVisible() {
		_, sel := m.orderModal.HandleKey(msg.String())
		if sel == nil {
			return m, nil
		}
		cmd := m.activeTab().SetOrder(sel.Field, sel.Reverse)
		m.afterQuery(cmd)
		return m, cmd
	}

	if m.list.IsFilterTyping() {
		return m, m.list.Update(msg)
	}

	t := m.activeTab()
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		return m, m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m, m.switchTab(-1)
	case key.Matches(msg, m.keys.NextPage):
		cmd = t.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		cmd = t.PrevPage()
	case key.Matches(msg, m.keys.Order):
		order, reverse := t.Order()
		m.orderModal.Show(t.Orders(), order, reverse)
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		cmd = t.CycleFilter(0)
	case key.Matches(msg, m.keys.FilterAlt):
		cmd = t.CycleFilter(1)
	case key.Matches(msg, m.keys.ToggleAdult):
		if t.Name() != service.ResourcePlaylists {
			return m, nil
		}
		cmd = m.toggleAdult()
	case key.Matches(msg, m.keys.QuickFilter):
		focus := m.list.StartFilter()
		m.resize()
		return m, focus
	case key.Matches(msg, m.keys.Retry):
		cmd = t.Retry()
	default:
		return m, m.list.Update(msg)
	}

	m.afterQuery(cmd)
	return m, cmd
}

// toggleAdult turns the playlist adult filter off directly, or asks the age
// gate before turning it on.
func (m Model) toggleAdult() tea.Cmd {
	res := m.svc.Playlists
	if res.State().Query.Extreme {
		return setExtreme(res, false)
	}
	return m.gate.Request(agegate.Gated(func() tea.Cmd {
		return setExtreme(res, true)
	}))
}

// afterQuery refreshes the list once a key may have started a new search
func (m *Model) afterQuery(cmd tea.Cmd) {
	if cmd != nil {
		m.status = ""
	}
	m.syncList()
}

func (m *Model) switchTab(delta int) tea.Cmd {
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.list.ClearFilter()
	m.resize()
	m.syncList()
	return m.activeTab().Load()
}

func (m *Model) syncList() {
	m.list.SetRows(m.activeTab().Rows())
}

// Layout: tab bar, query line, list, detail pane, pager, status, help
const (
	headerHeight = 3
	detailHeight = 6
	footerHeight = 2
)

func (m *Model) resize() {
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 5
	}
	listHeight := m.height - headerHeight - detailHeight - footerHeight - helpHeight
	m.list.SetSize(m.width, max(listHeight, 3))
}

// View renders the application
func (m Model) View() string {
	if m.gate.Open() {
		return m.overlay(m.ageModal.View())
	}
	if m.orderModal.IsVisible() {
		return m.overlay(m.orderModal.View())
	}
	return m.renderMain()
}

func (m Model) overlay(modal string) string {
	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
