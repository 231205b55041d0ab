package tui

import (
	"fmt"
	"strings"

	"github.com/FlashpointProject/CommunityWebsite/internal/search"
	"github.com/FlashpointProject/CommunityWebsite/internal/service"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/components"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/styles"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderMain() string {
	sections := []string{
		m.renderTabBar(),
		m.renderQueryLine(),
		"",
		m.renderBody(),
		m.renderDetail(),
		m.renderPager(),
		m.renderStatus(),
		m.help.View(m.keys),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, len(m.tabs)+1)
	for i, t := range m.tabs {
		if i == m.active {
			parts = append(parts, styles.ActiveTabStyle.Render(t.Title()))
		} else {
			parts = append(parts, styles.InactiveTabStyle.Render(t.Title()))
		}
	}
	if user := m.svc.Session.User; user.Authed {
		parts = append(parts, styles.DimStyle.Render("  "+user.Username))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderQueryLine() string {
	t := m.activeTab()

	order, reverse := t.Order()
	arrow := "↑"
	if reverse {
		arrow = "↓"
	}
	parts := []string{"Order: " + components.FieldLabel(order) + " " + arrow}

	if summary := t.FilterSummary(); summary != "" {
		parts = append(parts, summary)
	}
	if t.Name() == service.ResourcePlaylists {
		adult := "off"
		if m.svc.Playlists.State().Query.Extreme {
			adult = "on"
		}
		parts = append(parts, "Adult: "+adult)
	}
	return styles.SubtitleStyle.Render(strings.Join(parts, "  "))
}

func (m Model) renderBody() string {
	t := m.activeTab()
	switch t.Status() {
	case search.StatusLoading:
		return m.spinner.View() + styles.DimStyle.Render(" Loading...")
	case search.StatusErrored:
		return styles.ErrorStyle.Render("Could not load "+strings.ToLower(t.Title())+": "+t.Err().Error()) +
			"\n" + styles.DimStyle.Render("press r to retry")
	default:
		return m.list.View()
	}
}

func (m Model) renderDetail() string {
	row, ok := m.list.Selected()
	if !ok || m.activeTab().Status() != search.StatusLoaded {
		return strings.Repeat("\n", detailHeight-1)
	}

	lines := []string{styles.TitleStyle.Render(styles.Truncate(row.Title, max(m.width, 20)))}
	for _, d := range row.Detail {
		if len(lines) == detailHeight {
			break
		}
		lines = append(lines, styles.SubtitleStyle.Render(styles.Truncate(d, max(m.width, 20))))
	}
	for len(lines) < detailHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPager() string {
	t := m.activeTab()
	page, pages, total := t.Pagination()
	if total < 0 {
		return styles.DimStyle.Render("…")
	}
	if pages == 0 {
		return styles.DimStyle.Render("0 results")
	}

	p := m.pager
	p.PerPage = t.PageSize()
	p.SetTotalPages(total)
	p.Page = page - 1
	if pages > 10 {
		p.Type = paginator.Arabic
	}

	return p.View() + styles.DimStyle.Render(fmt.Sprintf("  page %d of %d · %d results", page, pages, total))
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return styles.ErrorStyle.Render(m.status)
}
