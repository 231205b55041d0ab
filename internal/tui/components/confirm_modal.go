package components

import (
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal asks a yes/no question. Visibility is owned by the caller.
type ConfirmModal struct {
	title string
	body  string
	yes   bool // cursor on "Yes"
}

// NewConfirmModal creates a modal with the cursor on "No"
func NewConfirmModal(title, body string) ConfirmModal {
	return ConfirmModal{title: title, body: body}
}

// Reset moves the cursor back to "No"
func (m *ConfirmModal) Reset() {
	m.yes = false
}

// HandleKey processes a key press and returns (answered, yes)
func (m *ConfirmModal) HandleKey(key string) (bool, bool) {
	switch key {
	case "y", "Y":
		return true, true
	case "n", "N", "esc":
		return true, false
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	case "enter":
		return true, m.yes
	}
	return false, false
}

// View renders the modal
func (m ConfirmModal) View() string {
	const modalWidth = 44

	yes := styles.DimBadgeStyle.Render("Yes")
	no := styles.DimBadgeStyle.Render("No")
	if m.yes {
		yes = styles.BadgeStyle.Render("Yes")
	} else {
		no = styles.BadgeStyle.Render("No")
	}

	body := lipgloss.NewStyle().
		Width(modalWidth).
		Foreground(styles.LightGray).
		Render(m.body)

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		body,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no),
	)

	return styles.ModalStyle.Render(content)
}
