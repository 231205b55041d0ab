package components

import (
	"strings"

	"github.com/FlashpointProject/CommunityWebsite/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// OrderSelection is the user's sort choice
type OrderSelection struct {
	Field   string
	Reverse bool // descending
}

// OrderModal is a small popup for choosing the server-side sort order
type OrderModal struct {
	visible       bool
	options       []string
	cursor        int
	activeField   string
	activeReverse bool
}

// NewOrderModal creates a hidden modal
func NewOrderModal() OrderModal {
	return OrderModal{}
}

// Show displays the modal with the given options and current order
func (m *OrderModal) Show(options []string, activeField string, activeReverse bool) {
	m.visible = true
	m.options = options
	m.activeField = activeField
	m.activeReverse = activeReverse
	m.cursor = 0
	for i, opt := range options {
		if opt == activeField {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *OrderModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m OrderModal) IsVisible() bool {
	return m.visible
}

// defaultReverse returns the initial direction for a field: names A-Z,
// everything else newest or largest first.
func defaultReverse(field string) bool {
	return field != "name"
}

// HandleKey processes a key press, returns (handled, selection).
// A non-nil selection means the user confirmed a choice.
func (m *OrderModal) HandleKey(key string) (bool, *OrderSelection) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if len(m.options) == 0 {
			m.visible = false
			return true, nil
		}
		chosen := m.options[m.cursor]
		reverse := defaultReverse(chosen)
		if chosen == m.activeField {
			reverse = !m.activeReverse
		}
		m.visible = false
		return true, &OrderSelection{Field: chosen, Reverse: reverse}
	case "esc", "o":
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// View renders the modal
func (m OrderModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	const lineWidth = 26

	var lines []string
	for i, opt := range m.options {
		isActive := opt == m.activeField

		prefix := "  "
		suffix := ""
		if isActive {
			prefix = "✓ "
			suffix = " ↑"
			if m.activeReverse {
				suffix = " ↓"
			}
		}
		text := styles.Pad(prefix+FieldLabel(opt)+suffix, lineWidth)

		switch {
		case i == m.cursor:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight).Render(text))
		case isActive:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.Accent).Render(text))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.LightGray).Render(text))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Background(styles.SlateDark).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Order by") + "\n" + strings.Join(lines, "\n"))
}

// FieldLabel turns a wire field name like "total_games" into "Total games"
func FieldLabel(field string) string {
	if field == "" {
		return "All"
	}
	label := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
