package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Accent     = lipgloss.Color("#F2A20D")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().Foreground(White).Bold(true)

	SubtitleStyle = lipgloss.NewStyle().Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().Foreground(Accent)

	ErrorStyle = lipgloss.NewStyle().Foreground(Red)
)

// Tab bar styles
var (
	ActiveTabStyle = lipgloss.NewStyle().Foreground(White).Background(Accent).Bold(true).Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().Foreground(LightGray).Background(SlateLight).Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(1, 2).Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().Foreground(White).Bold(true).MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().Foreground(Accent)

	HelpDescStyle = lipgloss.NewStyle().Foreground(DimGray)
)

// Badge styles
var (
	BadgeStyle = lipgloss.NewStyle().Foreground(White).Background(Accent).Padding(0, 1)

	DangerBadgeStyle = lipgloss.NewStyle().Foreground(White).Background(Red).Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().Foreground(LightGray).Background(SlateLight).Padding(0, 1)
)

// SpinnerStyle colours the loading spinner
var SpinnerStyle = lipgloss.NewStyle().Foreground(Accent)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().Foreground(Accent)

	FilterPromptStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)

// Match highlight styles for quick filter results
var (
	MatchHighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().Foreground(Accent).Background(SlateLight).Bold(true)
)

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + spaces(width-len(r))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// RowPart represents a part of a row with optional foreground color.
// Highlight marks quick filter matches and takes precedence over Foreground.
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Highlight  bool
}

// RenderListRow renders a list row with uniform background when selected.
// Each part is styled explicitly to avoid ANSI reset code issues.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		switch {
		case part.Highlight && selected:
			style = MatchHighlightSelectedStyle
		case part.Highlight:
			style = MatchHighlightStyle
		case part.Foreground != nil:
			style = style.Foreground(*part.Foreground)
		case selected:
			style = style.Foreground(White)
		default:
			style = style.Foreground(LightGray)
		}
		if selected {
			style = style.Background(bg)
		}
		result += style.Render(part.Text)
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill width (subtract 2 for left/right margin)
	if paddingNeeded := width - visibleLen - 2; paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(spaces(paddingNeeded))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}

// SpinnerFrames animate plain-terminal progress outside the TUI
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
