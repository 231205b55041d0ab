package components

import (
	"fmt"
	"strings"

	"github.com/FlashpointProject/CommunityWebsite/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Scroll indicators ("↑ more" and "↓ more") each take 1 line
const scrollIndicatorLines = 2

// ResultList is a scrollable list of result rows with a quick filter that
// narrows the rows already on screen. It never triggers a server search.
type ResultList struct {
	rows []Row

	cursor     int
	offset     int
	maxVisible int
	width      int
	height     int

	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	matches      fuzzy.Matches // nil when no filter query
}

// NewResultList creates an empty list
func NewResultList() *ResultList {
	ti := textinput.New()
	ti.Placeholder = "filter this page..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ResultList{filterInput: ti}
}

// SetRows replaces the rows, keeping the cursor in range and the filter applied
func (l *ResultList) SetRows(rows []Row) {
	l.rows = rows
	l.applyFilter()
	if l.cursor >= l.ItemCount() {
		l.cursor = max(l.ItemCount()-1, 0)
	}
	l.ensureVisible()
}

// SetSize sets the outer dimensions
func (l *ResultList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

// ItemCount returns the number of visible rows after filtering
func (l *ResultList) ItemCount() int {
	if l.filterQuery != "" {
		return len(l.matches)
	}
	return len(l.rows)
}

// Selected returns the row under the cursor
func (l *ResultList) Selected() (Row, bool) {
	if l.ItemCount() == 0 {
		return Row{}, false
	}
	return l.rows[l.mapIndex(l.cursor)], true
}

// Cursor returns the cursor position within the visible rows
func (l *ResultList) Cursor() int {
	return l.cursor
}

// IsFiltering returns true if the quick filter is shown
func (l *ResultList) IsFiltering() bool {
	return l.filterActive
}

// IsFilterTyping returns true if keys go to the filter input
func (l *ResultList) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// StartFilter shows and focuses the quick filter
func (l *ResultList) StartFilter() tea.Cmd {
	l.filterActive = true
	l.recalcMaxVisible()
	return l.filterInput.Focus()
}

// ClearFilter hides the quick filter and shows every row
func (l *ResultList) ClearFilter() {
	l.filterActive = false
	l.filterQuery = ""
	l.matches = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
}

// Update handles navigation and filter typing
func (l *ResultList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if l.IsFilterTyping() {
		switch keyMsg.String() {
		case "esc":
			l.ClearFilter()
			return nil
		case "enter":
			// Accept filter, blur input to allow navigation
			l.filterInput.Blur()
			return nil
		case "backspace":
			if l.filterInput.Value() == "" {
				l.ClearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		l.cursor = 0
		l.offset = 0
		return cmd
	}

	if l.filterActive && keyMsg.String() == "esc" {
		l.ClearFilter()
		return nil
	}

	count := l.ItemCount()
	if count == 0 {
		return nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if l.cursor < count-1 {
			l.cursor++
		}
	case "k", "up":
		if l.cursor > 0 {
			l.cursor--
		}
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		l.cursor = count - 1
	}
	l.ensureVisible()
	return nil
}

func (l *ResultList) recalcMaxVisible() {
	l.maxVisible = l.height - scrollIndicatorLines
	if l.filterActive {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *ResultList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *ResultList) applyFilter() {
	l.filterQuery = l.filterInput.Value()
	if l.filterQuery == "" {
		l.matches = nil
		return
	}

	// fuzzy matching ignores case; offsets index the original titles
	titles := make([]string, len(l.rows))
	for i, r := range l.rows {
		titles[i] = r.Title
	}
	l.matches = fuzzy.Find(l.filterQuery, titles)
	if l.matches == nil {
		l.matches = fuzzy.Matches{}
	}
}

func (l *ResultList) mapIndex(i int) int {
	if l.filterQuery == "" {
		return i
	}
	return l.matches[i].Index
}

// View renders the visible rows
func (l *ResultList) View() string {
	width := max(l.width, 10)

	count := l.ItemCount()
	if count == 0 {
		msg := "No results"
		if l.filterQuery != "" {
			msg = "No matches"
		}
		content := " \n" + styles.DimStyle.Render(msg)
		if l.filterActive {
			content += "\n" + l.renderFilterBar()
		}
		return content
	}

	end := min(l.offset+l.maxVisible, count)
	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		var matched []int
		if l.filterQuery != "" {
			matched = l.matches[i].MatchedIndexes
		}
		lines = append(lines, l.renderRow(l.rows[l.mapIndex(i)], i == l.cursor, matched, width))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if l.filterActive {
		content += "\n" + l.renderFilterBar()
	}
	return content
}

func (l *ResultList) renderRow(r Row, selected bool, matched []int, width int) string {
	badge := ""
	if r.Badge != "" {
		if r.Danger {
			badge = styles.DangerBadgeStyle.Render(r.Badge) + " "
		} else {
			badge = styles.DimBadgeStyle.Render(r.Badge) + " "
		}
	}

	meta := r.Meta
	titleWidth := width - 2 - lipgloss.Width(badge) - lipgloss.Width(meta) - 1
	title := styles.Truncate(r.Title, titleWidth)
	title = styles.Pad(title, max(titleWidth, 0))

	parts := []styles.RowPart{}
	if len(matched) > 0 {
		parts = append(parts, highlightParts(title, matched, sharedPrefix(r.Title, title))...)
	} else {
		parts = append(parts, styles.RowPart{Text: title})
	}
	if meta != "" {
		dim := styles.DimGray
		parts = append(parts, styles.RowPart{Text: " " + meta, Foreground: &dim})
	}

	return badge + styles.RenderListRow(parts, selected, width-lipgloss.Width(badge))
}

// highlightParts splits title into runs, marking the fuzzy-matched bytes.
// Offsets at or past limit fall in the truncation marker and are ignored.
func highlightParts(title string, matched []int, limit int) []styles.RowPart {
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		if i < limit {
			hit[i] = true
		}
	}

	var parts []styles.RowPart
	var run strings.Builder
	runHit := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		parts = append(parts, styles.RowPart{Text: run.String(), Highlight: runHit})
		run.Reset()
	}

	for i, r := range title {
		if hit[i] != runHit {
			flush()
			runHit = hit[i]
		}
		run.WriteRune(r)
	}
	flush()
	return parts
}

// sharedPrefix returns the byte length of the common prefix of a and b
func sharedPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func (l *ResultList) renderFilterBar() string {
	countStr := ""
	if l.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", l.ItemCount(), len(l.rows)))
	}
	return l.filterInput.View() + countStr
}
