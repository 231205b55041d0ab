package components

// Row is one rendered search result
type Row struct {
	Title  string
	Meta   string   // Short right-hand summary
	Badge  string   // Optional status badge, e.g. "18+" or "resolved"
	Danger bool     // Render the badge as a warning
	Detail []string // Lines shown in the detail pane when selected
}
