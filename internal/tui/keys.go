package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Query
	Order       key.Binding
	Filter      key.Binding
	FilterAlt   key.Binding
	ToggleAdult key.Binding
	QuickFilter key.Binding
	Retry       key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("l/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("h/←", "prev page"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "order"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
		FilterAlt: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "cycle state"),
		),
		ToggleAdult: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "adult content"),
		),
		QuickFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter page"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextPage, k.PrevPage, k.Order, k.Filter, k.QuickFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.NextPage, k.PrevPage, k.Retry},
		{k.Order, k.Filter, k.FilterAlt, k.ToggleAdult},
		{k.QuickFilter, k.Help, k.Quit},
	}
}
