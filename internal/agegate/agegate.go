// Package agegate suspends actions that expose adult content until the user
// has confirmed their age once.
package agegate

import (
	"errors"
	"log/slog"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrConfirmationRequired is returned when the gate is needed but nobody can answer it
var ErrConfirmationRequired = errors.New("age confirmation required")

// Listener receives the user's answer and may return a follow-up command
type Listener func(adult bool) tea.Cmd

// Gated returns a listener that runs fn only if the user confirmed.
// A declined gate is a silent cancellation.
func Gated(fn func() tea.Cmd) Listener {
	return func(adult bool) tea.Cmd {
		if !adult {
			return nil
		}
		return fn()
	}
}

// Coordinator owns the single confirmation gate. Requests made while the
// gate is open share it and are all answered by one response.
type Coordinator struct {
	prefs  domain.PreferenceStore
	logger *slog.Logger

	open    bool
	pending []Listener
}

// New creates a closed coordinator backed by prefs
func New(prefs domain.PreferenceStore, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{prefs: prefs, logger: logger}
}

// Adult returns the stored answer and whether one exists
func (c *Coordinator) Adult() (bool, bool) {
	return c.prefs.Bool(domain.PrefAdult)
}

// Open returns whether the confirmation should be on screen
func (c *Coordinator) Open() bool {
	return c.open
}

// Pending returns the number of listeners waiting on the gate
func (c *Coordinator) Pending() int {
	return len(c.pending)
}

// Request runs l at once if the user is already known to be an adult.
// Otherwise it opens the gate (if not already open) and queues l.
func (c *Coordinator) Request(l Listener) tea.Cmd {
	if adult, ok := c.Adult(); ok && adult {
		return l(true)
	}

	c.pending = append(c.pending, l)
	if !c.open {
		c.open = true
		c.logger.Debug("age gate opened")
	}
	return nil
}

// Respond records the user's answer, closes the gate and notifies every
// queued listener in registration order.
func (c *Coordinator) Respond(adult bool) tea.Cmd {
	if !c.open {
		return nil
	}

	if err := c.prefs.SetBool(domain.PrefAdult, adult); err != nil {
		c.logger.Warn("failed to persist age confirmation", "error", err)
	}

	listeners := c.pending
	c.pending = nil
	c.open = false
	c.logger.Debug("age gate closed", "adult", adult, "listeners", len(listeners))

	cmds := make([]tea.Cmd, 0, len(listeners))
	for _, l := range listeners {
		cmds = append(cmds, l(adult))
	}
	return tea.Batch(cmds...)
}
