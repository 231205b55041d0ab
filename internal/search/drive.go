package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Drive runs a resource without a Bubble Tea program. Each action is
// dispatched in order; every command it produces is executed on the calling
// goroutine and its message fed back through Update until nothing is pending.
// Alerts raised along the way are returned rather than displayed.
func Drive[Q Pager[Q], T any](ctx context.Context, r *Resource[Q, T], actions ...Action[Q, T]) ([]AlertMsg, error) {
	var alerts []AlertMsg

	for _, a := range actions {
		pending := []tea.Cmd{r.Dispatch(a)}

		for len(pending) > 0 {
			if err := ctx.Err(); err != nil {
				return alerts, err
			}

			cmd := pending[0]
			pending = pending[1:]
			if cmd == nil {
				continue
			}

			switch msg := cmd().(type) {
			case tea.BatchMsg:
				pending = append(pending, msg...)
			case AlertMsg:
				alerts = append(alerts, msg)
			default:
				if next := r.Update(msg); next != nil {
					pending = append(pending, next)
				}
			}
		}
	}

	return alerts, nil
}
