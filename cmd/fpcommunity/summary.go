package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Load the first page of every collection and print the totals",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.requireServer(); err != nil {
		return err
	}

	counts, err := a.svc.Summary(cmd.Context())
	if err != nil {
		return err
	}

	t := table.New().Headers("Collection", "Total", "Loaded", "Status")
	for _, c := range counts {
		status := "ok"
		total := fmt.Sprint(c.Total)
		if c.Err != nil {
			status = c.Err.Error()
			total = "-"
		}
		t.Row(c.Resource, total, fmt.Sprint(c.Loaded), status)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return err
}
