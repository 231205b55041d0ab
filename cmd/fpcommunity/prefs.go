package main

import (
	"fmt"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show stored preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefs,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget every stored preference, including the age confirmation",
	Args:  cobra.NoArgs,
	RunE:  runPrefsReset,
}

func init() {
	prefsCmd.AddCommand(prefsResetCmd)
}

var prefKeys = []string{domain.PrefAdult, domain.PrefPlaylistIncludeAdult}

func runPrefs(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	for _, k := range prefKeys {
		v, ok := a.prefs.Bool(k)
		value := "unset"
		if ok {
			value = fmt.Sprint(v)
		}
		if _, err := fmt.Fprintf(out, "%-24s %s\n", k, value); err != nil {
			return err
		}
	}
	return nil
}

func runPrefsReset(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, k := range a.prefs.Keys() {
		if err := a.prefs.Delete(k); err != nil {
			return fmt.Errorf("failed to reset %s: %w", k, err)
		}
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Preferences reset.")
	return err
}
