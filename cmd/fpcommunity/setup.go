package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/FlashpointProject/CommunityWebsite/internal/api"
	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui/styles"
	"github.com/spf13/cobra"
)

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the community server and session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return runSetupFlow(cmd.Context(), a)
	},
}

// runSetupFlow prompts for the server URL and optional session cookie,
// checks the server answers and saves the config.
func runSetupFlow(ctx context.Context, a *app) error {
	fmt.Println()
	fmt.Println("Welcome to fpcommunity!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	prompt := func(label string) (string, error) {
		fmt.Print(label)
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return strings.TrimSpace(input), nil
	}

	var serverURL string
	for {
		input, err := prompt("Enter the community site URL (e.g., https://community.example.org): ")
		if err != nil {
			return err
		}
		if input == "" {
			fmt.Println("Server URL cannot be empty. Please try again.")
			continue
		}

		fmt.Println()
		if err := checkServerWithSpinner(ctx, input, a.cfg.Server.Timeout); err != nil {
			fmt.Printf("\n✗ Could not reach the server: %v\n", err)
			fmt.Println("Please check the URL and try again.")
			fmt.Println()
			continue
		}
		serverURL = input
		break
	}

	cookie, err := prompt("Session cookie (leave empty to browse anonymously): ")
	if err != nil {
		return err
	}

	a.cfg.Server.URL = serverURL
	a.cfg.Server.SessionCookie = cookie
	if err := a.loader.Save(a.cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run fpcommunity again to start browsing.")
	return nil
}

// checkServerWithSpinner fetches one playlist to prove the URL serves the API
func checkServerWithSpinner(ctx context.Context, serverURL string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)
	go func() {
		client := api.NewClient(serverURL, "", timeout, nil)
		_, _, err := client.SearchPlaylists(ctx, domain.DefaultPlaylistQuery(1, false))
		resultCh <- err
	}()

	frame := 0
	fmt.Printf("\r%s Checking server...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err != nil {
				return err
			}
			fmt.Println("✓ Server reachable")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking server...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("check timed out")
		}
	}
}
