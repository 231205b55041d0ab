package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/FlashpointProject/CommunityWebsite/internal/agegate"
	"github.com/FlashpointProject/CommunityWebsite/internal/api"
	"github.com/FlashpointProject/CommunityWebsite/internal/config"
	"github.com/FlashpointProject/CommunityWebsite/internal/log"
	"github.com/FlashpointProject/CommunityWebsite/internal/service"
	"github.com/FlashpointProject/CommunityWebsite/internal/store"
	"github.com/FlashpointProject/CommunityWebsite/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	configDir string
	pageSize  int
)

var rootCmd = &cobra.Command{
	Use:           "fpcommunity",
	Short:         "Browse the Flashpoint community site from the terminal",
	Long:          "fpcommunity browses playlists, Game of the Day suggestions and (for moderators) content reports on the Flashpoint community site.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.config/fpcommunity)")
	rootCmd.PersistentFlags().IntVar(&pageSize, "page-size", 0, "results per page (overrides search.page_size)")

	rootCmd.AddCommand(playlistsCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(gotdCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(setupCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds everything a command needs, wired from the config
type app struct {
	loader *config.Loader
	cfg    *config.Config
	logger *slog.Logger
	prefs  *store.PreferenceStore
	svc    *service.Services
	gate   *agegate.Coordinator

	closers []io.Closer
}

// newApp loads config, logging and storage. The services are only built
// when a server URL is configured.
func newApp() (*app, error) {
	loader := config.NewLoader(configDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if pageSize > 0 {
		cfg.Search.PageSize = pageSize
	}

	a := &app{loader: loader, cfg: cfg}

	logger, logFile, err := log.SetupLogger(cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	} else {
		a.closers = append(a.closers, logFile)
	}
	slog.SetDefault(logger)
	a.logger = logger

	prefs, err := store.NewPreferenceStore(cfg.Storage.DataDir)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	a.prefs = prefs
	a.closers = append(a.closers, prefs)
	a.gate = agegate.New(prefs, logger)

	if cfg.Validate() == nil {
		client := api.NewClient(cfg.Server.URL, cfg.Server.SessionCookie, cfg.Server.Timeout, logger)
		a.svc = service.New(client, prefs, cfg.UserSession(), service.Options{
			PageSize: cfg.Search.PageSize,
			Timeout:  cfg.Server.Timeout,
		}, logger)
	}

	logger.Info("starting fpcommunity", "version", Version, "server", cfg.Server.URL)
	return a, nil
}

// requireServer returns config.ErrNotConfigured with a hint when no server is set
func (a *app) requireServer() error {
	if a.svc == nil {
		return fmt.Errorf("%w: run 'fpcommunity setup' or set FPCOMMUNITY_SERVER_URL", config.ErrNotConfigured)
	}
	return nil
}

// Close releases resources in reverse order of acquisition
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.logger != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.svc == nil {
		return runSetupFlow(cmd.Context(), a)
	}

	p := tea.NewProgram(
		tui.New(a.svc, a.gate, a.logger),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	a.logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		a.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	a.logger.Info("shutting down")
	return nil
}
