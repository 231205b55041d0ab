// Package config loads and saves the fpcommunity configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. FPCOMMUNITY_SERVER_URL
const EnvPrefix = "FPCOMMUNITY"

// ErrNotConfigured is returned when no server URL is set
var ErrNotConfigured = errors.New("server url not configured")

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Search  SearchConfig  `mapstructure:"search"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the community site connection
type ServerConfig struct {
	URL           string        `mapstructure:"url"`
	SessionCookie string        `mapstructure:"session_cookie"` // value of the login cookie
	Timeout       time.Duration `mapstructure:"timeout"`
}

// SessionConfig describes the logged-in user. Permissions are derived from roles.
type SessionConfig struct {
	UserID   string   `mapstructure:"user_id"`
	Username string   `mapstructure:"username"`
	Roles    []string `mapstructure:"roles"`
}

// SearchConfig holds search defaults
type SearchConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// StorageConfig holds local persistence settings
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"` // empty keeps preferences in memory
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Timeout: 15 * time.Second,
		},
		Search: SearchConfig{
			PageSize: domain.DefaultPageSize,
		},
		Storage: StorageConfig{
			DataDir: defaultDataPath(),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "fpcommunity.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "fpcommunity")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "fpcommunity")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "fpcommunity")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "fpcommunity")
	}
}

// Loader reads and writes one config file
type Loader struct {
	v   *viper.Viper
	dir string
}

// NewLoader creates a loader rooted at dir. An empty dir uses DefaultConfigDir
// and the working directory.
func NewLoader(dir string) *Loader {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = DefaultConfigDir()
		v.AddConfigPath(dir)
		v.AddConfigPath(".")
	} else {
		v.AddConfigPath(dir)
	}

	// Environment variable overrides; nested keys use underscores
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())
	return &Loader{v: v, dir: dir}
}

// setDefaults registers every key so env overrides reach Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("server.url", cfg.Server.URL)
	v.SetDefault("server.session_cookie", cfg.Server.SessionCookie)
	v.SetDefault("server.timeout", cfg.Server.Timeout)
	v.SetDefault("session.user_id", cfg.Session.UserID)
	v.SetDefault("session.username", cfg.Session.Username)
	v.SetDefault("session.roles", cfg.Session.Roles)
	v.SetDefault("search.page_size", cfg.Search.PageSize)
	v.SetDefault("storage.data_dir", cfg.Storage.DataDir)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Load reads the config file if present and applies environment overrides
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if cfg.Search.PageSize <= 0 {
		cfg.Search.PageSize = domain.DefaultPageSize
	}
	return cfg, nil
}

// Save writes cfg to config.yaml in the loader's directory
func (l *Loader) Save(cfg *Config) error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	l.v.Set("server.url", cfg.Server.URL)
	l.v.Set("server.session_cookie", cfg.Server.SessionCookie)
	l.v.Set("server.timeout", cfg.Server.Timeout.String())

	l.v.Set("session.user_id", cfg.Session.UserID)
	l.v.Set("session.username", cfg.Session.Username)
	l.v.Set("session.roles", cfg.Session.Roles)

	l.v.Set("search.page_size", cfg.Search.PageSize)
	l.v.Set("storage.data_dir", cfg.Storage.DataDir)

	l.v.Set("logging.file", cfg.Logging.File)
	l.v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(l.dir, "config.yaml")
	if err := l.v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate returns ErrNotConfigured if the server URL is missing
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return ErrNotConfigured
	}
	return nil
}

// UserSession builds the session described by the config
func (c *Config) UserSession() domain.Session {
	return domain.NewSession(c.Session.UserID, c.Session.Username, c.Session.Roles)
}
