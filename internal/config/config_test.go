package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/FlashpointProject/CommunityWebsite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPageSize, cfg.Search.PageSize)
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.ErrorIs(t, cfg.Validate(), ErrNotConfigured)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `server:
  url: https://community.example.org
  session_cookie: abc123
  timeout: 30s
session:
  user_id: "42"
  username: mod
  roles:
    - "442462642599231499"
search:
  page_size: 25
storage:
  data_dir: /tmp/fp
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "https://community.example.org", cfg.Server.URL)
	assert.Equal(t, "abc123", cfg.Server.SessionCookie)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 25, cfg.Search.PageSize)
	assert.Equal(t, "/tmp/fp", cfg.Storage.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)

	session := cfg.UserSession()
	assert.True(t, session.LoggedIn())
	assert.Equal(t, "mod", session.User.Username)
	assert.True(t, session.Can(domain.PermModerate))
	assert.True(t, session.Can(domain.PermStaff))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  url: http://file\n"), 0644))
	t.Setenv("FPCOMMUNITY_SERVER_URL", "http://env")
	t.Setenv("FPCOMMUNITY_SEARCH_PAGE_SIZE", "50")

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://env", cfg.Server.URL)
	assert.Equal(t, 50, cfg.Search.PageSize)
}

func TestNonPositivePageSizeFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("search:\n  page_size: 0\n"), 0644))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPageSize, cfg.Search.PageSize)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	cfg := DefaultConfig()
	cfg.Server.URL = "https://community.example.org"
	cfg.Server.Timeout = 5 * time.Second
	cfg.Session.UserID = "7"
	cfg.Session.Roles = []string{domain.RoleCurator}
	cfg.Search.PageSize = 20
	require.NoError(t, NewLoader(dir).Save(cfg))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size: 20")
	assert.Contains(t, string(data), "session_cookie")

	loaded, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Server.URL, loaded.Server.URL)
	assert.Equal(t, 5*time.Second, loaded.Server.Timeout)
	assert.Equal(t, []string{domain.RoleCurator}, loaded.Session.Roles)
	assert.Equal(t, 20, loaded.Search.PageSize)
}

func TestMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0644))

	_, err := NewLoader(dir).Load()
	assert.Error(t, err)
}
