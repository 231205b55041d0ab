package log

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/FlashpointProject/CommunityWebsite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetupLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fpcommunity.log")

	logger, closer, err := SetupLogger(config.LoggingConfig{File: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "resource", "playlists")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry), "exactly one JSON line expected")
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "playlists", entry["resource"])
}

func TestSetupLoggerFailsOnDirectory(t *testing.T) {
	_, _, err := SetupLogger(config.LoggingConfig{File: t.TempDir()})
	assert.Error(t, err)
}
