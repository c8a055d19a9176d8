package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "config.yaml"))

	require.NoError(t, err)
	require.Equal(t, "file", cfg.Storage.Type)
	require.Equal(t, filepath.Join(dir, "days"), cfg.Storage.Path)
	require.Equal(t, 90, cfg.Storage.RetentionDays)
	require.Equal(t, "info", cfg.Logging.Level)
	require.True(t, cfg.Notifications.Enabled)
	require.True(t, cfg.Overlay.Enabled)
	require.Equal(t, dir, cfg.Dir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `storage:
  type: bolt
  path: /tmp/reelfocus.bolt
  retention_days: 0
logging:
  level: debug
  format: json
overlay:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "bolt", cfg.Storage.Type)
	require.Equal(t, "/tmp/reelfocus.bolt", cfg.Storage.Path)
	require.Zero(t, cfg.Storage.RetentionDays)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.False(t, cfg.Overlay.Enabled)
	require.True(t, cfg.Notifications.Enabled)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("REELFOCUS_LOGGING_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "storage type", content: "storage:\n  type: redis\n"},
		{name: "log level", content: "logging:\n  level: loud\n"},
		{name: "retention", content: "storage:\n  retention_days: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)

			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadIgnoresTickInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timer:\n  tick_interval: 20ms\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "file", cfg.Storage.Type)
	require.NotContains(t, fmt.Sprintf("%+v", *cfg), "20ms")
}

func TestLoadLogLevelOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path, WithLogLevel("debug"))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)

	cfg, err = Load(path, WithLogLevel(""))
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Logging.Level)

	_, err = Load(path, WithLogLevel("bogus"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}
