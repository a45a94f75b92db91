package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crtic/ptc-manager/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "ptc.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PTC_SERVER_HOST", "127.0.0.1")
	t.Setenv("PTC_SERVER_PORT", "9090")
	t.Setenv("PTC_DB_PATH", "/tmp/ptc-test.db")
	t.Setenv("PTC_LOG_LEVEL", "debug")
	t.Setenv("PTC_TRANSPORT", "http")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/ptc-test.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PTC_SERVER_PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_InvalidTransport(t *testing.T) {
	t.Setenv("PTC_TRANSPORT", "websocket")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  host: 10.0.0.5\n  port: 3000\ndb:\n  path: data/lab.db\ntransport:\n  mode: http\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("PTC_CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5", cfg.Server.Host)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "data/lab.db", cfg.DB.Path)
	require.Equal(t, "http", cfg.Transport.Mode)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db:\n  path: data/lab.db\n"), 0o644))
	t.Setenv("PTC_CONFIG_PATH", path)
	t.Setenv("PTC_DB_PATH", "/tmp/override.db")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/override.db", cfg.DB.Path)
}
