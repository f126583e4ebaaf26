package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "the config file is optional")

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, DataSourceMemory, cfg.DataSource.Mode)
	assert.True(t, cfg.DataSource.Seed)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  mode: production
datasource:
  mode: remote
  base_url: http://backend:8080/api
  timeout: 30s
  seed: false
logging:
  level: debug
  format: json
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, DataSourceRemote, cfg.DataSource.Mode)
	assert.Equal(t, "http://backend:8080/api", cfg.DataSource.BaseURL)
	assert.False(t, cfg.DataSource.Seed)
	assert.Equal(t, 30*time.Second, cfg.RemoteTimeout())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DATASOURCE_MODE", "remote")
	t.Setenv("DATASOURCE_BASE_URL", "http://override:9090/api")
	t.Setenv("DATASOURCE_SEED", "false")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, DataSourceRemote, cfg.DataSource.Mode)
	assert.Equal(t, "http://override:9090/api", cfg.DataSource.BaseURL)
	assert.False(t, cfg.DataSource.Seed)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown datasource mode", "datasource:\n  mode: disk\n"},
		{"remote without base url", "datasource:\n  mode: remote\n  base_url: \"\"\n"},
		{"non-numeric port", "server:\n  port: eighty\n"},
		{"bad timeout", "datasource:\n  timeout: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
