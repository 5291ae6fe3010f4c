package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "EU_Acceptance_QB15_Combined_from_XLSX.csv", cfg.Data.Path)
	assert.Empty(t, cfg.Data.Format)
	assert.False(t, cfg.Data.Strict)
	assert.Equal(t, "revalidate", cfg.Data.CachePolicy)
	assert.Equal(t, 8501, cfg.Server.Port)
	assert.Empty(t, cfg.Server.CORSOrigins)
	assert.Equal(t, 6, cfg.Server.ReloadPerMinute)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
data:
  path: data/acceptance.xlsx
  sheet: Combined
  strict: true
  cache_policy: static
log:
  level: debug
  format: console
server:
  port: 9090
  cors_origins:
    - https://example.org
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/acceptance.xlsx", cfg.Data.Path)
	assert.Equal(t, "Combined", cfg.Data.Sheet)
	assert.True(t, cfg.Data.Strict)
	assert.Equal(t, "static", cfg.Data.CachePolicy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://example.org"}, cfg.Server.CORSOrigins)
	// Defaults still apply for unset values
	assert.Equal(t, 6, cfg.Server.ReloadPerMinute)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
data:
  path: from-file.csv
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("ACCEPTANCE_DATA_PATH", "from-env.csv")
	t.Setenv("ACCEPTANCE_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "from-env.csv", cfg.Data.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("ACCEPTANCE_SERVER_PORT", "3000")
	t.Setenv("ACCEPTANCE_DATA_STRICT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.True(t, cfg.Data.Strict)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("data: [unclosed"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Data.Path = "acceptance.csv"
	cfg.Data.CachePolicy = "revalidate"
	cfg.Server.Port = 8501
	cfg.Server.ReloadPerMinute = 6
	return cfg
}

func TestValidateServe_ValidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 9090

	assert.NoError(t, cfg.Validate("serve"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be between 1 and 65535")
}

func TestValidateServe_NegativeReloadRate(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.ReloadPerMinute = -1

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reload_per_minute")
}

func TestValidateData(t *testing.T) {
	cfg := validDefaults()
	assert.NoError(t, cfg.Validate("data"))

	cfg.Data.Path = " "
	cfg.Data.Format = "parquet"
	cfg.Data.CachePolicy = "ttl"
	err := cfg.Validate("data")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data.path is required")
	assert.Contains(t, err.Error(), "data.format")
	assert.Contains(t, err.Error(), "data.cache_policy")
}

func TestValidateData_IgnoresServerSettings(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	assert.NoError(t, cfg.Validate("data"))
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
