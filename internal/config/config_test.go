package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		yaml := `
server:
  port: "9090"
  cors_origins: [http://localhost:3000]
  max_source_bytes: 2048
log:
  level: debug
  json: true
check:
  extensions: [.c1, .c]
`
		cfg, err := Decode(strings.NewReader(yaml))
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CorsOrigins)
		assert.EqualValues(t, 2048, cfg.Server.MaxSourceBytes)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.JSON)
		assert.Equal(t, []string{".c1", ".c"}, cfg.Check.Extensions)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, cfg.Server.Port)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Decode(strings.NewReader("server: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config YAML")
	})
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CorsOrigins)
	assert.EqualValues(t, DefaultMaxSourceBytes, cfg.Server.MaxSourceBytes)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, []string{".c1"}, cfg.Check.Extensions)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"C1_PORT":             "7000",
		"C1_CORS_ORIGINS":     " http://a.example , ,http://b.example",
		"C1_MAX_SOURCE_BYTES": "512",
		"C1_LOG_LEVEL":        "warn",
		"C1_LOG_JSON":         "true",
	}
	cfg := &Config{Server: ServerConfig{Port: "9090"}}
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CorsOrigins)
	assert.EqualValues(t, 512, cfg.Server.MaxSourceBytes)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)

	bad := &Config{}
	err := bad.applyEnv(func(k string) string {
		if k == "C1_MAX_SOURCE_BYTES" {
			return "lots"
		}
		return ""
	})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"non-numeric port", func(c *Config) { c.Server.Port = "http" }, "port must be a number"},
		{"port out of range", func(c *Config) { c.Server.Port = "70000" }, "between 1 and 65535"},
		{"negative size", func(c *Config) { c.Server.MaxSourceBytes = -1 }, "max_source_bytes"},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, "unknown log level"},
		{"extension without dot", func(c *Config) { c.Check.Extensions = []string{"c1"} }, "must start with '.'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c1check.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"8181\"\n"), 0o644))

	t.Setenv("ENV_PATH", filepath.Join(dir, "missing.env"))
	t.Setenv("C1_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8181", cfg.Server.Port)
	assert.Equal(t, "error", cfg.Log.Level)

	_, err = Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("C1_PORT=6060\n"), 0o644))

	t.Setenv("ENV_PATH", envFile)
	t.Setenv("C1_PORT", "")
	os.Unsetenv("C1_PORT")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "6060", cfg.Server.Port)
	os.Unsetenv("C1_PORT")
}

func TestLoadShippedConfig(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load(filepath.Join("..", "..", "configs", "c1check.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.EqualValues(t, 1048576, cfg.Server.MaxSourceBytes)
	assert.Equal(t, []string{".c1"}, cfg.Check.Extensions)
}
