package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flixhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.Server.Origin)
	assert.Equal(t, "sqlite", cfg.Identity.Driver)
	assert.Equal(t, "work_id_history", cfg.Identity.Key)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, []string{"data/catalog.json"}, cfg.Catalog.Files)
	assert.Empty(t, cfg.Identity.SQLitePath)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, "flixhub", cfg.Auth.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flixhub.yaml")
	content := `
server:
  addr: ":9090"
  origin: "https://example.org/app"
identity:
  driver: file
  file: /tmp/history.json
search:
  debounce: 150ms
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("FLIXHUB_SERVER_ADDR", ":7000")
	t.Setenv("FLIXHUB_AUTH_JWT_SECRET", "from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "https://example.org/app", cfg.Server.Origin)
	assert.Equal(t, "file", cfg.Identity.Driver)
	assert.Equal(t, "/tmp/history.json", cfg.Identity.File)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestLoadConfig_InvalidDriver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flixhub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("identity:\n  driver: etcd\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identity.driver")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Addr: ":8080"},
			Identity: IdentityConfig{Driver: "memory", Key: "k"},
			Log:      LogConfig{Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing addr", func(c *Config) { c.Server.Addr = " " }, true},
		{"file driver without path", func(c *Config) { c.Identity.Driver = "file" }, true},
		{"redis driver without url", func(c *Config) { c.Identity.Driver = "redis" }, true},
		{"missing key", func(c *Config) { c.Identity.Key = "" }, true},
		{"negative debounce", func(c *Config) { c.Search.Debounce = -time.Second }, true},
		{"sqlite driver without path", func(c *Config) { c.Identity.Driver = "sqlite" }, false},
		{"negative token ttl", func(c *Config) { c.Auth.TokenTTL = -time.Minute }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":    "debug",
		"WARNING":  "warn",
		"error":    "error",
		"":         "info",
		"nonsense": "info",
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in).String(), in)
	}
}
