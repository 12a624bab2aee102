package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/cefr"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lingo.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "dev", cfg.Log.Mode)
	assert.Equal(t, time.Hour, cfg.FrontendKey.Window)

	scale, err := cfg.Scale()
	require.NoError(t, err)
	assert.Same(t, cefr.DefaultScale(), scale)

	keys, err := cfg.FrontendKeys()
	require.NoError(t, err)
	assert.Nil(t, keys)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
env: production
database:
  path: /tmp/lingo-test.db
http:
  addr: ":9090"
  allowed_origins: ["https://app.example.com"]
  shutdown_timeout: 5s
log:
  mode: prod
frontend_key:
  secret: file-secret
  window: 30m
levels:
  - {name: beginner, range: [0, 999], visual_width: 40}
  - {name: advanced, range: [1000, 5000], visual_width: 60}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/lingo-test.db", cfg.Database.Path)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.FrontendKey.Window)

	scale, err := cfg.Scale()
	require.NoError(t, err)
	assert.InDelta(t, 100, scale.TotalVisualWidth(), 1e-9)
	assert.Equal(t, "advanced", scale.CurrentLevel(1000).Name)

	keys, err := cfg.FrontendKeys()
	require.NoError(t, err)
	require.NotNil(t, keys)
	assert.Equal(t, 30*time.Minute, keys.Window())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "http:\n  addr: \":9090\"\n")
	t.Setenv("LINGO_HTTP_ADDR", ":7070")
	t.Setenv("LINGO_DB", "/var/lib/lingo.db")
	t.Setenv("LINGO_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LINGO_FRONTEND_KEY_SECRET", "env-secret")
	t.Setenv("LINGO_FRONTEND_KEY_WINDOW", "2h")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "/var/lib/lingo.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "env-secret", cfg.FrontendKey.Secret)
	assert.Equal(t, 2*time.Hour, cfg.FrontendKey.Window)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "http: [unterminated"))
		require.Error(t, err)
	})
	t.Run("bad window", func(t *testing.T) {
		t.Setenv("LINGO_FRONTEND_KEY_WINDOW", "soon")
		_, err := Load("")
		require.Error(t, err)
	})
	t.Run("bad log mode", func(t *testing.T) {
		t.Setenv("LINGO_LOG_MODE", "loud")
		_, err := Load("")
		require.Error(t, err)
	})
	t.Run("bad levels", func(t *testing.T) {
		_, err := Load(writeFile(t, `
levels:
  - {name: a, range: [0, 10], visual_width: 1}
  - {name: b, range: [20, 30], visual_width: 1}
`))
		require.ErrorIs(t, err, cefr.ErrInvalidScale)
	})
}
