package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports/mocks"
)

func newLoader(t *testing.T) *Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return NewLoader(logger)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_DefaultsWhenNoFile(t *testing.T) {
	loader := newLoader(t)

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Cache.StaleAfter)
	assert.Equal(t, 60*time.Second, cfg.Cache.DashboardRefresh)
	assert.Equal(t, 30*time.Second, cfg.Undo.Window)
	assert.Equal(t, StreamModeSSE, cfg.Stream.Mode)
	assert.False(t, cfg.Log.JSON)
}

func TestLoader_FullFile(t *testing.T) {
	loader := newLoader(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  base_url: https://symulacja.example.com
  timeout: 10s
cache:
  stale_after: 2m
  dashboard_refresh: 45s
undo:
  window: 1m
stream:
  mode: poll
  poll_interval: 5s
log:
  json: true
`)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://symulacja.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.Cache.StaleAfter)
	assert.Equal(t, 45*time.Second, cfg.Cache.DashboardRefresh)
	assert.Equal(t, time.Minute, cfg.Undo.Window)
	assert.Equal(t, StreamModePoll, cfg.Stream.Mode)
	assert.Equal(t, 5*time.Second, cfg.Stream.PollInterval)
	assert.True(t, cfg.Log.JSON)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	loader := newLoader(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  base_url: http://127.0.0.1:9000
`)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, StreamModeSSE, cfg.Stream.Mode)
}

func TestLoader_FindsFileInAncestor(t *testing.T) {
	loader := newLoader(t)
	root := t.TempDir()
	writeConfig(t, root, "server:\n  base_url: http://ancestor:8000\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "http://ancestor:8000", cfg.Server.BaseURL)
}

func TestLoader_EnvOverride(t *testing.T) {
	loader := newLoader(t)

	override := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(override, []byte("server:\n  base_url: http://override:8000\n"), 0o600))
	t.Setenv(EnvOverride, override)

	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "http://override:8000", cfg.Server.BaseURL)
}

func TestLoader_EnvOverrideMissingFile(t *testing.T) {
	loader := newLoader(t)
	t.Setenv(EnvOverride, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := loader.Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "server: [not a mapping",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "bad duration",
			content: "cache:\n  stale_after: soon\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "negative duration",
			content: "undo:\n  window: -5s\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown stream mode",
			content: "stream:\n  mode: carrier-pigeon\n",
			wantErr: domain.ErrUnknownStreamMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t)
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := loader.Load(dir)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
