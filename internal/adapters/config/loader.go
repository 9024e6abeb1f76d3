// Package config provides the configuration loader for symctl.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// FileName is the configuration file searched for in the working directory
// and its ancestors.
const FileName = "symulacja.yaml"

// EnvOverride names the environment variable that pins the configuration
// file path, bypassing the directory walk.
const EnvOverride = "SYMULACJA_CONFIG"

// Loader reads the client configuration from a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration for cwd. A missing file yields the
// defaults; a present but unreadable or malformed file is an error.
func (l *Loader) Load(cwd string) (*Config, error) {
	path, found, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if !found {
		return &cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the directory walk or the user's env.
	if err != nil {
		return nil, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}
	if err := l.apply(&cfg, schema); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return &cfg, nil
}

// findConfiguration walks from cwd to the filesystem root looking for the
// configuration file. The env override short-circuits the walk.
func (l *Loader) findConfiguration(cwd string) (string, bool, error) {
	if override := os.Getenv(EnvOverride); override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", false, zerr.With(domain.ErrConfigReadFailed, "path", override)
		}
		return override, true, nil
	}

	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", false, nil
		}
		currentDir = parent
	}
}

// apply overlays the file schema onto the defaults. Empty fields keep
// their default values.
func (l *Loader) apply(cfg *Config, schema fileSchema) error {
	if schema.Server.BaseURL != "" {
		cfg.Server.BaseURL = schema.Server.BaseURL
	}
	if err := applyDuration(&cfg.Server.Timeout, schema.Server.Timeout, "server.timeout"); err != nil {
		return err
	}
	if err := applyDuration(&cfg.Cache.StaleAfter, schema.Cache.StaleAfter, "cache.stale_after"); err != nil {
		return err
	}
	if err := applyDuration(&cfg.Cache.DashboardRefresh, schema.Cache.DashboardRefresh, "cache.dashboard_refresh"); err != nil {
		return err
	}
	if err := applyDuration(&cfg.Undo.Window, schema.Undo.Window, "undo.window"); err != nil {
		return err
	}
	if err := applyDuration(&cfg.Stream.PollInterval, schema.Stream.PollInterval, "stream.poll_interval"); err != nil {
		return err
	}

	switch StreamMode(schema.Stream.Mode) {
	case "":
		// Keep the default.
	case StreamModeSSE, StreamModePoll:
		cfg.Stream.Mode = StreamMode(schema.Stream.Mode)
	default:
		return zerr.With(domain.ErrUnknownStreamMode, "mode", schema.Stream.Mode)
	}
	if cfg.Stream.Mode == StreamModePoll && schema.Stream.PollInterval == "" {
		l.Logger.Warn(fmt.Sprintf("stream.poll_interval not set, polling every %s", cfg.Stream.PollInterval))
	}

	cfg.Log.JSON = schema.Log.JSON
	return nil
}

func applyDuration(dst *time.Duration, raw, field string) error {
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return zerr.Wrap(domain.ErrConfigParseFailed, fmt.Sprintf("%s: %v", field, err))
	}
	if d < 0 {
		return zerr.Wrap(domain.ErrConfigParseFailed, fmt.Sprintf("%s must not be negative", field))
	}
	*dst = d
	return nil
}
