package config

import "time"

// fileSchema is the structure of the symulacja.yaml configuration file.
// Durations use Go duration syntax ("30s", "2m").
type fileSchema struct {
	Server struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"server"`
	Cache struct {
		StaleAfter       string `yaml:"stale_after"`
		DashboardRefresh string `yaml:"dashboard_refresh"`
	} `yaml:"cache"`
	Undo struct {
		Window string `yaml:"window"`
	} `yaml:"undo"`
	Stream struct {
		Mode         string `yaml:"mode"`
		PollInterval string `yaml:"poll_interval"`
	} `yaml:"stream"`
	Log struct {
		JSON bool `yaml:"json"`
	} `yaml:"log"`
}

// StreamMode selects the progress transport.
type StreamMode string

const (
	// StreamModeSSE consumes the server-sent-event stream endpoint.
	StreamModeSSE StreamMode = "sse"
	// StreamModePoll samples the job status endpoint on an interval.
	StreamModePoll StreamMode = "poll"
)

// ServerConfig addresses the Symulacja server.
type ServerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig tunes entity staleness.
type CacheConfig struct {
	// StaleAfter is the nominal freshness window for cached entities.
	StaleAfter time.Duration
	// DashboardRefresh forces periodic dashboard refetches. Zero disables.
	DashboardRefresh time.Duration
}

// UndoConfig tunes the soft-delete recovery affordance.
type UndoConfig struct {
	// Window is the advisory local undo window, used when the server
	// response carries no explicit deadline.
	Window time.Duration
}

// StreamConfig selects and tunes the progress transport.
type StreamConfig struct {
	Mode         StreamMode
	PollInterval time.Duration
}

// LogConfig tunes log output.
type LogConfig struct {
	JSON bool
}

// Config is the resolved client configuration.
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	Undo   UndoConfig
	Stream StreamConfig
	Log    LogConfig
}

// defaults returns the configuration used when no file is present. Every
// field of a partial file falls back to these values too.
func defaults() Config {
	return Config{
		Server: ServerConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			StaleAfter:       30 * time.Second,
			DashboardRefresh: 60 * time.Second,
		},
		Undo: UndoConfig{
			Window: 30 * time.Second,
		},
		Stream: StreamConfig{
			Mode:         StreamModeSSE,
			PollInterval: 2 * time.Second,
		},
	}
}
