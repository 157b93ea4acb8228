package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the diary CLI.
type Config struct {
	// APIBaseURL is the scheme://host:port of the diary backend.
	APIBaseURL string
	// RequestTimeout bounds every HTTP call.
	RequestTimeout time.Duration
	// DeadlineCheckInterval is how often the task page polls for due tasks.
	DeadlineCheckInterval time.Duration
	// DatabasePath is the SQLite file holding the persisted session.
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
	c.DeadlineCheckInterval = 60 * time.Second
	c.DatabasePath = "diary.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a .env file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
