package config

import "time"

// Config holds runtime settings for the userhub CLI.
//
// SessionDB may start with "~"; it is expanded when the database is opened.
type Config struct {
	APIBaseURL     string
	APIKey         string
	RequestTimeout time.Duration
	SessionDB      string
	LogLevel       string
}

// LoadDefaults populates c with defaults that work against the public
// reqres.in API.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://reqres.in/api"
	c.APIKey = "reqres-free-v1"
	c.RequestTimeout = 10 * time.Second
	c.SessionDB = "~/.userhub/session.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
