// Package config handles configuration for the web dashboard server,
// including defaults, environment, JSON overlay, and command-line flags.
//
// Precedence: defaults < dotenv file (-env) and USERHUB_* variables < JSON
// file (-c / -config) < flags.
package config

import (
	"errors"
	"time"
)

var ErrInvalidSessionIdleTTL = errors.New("session idle ttl must be positive")

// Config holds runtime settings for the userhub web dashboard.
//
// Fields:
//   - ListenAddr: bind address of the HTTP server.
//   - APIBaseURL / APIKey / RequestTimeout: the remote users API.
//   - SessionSecret: HMAC secret for the session cookie (HS256). When empty a
//     random secret is generated at startup, so sessions do not survive a
//     restart.
//   - SessionIdleTTL: a browser session unused for this long is dropped.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr     string
	APIBaseURL     string
	APIKey         string
	RequestTimeout time.Duration
	SessionSecret  string
	SessionIdleTTL time.Duration
	LogLevel       string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.APIBaseURL = "https://reqres.in/api"
	c.APIKey = "reqres-free-v1"
	c.RequestTimeout = 10 * time.Second
	c.SessionSecret = ""
	c.SessionIdleTTL = 30 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	if c.SessionIdleTTL <= 0 {
		return ErrInvalidSessionIdleTTL
	}
	return nil
}
