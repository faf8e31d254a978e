package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userhub/internal/flagx"
	"github.com/dmitrijs2005/userhub/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Durations are timex.Duration, which accepts both strings
// such as "30m" and integer nanoseconds. Pointer fields let a missing key
// keep the value from earlier sources.
type JsonConfig struct {
	ListenAddr     *string         `json:"listen_addr"`
	APIBaseURL     *string         `json:"api_base_url"`
	APIKey         *string         `json:"api_key"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	SessionSecret  *string         `json:"session_secret"`
	SessionIdleTTL *timex.Duration `json:"session_idle_ttl"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file given with -c or
// -config into config. Without either flag nothing is loaded. Panics when the
// file cannot be read or holds invalid JSON.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.APIBaseURL, c.APIBaseURL)
	setString(&config.APIKey, c.APIKey)
	setString(&config.SessionSecret, c.SessionSecret)
	setString(&config.LogLevel, c.LogLevel)
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.SessionIdleTTL != nil {
		config.SessionIdleTTL = c.SessionIdleTTL.Duration
	}
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
