package config

import (
	"time"

	"github.com/dmitrijs2005/userhub/internal/envx"
	"github.com/dmitrijs2005/userhub/internal/flagx"
)

// parseEnv overlays Config with USERHUB_* variables after loading the
// dotenv file given with -env. Panics on an unreadable file or a malformed
// duration.
func parseEnv(cfg *Config) {
	if err := envx.Load(flagx.EnvFileFlag()); err != nil {
		panic(err)
	}

	envx.String("LISTEN_ADDR", &cfg.ListenAddr)
	envx.String("API_BASE_URL", &cfg.APIBaseURL)
	envx.String("API_KEY", &cfg.APIKey)
	envx.String("SESSION_SECRET", &cfg.SessionSecret)
	envx.String("LOG_LEVEL", &cfg.LogLevel)

	for key, dst := range map[string]*time.Duration{
		"REQUEST_TIMEOUT":  &cfg.RequestTimeout,
		"SESSION_IDLE_TTL": &cfg.SessionIdleTTL,
	} {
		if err := envx.Duration(key, dst); err != nil {
			panic(err)
		}
	}
}
