package config

import (
	"github.com/dmitrijs2005/userhub/internal/envx"
	"github.com/dmitrijs2005/userhub/internal/flagx"
)

// parseEnv overlays Config with USERHUB_* variables, after loading the
// dotenv file named by -env. Panics on an unreadable file or a malformed
// duration.
func parseEnv(cfg *Config) {
	if err := envx.Load(flagx.EnvFileFlag()); err != nil {
		panic(err)
	}

	envx.String("API_BASE_URL", &cfg.APIBaseURL)
	envx.String("API_KEY", &cfg.APIKey)
	envx.String("SESSION_DB", &cfg.SessionDB)
	envx.String("LOG_LEVEL", &cfg.LogLevel)
	if err := envx.Duration("REQUEST_TIMEOUT", &cfg.RequestTimeout); err != nil {
		panic(err)
	}
}
