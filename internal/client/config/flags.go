package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userhub/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only the flags known here are parsed (see flagx.FilterArgs), so -c and
// -env can share the command line. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-k", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the users API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
