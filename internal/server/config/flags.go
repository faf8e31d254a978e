package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userhub/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-u string   base URL of the users API
//	-k string   API key sent as x-api-key
//	-t int      request timeout, seconds
//	-s string   session cookie HMAC secret
//	-i int      session idle TTL, minutes
//	-l string   log level
//
// Only the flags recognized here are parsed (see flagx.FilterArgs). Panics on
// malformed values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-k", "-t", "-s", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.APIBaseURL, "u", config.APIBaseURL, "base URL of the users API")
	fs.StringVar(&config.APIKey, "k", config.APIKey, "API key")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret key")
	sessionIdleTTL := fs.Int("i", int(config.SessionIdleTTL.Minutes()), "session idle ttl (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	config.SessionIdleTTL = time.Duration(*sessionIdleTTL) * time.Minute
}
