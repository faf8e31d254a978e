// Package envx reads configuration from the environment. An optional dotenv
// file is loaded first; variables already set in the process environment
// take precedence over the file.
package envx

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Prefix is prepended to every key looked up by this package.
const Prefix = "USERHUB_"

// Load reads the dotenv file at path into the process environment. An empty
// path is a no-op.
func Load(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(Prefix + key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// String overwrites dst with USERHUB_<key> when it is set and non-empty.
func String(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

// Duration overwrites dst with USERHUB_<key>, parsed with time.ParseDuration.
func Duration(key string, dst *time.Duration) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", Prefix, key, err)
	}
	*dst = d
	return nil
}
