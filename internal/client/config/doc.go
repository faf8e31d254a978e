// Package config loads runtime configuration for the userhub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional dotenv file selected with -env, then USERHUB_*
//     variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the users API
//	-k string   API key sent as x-api-key
//	-t int      request timeout (seconds)
//	-d string   path of the session database
//	-l string   log level (debug, info, warn, error)
//
// # Environment
//
//	USERHUB_API_BASE_URL, USERHUB_API_KEY, USERHUB_REQUEST_TIMEOUT (e.g. "10s"),
//	USERHUB_SESSION_DB, USERHUB_LOG_LEVEL
//
// # JSON schema
//
// Durations are timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds. Missing keys leave earlier values alone:
//
//	{
//	  "api_base_url": "https://reqres.in/api",
//	  "api_key": "reqres-free-v1",
//	  "request_timeout": "10s",
//	  "session_db": "~/.userhub/session.db",
//	  "log_level": "warn"
//	}
package config
