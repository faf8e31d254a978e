package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "https://reqres.in/api", c.APIBaseURL)
	assert.Equal(t, "reqres-free-v1", c.APIKey)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Empty(t, c.SessionSecret)
	assert.Equal(t, 30*time.Minute, c.SessionIdleTTL)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Setenv("USERHUB_LISTEN_ADDR", ":7000")
	t.Setenv("USERHUB_SESSION_SECRET", "env-secret")
	t.Setenv("USERHUB_SESSION_IDLE_TTL", "5m")

	path := writeTempJSON(t, "", "", map[string]any{"session_secret": "json-secret", "listen_addr": ":7001"})
	os.Args = []string{"server", "-c", path, "-a", ":7002"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, ":7002", c.ListenAddr)
	assert.Equal(t, "json-secret", c.SessionSecret)
	assert.Equal(t, 5*time.Minute, c.SessionIdleTTL)
	assert.Equal(t, "reqres-free-v1", c.APIKey)
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	for _, ttl := range []time.Duration{0, -time.Minute} {
		c.SessionIdleTTL = ttl
		assert.ErrorIs(t, c.Validate(), ErrInvalidSessionIdleTTL)
	}
}

func TestLoadConfig_ZeroIdleTTLPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server", "-i", "0"}

	require.Panics(t, func() { LoadConfig() })
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}
	t.Setenv("USERHUB_SESSION_IDLE_TTL", "forever")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
