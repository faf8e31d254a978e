package envx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Setenv("USERHUB_API_KEY", " abc ")
	t.Setenv("USERHUB_EMPTY", "")

	v := "default"
	String("API_KEY", &v)
	assert.Equal(t, "abc", v)

	v = "default"
	String("EMPTY", &v)
	assert.Equal(t, "default", v)

	String("MISSING_ENTIRELY", &v)
	assert.Equal(t, "default", v)
}

func TestDuration(t *testing.T) {
	t.Setenv("USERHUB_TIMEOUT", "15s")
	t.Setenv("USERHUB_BROKEN", "soon")

	d := time.Second
	require.NoError(t, Duration("TIMEOUT", &d))
	assert.Equal(t, 15*time.Second, d)

	err := Duration("BROKEN", &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "USERHUB_BROKEN")
	assert.Equal(t, 15*time.Second, d)
}

func TestLoad(t *testing.T) {
	require.NoError(t, Load(""))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("USERHUB_FROM_FILE=file\nUSERHUB_PRESET=file\n"), 0o600))

	t.Setenv("USERHUB_PRESET", "process")
	// registers cleanup for the variable Load is about to set
	t.Setenv("USERHUB_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("USERHUB_FROM_FILE"))

	require.NoError(t, Load(path))
	assert.Equal(t, "file", os.Getenv("USERHUB_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("USERHUB_PRESET"))

	require.Error(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}
