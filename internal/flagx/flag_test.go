package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-u", "-k", "-t", "-s", "-i", "-l"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "config and env flags are left to their own layers",
			args:    []string{"-c", "server.json", "-env", ".env", "-a", ":9090"},
			allowed: serverFlags,
			want:    []string{"-a", ":9090"},
		},
		{
			name:    "equals form",
			args:    []string{"-u=https://reqres.in/api", "-l=debug"},
			allowed: serverFlags,
			want:    []string{"-u=https://reqres.in/api", "-l=debug"},
		},
		{
			name:    "equals form of unknown flag is dropped",
			args:    []string{"-config=alt.json", "-t", "5"},
			allowed: serverFlags,
			want:    []string{"-t", "5"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-k"},
			allowed: serverFlags,
			want:    []string{"-k"},
		},
		{
			name:    "dash token is not a value",
			args:    []string{"-s", "-i", "30"},
			allowed: serverFlags,
			want:    []string{"-s", "-i", "30"},
		},
		{
			name:    "positionals are dropped",
			args:    []string{"list", "-d", "/tmp/s.db", "extra"},
			allowed: []string{"-d"},
			want:    []string{"-d", "/tmp/s.db"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-l", "info", "-l", "warn"},
			allowed: serverFlags,
			want:    []string{"-l", "info", "-l", "warn"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: serverFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}

func TestEnvFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "cfg.json", "-env", "local.env", "-u", "http://x"}
	assert.Equal(t, "local.env", EnvFileFlag())
	assert.Equal(t, "cfg.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-env=other.env"}
	assert.Equal(t, "other.env", EnvFileFlag())

	os.Args = []string{"testbin"}
	assert.Empty(t, EnvFileFlag())
}
