package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{"defaults", nil, Config{Background: 0xff}},
		{"empty values", map[string]string{EnvVerbose: "", EnvBackground: ""}, Config{Background: 0xff}},
		{"verbose", map[string]string{EnvVerbose: "true"}, Config{Verbose: true, Background: 0xff}},
		{"black background", map[string]string{EnvBackground: "0"}, Config{Background: 0}},
		{"hex background", map[string]string{EnvBackground: "0x80", EnvVerbose: "1"}, Config{Verbose: true, Background: 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromEnv(lookupFrom(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestFromEnvInvalid(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvVerbose: "loud"},
		{EnvBackground: "256"},
		{EnvBackground: "-1"},
		{EnvBackground: "white"},
	} {
		_, err := FromEnv(lookupFrom(env))
		assert.Error(t, err, "%v", env)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvBackground+"=7\n"), 0644))
	t.Setenv(EnvBackground, "")
	os.Unsetenv(EnvBackground)
	t.Setenv(EnvVerbose, "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, byte(7), cfg.Background)
	assert.False(t, cfg.Verbose)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Setenv(EnvBackground, "9")

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, byte(9), cfg.Background)
	assert.Empty(t, logged.String(), "a missing .env must not print anything")
}

func TestLoadDotEnvIsDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
