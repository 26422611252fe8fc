package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvVerbose    = "BMPTOOL_VERBOSE"
	EnvBackground = "BMPTOOL_BACKGROUND"
)

type Config struct {
	Verbose    bool // Log every decode, transform and encode step
	Background byte // Fill byte for pixels a rotation leaves uncovered
}

func Default() Config {
	return Config{Background: 0xff}
}

// Load reads an optional .env file and then the environment.
func Load(filenames ...string) (Config, error) {
	// A missing .env is the normal case and stays silent
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Default(), fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, falling back to Default for unset variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvVerbose); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %q is not a boolean", EnvVerbose, v)
		}
		cfg.Verbose = verbose
	}

	if v, ok := lookup(EnvBackground); ok && v != "" {
		bg, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return cfg, fmt.Errorf("%s: %q is not a byte value (0-255)", EnvBackground, v)
		}
		cfg.Background = byte(bg)
	}

	return cfg, nil
}
