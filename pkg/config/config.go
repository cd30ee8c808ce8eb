// Package config handles environment-derived configuration for site builds.
//
// Settings come from three layers: an optional dotenv file loaded into the
// process environment, the environment itself, and an optional YAML site
// file. Environment values always win over file values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissing indicates a required setting is absent from the environment.
var ErrMissing = errors.New("required setting is not set")

// defaultEnvPaths are tried in order when LoadEnv is called without arguments.
var defaultEnvPaths = []string{".env", ".env.local"}

// LoadEnv loads environment variables from the first readable dotenv file.
// Variables already present in the process environment are not overwritten.
// It reports whether a file was found and loaded; a missing file is not an
// error condition, builds may run on the bare environment.
func LoadEnv(paths ...string) bool {
	if len(paths) == 0 {
		paths = defaultEnvPaths
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return true
		}
	}
	return false
}

// Get returns the environment value for key, or def when key is unset.
func Get(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// Require returns the environment value for key, or an error wrapping
// ErrMissing when key is unset. Callers should treat the error as a fatal
// misconfiguration rather than substituting a default.
func Require(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissing, key)
	}
	return v, nil
}
