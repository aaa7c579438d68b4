// Package config loads the settings askagent needs at startup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeyEnvVar names the variable holding the Gemini API key.
const APIKeyEnvVar = "GEMINI_API_KEY"

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// ErrMissingAPIKey is returned by Load when no API key is configured.
var ErrMissingAPIKey = errors.New(APIKeyEnvVar + " environment variable not set")

// Config is the configuration for one invocation. It is read-only once
// loaded.
type Config struct {
	APIKey string
}

type loadOptions struct {
	envFiles  []string
	lookupEnv func(string) (string, bool)
}

// Option configures Load.
type Option func(*loadOptions)

// WithEnvFiles replaces the list of .env-style files consulted by Load.
// Files that do not exist are skipped.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) {
		o.envFiles = files
	}
}

// WithLookupEnv replaces os.LookupEnv as the source of process variables.
func WithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(o *loadOptions) {
		o.lookupEnv = lookupEnv
	}
}

// Load builds a Config from the process environment, falling back to the
// configured .env files. Process variables always take precedence over file
// values, and the process environment is never modified.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{
		envFiles:  []string{DefaultEnvFile},
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(&o)
	}

	fileEnv, err := readEnvFiles(o.envFiles)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) string {
		if value, ok := o.lookupEnv(key); ok {
			return value
		}
		return fileEnv[key]
	}

	cfg := &Config{
		APIKey: strings.TrimSpace(lookup(APIKeyEnvVar)),
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

// readEnvFiles merges the given files. Earlier files win, matching
// godotenv.Load.
func readEnvFiles(files []string) (map[string]string, error) {
	env := map[string]string{}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error reading env file %s: %w", file, err)
		}
		for key, value := range values {
			if _, ok := env[key]; !ok {
				env[key] = value
			}
		}
	}
	return env, nil
}
