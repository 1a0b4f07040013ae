// Package env provides an environment-backed implementation of the
// ConfigStore port. It maps well-known config keys onto the environment
// variables users actually set.
package env

import (
	"os"

	"github.com/halcyon-labs/emoscope-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Environment variables recognised by emoscope.
const (
	VarAPIURL = "IBM_NLU_API_URL"
	VarAPIKey = "IBM_NLU_API_KEY"
)

// ConfigStore resolves configuration keys from the process environment.
// Only mapped keys resolve; a variable that is set but empty counts as
// unset so that the next store in a chain can supply the value.
type ConfigStore struct {
	vars map[string]string
}

// NewConfigStore creates a config store over the process environment.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		vars: map[string]string{
			"watson.api_url": VarAPIURL,
			"watson.api_key": VarAPIKey,
		},
	}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	name, ok := s.vars[key]
	if !ok {
		return nil, false
	}

	val := os.Getenv(name)
	if val == "" {
		return nil, false
	}
	return val, true
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// Load is a no-op; the environment is always live.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns empty; the environment is not file-backed.
func (s *ConfigStore) Path() string {
	return ""
}
