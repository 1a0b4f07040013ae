// Package config composes configuration sources into a single store.
package config

import "github.com/halcyon-labs/emoscope-cli/internal/core/ports/driven"

// Ensure Chain implements the interface.
var _ driven.ConfigStore = (*Chain)(nil)

// Chain consults stores in order; the first store holding a key wins.
// Emoscope chains the environment ahead of the config file so that
// exported variables always take precedence.
type Chain struct {
	stores []driven.ConfigStore
}

// NewChain creates a chain over the given stores, highest precedence first.
func NewChain(stores ...driven.ConfigStore) *Chain {
	return &Chain{stores: stores}
}

// Get retrieves a configuration value from the first store holding the key.
func (c *Chain) Get(key string) (any, bool) {
	for _, s := range c.stores {
		if val, ok := s.Get(key); ok {
			return val, true
		}
	}
	return nil, false
}

// GetString retrieves a string value from the first store holding the key.
func (c *Chain) GetString(key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// Load reloads every store in the chain.
func (c *Chain) Load() error {
	for _, s := range c.stores {
		if err := s.Load(); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the first file-backed store's path.
func (c *Chain) Path() string {
	for _, s := range c.stores {
		if p := s.Path(); p != "" {
			return p
		}
	}
	return ""
}
