package config

import (
	"fmt"
	"os"
	"slices"
)

const EnvPersistenceBackend = "PAGEGEN_PERSISTENCE_BACKEND"

// Persistence backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendBlob     = "blob"
)

var backends = []string{BackendMemory, BackendPostgres, BackendBlob}

// PersistenceConfig selects where the application state is saved.
type PersistenceConfig struct {
	Backend string `toml:"backend"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PersistenceConfig) Finalize() error {
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	if v := os.Getenv(EnvPersistenceBackend); v != "" {
		c.Backend = v
	}
	if !slices.Contains(backends, c.Backend) {
		return fmt.Errorf("invalid backend %q: expected one of %v", c.Backend, backends)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *PersistenceConfig) Merge(overlay *PersistenceConfig) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
}
