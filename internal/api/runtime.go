package api

import (
	"github.com/JaimeStill/pagegen/internal/config"
	"github.com/JaimeStill/pagegen/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Model       string
	MaxBodySize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &scoped,
		Model:          cfg.Completion.Model,
		MaxBodySize:    cfg.API.MaxBodySizeBytes(),
	}
}
