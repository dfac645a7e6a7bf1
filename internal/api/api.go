// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/pagegen/internal/config"
	"github.com/JaimeStill/pagegen/internal/infrastructure"
	"github.com/JaimeStill/pagegen/pkg/middleware"
	"github.com/JaimeStill/pagegen/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// It registers a startup hook that hydrates the state container from the
// persistence backend.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	lc := runtime.Lifecycle
	lc.OnStartup(func() error {
		return domain.State.Hydrate(lc.Context())
	})

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.BodyLimit(runtime.MaxBodySize))

	return m, nil
}
