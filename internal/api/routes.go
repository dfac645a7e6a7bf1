package api

import (
	"net/http"

	"github.com/JaimeStill/pagegen/internal/completion"
	"github.com/JaimeStill/pagegen/internal/export"
	"github.com/JaimeStill/pagegen/internal/state"
	"github.com/JaimeStill/pagegen/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	groups := []routes.Group{
		state.NewHandler(domain.State, runtime.Logger).Routes(),
		export.NewHandler(domain.Exporter, runtime.Logger).Routes(),
		completion.NewHandler(runtime.Completion, runtime.Model, runtime.Logger).Routes(),
	}

	routes.Register(mux, groups...)
	runtime.Logger.Debug("routes registered", "patterns", routes.Patterns(groups...))
}
