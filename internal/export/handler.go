package export

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/pagegen/pkg/handlers"
	"github.com/JaimeStill/pagegen/pkg/routes"
)

// Handler renders pages received as share payloads.
type Handler struct {
	exporter Exporter
	logger   *slog.Logger
}

func NewHandler(exporter Exporter, logger *slog.Logger) *Handler {
	return &Handler{
		exporter: exporter,
		logger:   logger.With("handler", "export"),
	}
}

// Routes returns the route group definition for shared page endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/shared",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{payload}", Handler: h.Shared},
		},
	}
}

// Shared decodes a share payload and renders it as a complete document.
func (h *Handler) Shared(w http.ResponseWriter, r *http.Request) {
	page, err := Decode(r.PathValue("payload"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	doc, err := h.exporter.Export(Input{
		Sections:       page.Sections,
		Theme:          page.Theme,
		Form:           page.Form,
		IncludeStyles:  true,
		IncludeScripts: true,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondHTML(w, http.StatusOK, doc)
}
