package completion

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/JaimeStill/pagegen/pkg/handlers"
	"github.com/JaimeStill/pagegen/pkg/routes"
)

// Status reports the completion boundary's availability and, when
// requested, the outcome of a connectivity probe.
type Status struct {
	Available bool   `json:"available"`
	Model     string `json:"model"`
	Probed    bool   `json:"probed"`
	Reachable bool   `json:"reachable"`
	Latency   string `json:"latency,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Handler exposes the completion status endpoint.
type Handler struct {
	client Client
	model  string
	logger *slog.Logger
}

func NewHandler(client Client, model string, logger *slog.Logger) *Handler {
	return &Handler{
		client: client,
		model:  model,
		logger: logger.With("handler", "completion"),
	}
}

// Routes returns the route group definition for completion endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/completion",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Status},
		},
	}
}

// Status reports availability. With ?probe=true it also sends ProbePrompt;
// a failed probe is reported in the body, not as an error status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status := Status{
		Available: h.client.Available(),
		Model:     h.model,
	}

	if probe, _ := strconv.ParseBool(r.URL.Query().Get("probe")); probe {
		status.Probed = true

		start := time.Now()
		err := h.client.Probe(r.Context())
		status.Latency = time.Since(start).String()

		if err != nil {
			h.logger.Warn("completion probe failed", "error", err)
			status.Error = err.Error()
		} else {
			status.Reachable = true
		}
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}
