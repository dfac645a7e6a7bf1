package state

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/pagegen/internal/export"
	"github.com/JaimeStill/pagegen/internal/generation"
	"github.com/JaimeStill/pagegen/internal/landing"
	"github.com/JaimeStill/pagegen/pkg/handlers"
	"github.com/JaimeStill/pagegen/pkg/routes"
)

// ExportFilename is suggested to clients downloading an exported page.
const ExportFilename = "landing-page.html"

var errNoContent = errors.New("no content has been generated")

// Handler provides HTTP endpoints for the state container.
type Handler struct {
	store  *Store
	logger *slog.Logger
}

// GenerateResponse pairs a generation outcome with the state it produced.
type GenerateResponse struct {
	Result generation.Result `json:"result"`
	State  State             `json:"state"`
}

// StepRequest is the body of PUT /state/step.
type StepRequest struct {
	Step int `json:"step"`
}

// PreviewRequest is the body of PUT /preview.
type PreviewRequest struct {
	Mode string `json:"mode"`
}

// CustomSectionRequest is the body of POST /sections/custom.
type CustomSectionRequest struct {
	Description string `json:"description"`
}

// ShareResponse carries an encoded share payload.
type ShareResponse struct {
	Payload string `json:"payload"`
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger.With("handler", "state"),
	}
}

// Routes returns the route group definition for state endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/state", Handler: h.State},
			{Method: "DELETE", Pattern: "/state", Handler: h.Reset},
			{Method: "PUT", Pattern: "/state/step", Handler: h.SetStep},
			{Method: "PATCH", Pattern: "/form", Handler: h.UpdateForm},
			{Method: "PATCH", Pattern: "/theme", Handler: h.UpdateTheme},
			{Method: "PUT", Pattern: "/preview", Handler: h.SetPreview},
			{Method: "POST", Pattern: "/generate", Handler: h.Generate},
			{Method: "GET", Pattern: "/content", Handler: h.Content},
			{Method: "PUT", Pattern: "/content", Handler: h.Publish},
			{Method: "GET", Pattern: "/export", Handler: h.Export},
			{Method: "GET", Pattern: "/share", Handler: h.Share},
		},
		Children: []routes.Group{
			{
				Prefix: "/sections",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.Sections},
					{Method: "PUT", Pattern: "", Handler: h.UpdateSections},
					{Method: "POST", Pattern: "/custom", Handler: h.AddCustomSection},
				},
			},
		},
	}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.store.Snapshot())
}

// Reset restores the initial state and clears persisted data.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.store.Reset(r.Context()))
}

func (h *Handler) SetStep(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	if !h.decode(w, r, &req) {
		return
	}

	st, err := h.store.SetCurrentStep(req.Step)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, st)
}

// UpdateForm merges the submitted attributes into the accumulated form.
func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var overlay landing.FormAttributes
	if !h.decode(w, r, &overlay) {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.store.UpdateForm(r.Context(), overlay))
}

func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var overlay landing.ThemeConfig
	if !h.decode(w, r, &overlay) {
		return
	}

	st, err := h.store.UpdateTheme(r.Context(), overlay)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, st)
}

func (h *Handler) SetPreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	st, err := h.store.SetPreviewMode(req.Mode)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, st)
}

// Generate always answers 200: failures surface as a notice next to the
// fallback content.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	res := h.store.Generate(r.Context())
	handlers.RespondJSON(w, http.StatusOK, GenerateResponse{
		Result: res,
		State:  h.store.Snapshot(),
	})
}

func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	st := h.store.Snapshot()
	if st.Content == nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, errNoContent)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, st.Content)
}

// Publish replaces the content with an edited copy.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	var content landing.GeneratedContent
	if !h.decode(w, r, &content) {
		return
	}

	st, err := h.store.Publish(r.Context(), content)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, st)
}

func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	sections := h.store.Snapshot().Sections
	if sections == nil {
		sections = []landing.PageSection{}
	}
	handlers.RespondJSON(w, http.StatusOK, sections)
}

func (h *Handler) UpdateSections(w http.ResponseWriter, r *http.Request) {
	var sections []landing.PageSection
	if !h.decode(w, r, &sections) {
		return
	}

	st, err := h.store.UpdateSections(r.Context(), sections)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, st.Sections)
}

func (h *Handler) AddCustomSection(w http.ResponseWriter, r *http.Request) {
	var req CustomSectionRequest
	if !h.decode(w, r, &req) {
		return
	}

	section, err := h.store.AddCustomSection(r.Context(), req.Description)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, section)
}

// Export renders the current page. Styles and scripts default to included;
// ?download=true adds an attachment disposition.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := ExportOptions{
		IncludeStyles:  queryBool(q.Get("styles"), true),
		IncludeScripts: queryBool(q.Get("scripts"), true),
	}

	doc, err := h.store.Export(opts)
	if err != nil {
		handlers.RespondError(w, h.logger, export.MapHTTPStatus(err), err)
		return
	}

	if queryBool(q.Get("download"), false) {
		w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	}
	handlers.RespondHTML(w, http.StatusOK, doc)
}

func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	payload, err := h.store.Share()
	if err != nil {
		handlers.RespondError(w, h.logger, export.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ShareResponse{Payload: payload})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := handlers.DecodeJSON(r, v); err != nil {
		handlers.RespondError(w, h.logger, handlers.MapHTTPStatus(err), err)
		return false
	}
	return true
}

func queryBool(v string, def bool) bool {
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
