package export

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/avolkmann/cantor/pkg/handlers"
	"github.com/avolkmann/cantor/pkg/routes"
)

// Handler provides HTTP endpoints for export artifact access.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "export"),
	}
}

// Routes returns the route group definition for export endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/exports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Artifacts},
			{Method: "GET", Pattern: "/{name}", Handler: h.Download},
		},
	}
}

// Artifacts returns the keys of previously written export artifacts.
func (h *Handler) Artifacts(w http.ResponseWriter, r *http.Request) {
	keys, err := h.sys.Artifacts(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, keys)
}

// Download streams a previously written artifact by name.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	reader, err := h.sys.Open(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/jsonl")
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("artifact stream failed", "error", err)
	}
}
