package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/sampler"
	"github.com/avolkmann/cantor/internal/workflow"
	"github.com/avolkmann/cantor/pkg/handlers"
	"github.com/avolkmann/cantor/pkg/routes"
)

var errInvalidPipelineRequest = errors.New("invalid pipeline request")

type pipelineHandler struct {
	runtime *workflow.Runtime
	logger  *slog.Logger
}

func newPipelineHandler(runtime *workflow.Runtime, logger *slog.Logger) *pipelineHandler {
	return &pipelineHandler{
		runtime: runtime,
		logger:  logger.With("handler", "pipeline"),
	}
}

func (h *pipelineHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/pipeline",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/run", Handler: h.run},
			{Method: "POST", Pattern: "/sample", Handler: h.sample},
		},
	}
}

// run executes the full pipeline synchronously and returns the run summary.
func (h *pipelineHandler) run(w http.ResponseWriter, r *http.Request) {
	var req workflow.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidPipelineRequest)
		return
	}

	if req.Format != "" && !export.ValidFormat(req.Format) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, export.ErrInvalidFormat)
		return
	}

	result, err := workflow.Execute(r.Context(), h.runtime, req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sampler.ErrInsufficientCorpus) {
			status = http.StatusConflict
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// sample previews a sampling pass over the current corpus without writing artifacts.
func (h *pipelineHandler) sample(w http.ResponseWriter, r *http.Request) {
	var req sampler.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidPipelineRequest)
		return
	}

	if req.Seed == 0 {
		req.Seed = h.runtime.Pipeline.Seed
	}

	segs, err := h.runtime.Segments.ListAll(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	if req.TargetSize <= 0 {
		req.TargetSize = len(segs)
	}

	selection, err := sampler.Sample(segs, req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sampler.ErrInsufficientCorpus) {
			status = http.StatusConflict
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, selection)
}
