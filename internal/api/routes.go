package api

import (
	"net/http"

	"github.com/avolkmann/cantor/internal/config"
	"github.com/avolkmann/cantor/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Catalog.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)

	routes.Register(
		mux,
		domain.Segments.Handler().Routes(),
	)

	routes.Register(
		mux,
		domain.Annotations.Handler().Routes(),
	)

	routes.Register(
		mux,
		domain.Export.Handler().Routes(),
	)

	pipeline := newPipelineHandler(
		domain.WorkflowRuntime(runtime),
		runtime.Logger,
	)

	routes.Register(mux, pipeline.routes())
}
