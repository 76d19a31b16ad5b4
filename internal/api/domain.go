package api

import (
	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/segments"
	"github.com/avolkmann/cantor/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Catalog     catalog.System
	Segments    segments.System
	Annotations annotations.System
	Export      export.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	catalogSystem := catalog.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	segmentsSystem := segments.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	annotationsSystem := annotations.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	exportSystem := export.New(
		runtime.Storage,
		runtime.Logger,
	)

	return &Domain{
		Catalog:     catalogSystem,
		Segments:    segmentsSystem,
		Annotations: annotationsSystem,
		Export:      exportSystem,
	}
}

// WorkflowRuntime builds the pipeline runtime from the assembled domain systems.
func (d *Domain) WorkflowRuntime(runtime *Runtime) *workflow.Runtime {
	return &workflow.Runtime{
		Agent:       runtime.Agent,
		Pipeline:    runtime.Pipeline,
		Catalog:     d.Catalog,
		Segments:    d.Segments,
		Annotations: d.Annotations,
		Export:      d.Export,
		Logger:      runtime.Logger.With("module", "workflow"),
	}
}
