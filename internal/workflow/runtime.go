package workflow

import (
	"log/slog"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/config"
	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/segments"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Agent       gaconfig.AgentConfig
	Pipeline    config.PipelineConfig
	Catalog     catalog.System
	Segments    segments.System
	Annotations annotations.System
	Export      export.System
	Logger      *slog.Logger
}

// Engine builds the annotation engine from the runtime's tagger configuration.
func (rt *Runtime) Engine() *annotations.Engine {
	return annotations.NewEngine(
		annotations.NewAssistedTagger(rt.Agent),
		annotations.NewRuleTagger(),
		rt.Logger,
	)
}
