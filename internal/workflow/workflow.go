// Package workflow orchestrates the corpus pipeline as a state graph:
// segment acquired sources, link parallel texts, annotate, detect
// contradictions, then sample and export training artifacts.
package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// State keys shared across workflow nodes.
const (
	KeyRequest     = "request"
	KeyResult      = "result"
	KeySegmented   = "segmented"
	KeyHasParallel = "has_parallel"
)

// Request controls one pipeline run.
type Request struct {
	// Name is the artifact base name. Artifacts are written as
	// <name>-train.jsonl and <name>-val.jsonl.
	Name string `json:"name"`

	// Format is a supported training-record format. Empty selects the
	// configured default.
	Format string `json:"format"`

	// Tagger selects the annotation tagger. Empty selects assisted with
	// rule fallback.
	Tagger string `json:"tagger"`

	// TargetSize is the sampling target. Zero exports the whole
	// eligible pool.
	TargetSize int `json:"target_size"`

	// OversampleTier1Factor multiplies tier-1 selection weight.
	OversampleTier1Factor float64 `json:"oversample_tier1_factor"`

	// Seed overrides the configured sampling seed when non-zero.
	Seed int64 `json:"seed"`

	// IncludeSynthetic merges the built-in dialogue set into the
	// training artifact.
	IncludeSynthetic bool `json:"include_synthetic"`

	// IncludeNegatives merges the contrastive set into the training
	// artifact.
	IncludeNegatives bool `json:"include_negatives"`
}

// Result summarizes one pipeline run.
type Result struct {
	SourcesSegmented int       `json:"sources_segmented"`
	SourcesFailed    int       `json:"sources_failed"`
	SegmentsLinked   int       `json:"segments_linked"`
	Annotated        int       `json:"annotated"`
	Contradictions   int       `json:"contradictions"`
	Sampled          int       `json:"sampled"`
	TrainArtifact    string    `json:"train_artifact"`
	ValArtifact      string    `json:"val_artifact"`
	CompletedAt      time.Time `json:"completed_at"`
}

// Execute runs the full pipeline as a state graph and extracts the
// accumulated Result from the final state.
func Execute(ctx context.Context, rt *Runtime, req Request) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRequest, req)
	initialState = initialState.Set(KeyResult, Result{})

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("cantor-pipeline")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("segment", SegmentNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("link", LinkNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("annotate", AnnotateNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("contradict", ContradictionNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("export", ExportNode(rt)); err != nil {
		return nil, err
	}

	// segment → link (when any source declares a parallel group)
	if err := graph.AddEdge("segment", "link", hasParallel); err != nil {
		return nil, err
	}

	// segment → annotate (when no parallel groups exist)
	if err := graph.AddEdge("segment", "annotate", state.Not(hasParallel)); err != nil {
		return nil, err
	}

	// link → annotate (unconditional)
	if err := graph.AddEdge("link", "annotate", nil); err != nil {
		return nil, err
	}

	// annotate → contradict (unconditional)
	if err := graph.AddEdge("annotate", "contradict", nil); err != nil {
		return nil, err
	}

	// contradict → export (unconditional)
	if err := graph.AddEdge("contradict", "export", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("segment"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("export"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyResult)
	}

	result, ok := val.(Result)
	if !ok {
		return nil, fmt.Errorf("%s is not Result", KeyResult)
	}

	result.CompletedAt = time.Now()
	return &result, nil
}

func extractRequest(s state.State) (Request, error) {
	val, ok := s.Get(KeyRequest)
	if !ok {
		return Request{}, fmt.Errorf("missing %s in state", KeyRequest)
	}

	req, ok := val.(Request)
	if !ok {
		return Request{}, fmt.Errorf("%s is not Request", KeyRequest)
	}

	return req, nil
}

func currentResult(s state.State) Result {
	val, ok := s.Get(KeyResult)
	if !ok {
		return Result{}
	}

	result, ok := val.(Result)
	if !ok {
		return Result{}
	}

	return result
}

func hasParallel(s state.State) bool {
	val, ok := s.Get(KeyHasParallel)
	if !ok {
		return false
	}

	has, ok := val.(bool)
	return ok && has
}
