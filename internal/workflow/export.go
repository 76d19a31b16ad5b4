package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/sampler"
	"github.com/avolkmann/cantor/internal/segments"
	"github.com/avolkmann/cantor/internal/synthetic"
)

// ExportNode returns a state node that samples the annotated corpus,
// splits it into train and validation sets, merges the synthetic and
// contrastive streams, and writes the JSONL artifacts. A sampling
// failure aborts the run: an undersized training set must never be
// mistaken for a complete one.
func ExportNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("export: %w", err)
		}

		name := req.Name
		if name == "" {
			name = "cantor"
		}

		format := req.Format
		if format == "" {
			format = rt.Pipeline.DefaultFormat
		}

		seed := req.Seed
		if seed == 0 {
			seed = rt.Pipeline.Seed
		}

		segs, err := rt.Segments.ListAll(ctx)
		if err != nil {
			return s, fmt.Errorf("export: list segments: %w", err)
		}

		target := req.TargetSize
		if target <= 0 {
			target = len(segs)
		}

		selection, err := sampler.Sample(segs, sampler.Request{
			TargetSize:            target,
			OversampleTier1Factor: req.OversampleTier1Factor,
			Seed:                  seed,
		})
		if err != nil {
			return s, fmt.Errorf("export: %w", err)
		}

		train, val := sampler.Split(selection.Segments, rt.Pipeline.TrainRatio, seed)

		anns, err := rt.Annotations.ListAll(ctx)
		if err != nil {
			return s, fmt.Errorf("export: list annotations: %w", err)
		}

		bySegment := make(map[uuid.UUID]*annotations.Annotation, len(anns))
		for i := range anns {
			bySegment[anns[i].SegmentID] = &anns[i]
		}

		var extra []export.TrainingRecord
		if req.IncludeSynthetic {
			extra = append(extra, synthetic.DialogueRecords()...)
		}
		if req.IncludeNegatives {
			extra = append(extra, synthetic.NegativeRecords()...)
		}

		trainKey, err := rt.Export.Write(ctx, name+"-train", format, items(train, bySegment), extra)
		if err != nil {
			return s, fmt.Errorf("export: write train artifact: %w", err)
		}

		valKey, err := rt.Export.Write(ctx, name+"-val", format, items(val, bySegment), nil)
		if err != nil {
			return s, fmt.Errorf("export: write val artifact: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "export node complete",
			"sampled", len(selection.Segments),
			"train", trainKey,
			"val", valKey,
		)

		result := currentResult(s)
		result.Sampled = len(selection.Segments)
		result.TrainArtifact = trainKey
		result.ValArtifact = valKey

		s = s.Set(KeyResult, result)
		return s, nil
	})
}

func items(
	segs []segments.Segment,
	bySegment map[uuid.UUID]*annotations.Annotation,
) []export.Item {
	result := make([]export.Item, len(segs))
	for i, seg := range segs {
		result[i] = export.Item{
			Segment:    seg,
			Annotation: bySegment[seg.ID],
		}
	}
	return result
}
