package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/segments"
)

// ContradictionNode returns a state node that flags annotation pairs
// diverging on a shared topic beyond the configured threshold. Flags
// are persisted; resolution stays with downstream consumers via tier
// comparison.
func ContradictionNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		segs, err := rt.Segments.ListAll(ctx)
		if err != nil {
			return s, fmt.Errorf("contradict: list segments: %w", err)
		}

		anns, err := rt.Annotations.ListAll(ctx)
		if err != nil {
			return s, fmt.Errorf("contradict: list annotations: %w", err)
		}

		bySegment := make(map[uuid.UUID]segments.Segment, len(segs))
		for _, seg := range segs {
			bySegment[seg.ID] = seg
		}

		items := make([]annotations.Annotated, 0, len(anns))
		for i := range anns {
			seg, ok := bySegment[anns[i].SegmentID]
			if !ok {
				continue
			}
			items = append(items, annotations.Annotated{
				Segment:    seg,
				Annotation: &anns[i],
			})
		}

		flagged := annotations.FlagContradictions(items, rt.Pipeline.DivergenceThreshold)

		if flagged > 0 {
			var dirty []*annotations.Annotation
			for _, item := range items {
				if item.Annotation.ContradictionRef != nil {
					dirty = append(dirty, item.Annotation)
				}
			}

			if err := rt.Annotations.UpsertMany(ctx, dirty); err != nil {
				return s, fmt.Errorf("contradict: persist flags: %w", err)
			}
		}

		rt.Logger.InfoContext(ctx, "contradiction node complete", "flagged_pairs", flagged)

		result := currentResult(s)
		result.Contradictions = flagged

		s = s.Set(KeyResult, result)
		return s, nil
	})
}
