package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/segmenter"
)

// LinkNode returns a state node that matches structurally aligned
// segments across sources sharing a parallel group and records the
// symmetric links. Linking is idempotent, so re-running the pipeline
// never duplicates relations.
func LinkNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		sources, err := rt.Catalog.ListByStatus(ctx, catalog.StatusAcquired)
		if err != nil {
			return s, fmt.Errorf("link: list acquired sources: %w", err)
		}

		linked := 0
		for _, group := range parallelGroups(sources) {
			segs, err := rt.Segments.ListByParallelGroup(ctx, group)
			if err != nil {
				return s, fmt.Errorf("link: load group %s: %w", group, err)
			}

			for _, pair := range segmenter.MatchParallel(segs) {
				if err := rt.Segments.LinkParallel(ctx, pair[0].ID, pair[1].ID); err != nil {
					return s, fmt.Errorf("link: group %s: %w", group, err)
				}
				linked++
			}
		}

		rt.Logger.InfoContext(ctx, "link node complete", "linked", linked)

		result := currentResult(s)
		result.SegmentsLinked = linked

		s = s.Set(KeyResult, result)
		return s, nil
	})
}

func parallelGroups(sources []catalog.Source) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, src := range sources {
		if src.ParallelGroup == nil || *src.ParallelGroup == "" {
			continue
		}
		if !seen[*src.ParallelGroup] {
			seen[*src.ParallelGroup] = true
			groups = append(groups, *src.ParallelGroup)
		}
	}
	return groups
}
