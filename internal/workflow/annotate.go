package workflow

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// AnnotateNode returns a state node that annotates every segment in the
// corpus. Assisted tagging suspends on model calls, so segments are
// processed by a bounded worker pool; each annotation write is atomic,
// so cancellation between segments retains completed work.
func AnnotateNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("annotate: %w", err)
		}

		segs, err := rt.Segments.ListAll(ctx)
		if err != nil {
			return s, fmt.Errorf("annotate: list segments: %w", err)
		}

		engine := rt.Engine()

		var annotated atomic.Int64

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(rt.Pipeline.AnnotateConcurrency)

		for _, seg := range segs {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				ann, err := engine.Annotate(gctx, seg, req.Tagger)
				if err != nil {
					rt.Logger.WarnContext(
						gctx, "segment annotation failed",
						"segment_id", seg.ID,
						"source", seg.SourceSlug,
						"error", err,
					)
					return nil
				}

				if _, err := rt.Annotations.Upsert(gctx, ann); err != nil {
					rt.Logger.WarnContext(
						gctx, "annotation write failed",
						"segment_id", seg.ID,
						"error", err,
					)
					return nil
				}

				annotated.Add(1)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return s, fmt.Errorf("annotate: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "annotate node complete",
			"annotated", annotated.Load(),
			"total", len(segs),
		)

		result := currentResult(s)
		result.Annotated = int(annotated.Load())

		s = s.Set(KeyResult, result)
		return s, nil
	})
}
