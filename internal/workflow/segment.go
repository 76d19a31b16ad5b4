package workflow

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/segmenter"
)

// SegmentNode returns a state node that segments every acquired source
// with extracted text. Each source is processed independently; a source
// that fails to segment is logged and counted, never aborting the rest
// of the batch.
func SegmentNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		sources, err := rt.Catalog.ListByStatus(ctx, catalog.StatusAcquired)
		if err != nil {
			return s, fmt.Errorf("segment: list acquired sources: %w", err)
		}

		var segmented, failed atomic.Int64

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workerCount(len(sources)))

		for _, src := range sources {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				if err := segmentSource(gctx, rt, src); err != nil {
					failed.Add(1)
					rt.Logger.WarnContext(
						gctx, "source segmentation failed",
						"source_id", src.ID,
						"slug", src.Slug,
						"error", err,
					)
					return nil
				}

				segmented.Add(1)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return s, fmt.Errorf("segment: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "segment node complete",
			"segmented", segmented.Load(),
			"failed", failed.Load(),
		)

		result := currentResult(s)
		result.SourcesSegmented = int(segmented.Load())
		result.SourcesFailed = int(failed.Load())

		s = s.Set(KeyResult, result)
		s = s.Set(KeyHasParallel, anyParallel(sources))
		return s, nil
	})
}

func segmentSource(ctx context.Context, rt *Runtime, src catalog.Source) error {
	text, err := rt.Catalog.Text(ctx, src.ID)
	if err != nil {
		return fmt.Errorf("load extracted text: %w", err)
	}

	drafts, err := segmenter.Segment(src, text)
	if err != nil {
		return err
	}

	if _, err := rt.Segments.Replace(ctx, src.ID, drafts); err != nil {
		return fmt.Errorf("replace segments: %w", err)
	}

	return nil
}

func anyParallel(sources []catalog.Source) bool {
	for _, src := range sources {
		if src.ParallelGroup != nil && *src.ParallelGroup != "" {
			return true
		}
	}
	return false
}

func workerCount(n int) int {
	return max(min(runtime.NumCPU(), n), 1)
}
