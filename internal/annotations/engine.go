package annotations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/segments"
)

// Engine runs taggers against segments and applies the tier confidence
// ceiling. When the assisted tagger fails it falls back to the rule
// tagger rather than leaving the segment unannotated.
type Engine struct {
	assisted Tagger
	rule     Tagger
	logger   *slog.Logger
}

func NewEngine(assisted, rule Tagger, logger *slog.Logger) *Engine {
	return &Engine{
		assisted: assisted,
		rule:     rule,
		logger:   logger,
	}
}

// Annotate tags one segment with the named tagger. An empty name or
// TaggerAssisted selects the assisted tagger with rule fallback;
// TaggerRule selects the rule tagger directly.
func (e *Engine) Annotate(ctx context.Context, seg segments.Segment, tagger string) (*Annotation, error) {
	result, name, err := e.run(ctx, seg, tagger)
	if err != nil {
		return nil, err
	}

	ceiling, err := catalog.ConfidenceForTier(seg.Tier)
	if err != nil {
		return nil, err
	}

	confidence := result.Confidence
	if confidence > ceiling {
		confidence = ceiling
	}

	return &Annotation{
		SegmentID:  seg.ID,
		Scores:     result.Scores,
		Subtags:    result.Subtags,
		Topics:     result.Topics,
		PsychState: result.PsychState,
		Confidence: confidence,
		Tagger:     name,
		Notes:      result.Notes,
	}, nil
}

func (e *Engine) run(ctx context.Context, seg segments.Segment, tagger string) (*TagResult, string, error) {
	switch tagger {
	case "", TaggerAssisted:
		result, err := e.assisted.Tag(ctx, seg.Content)
		if err == nil {
			return result, e.assisted.Name(), nil
		}

		e.logger.WarnContext(
			ctx, "assisted tagger failed, falling back to rule tagger",
			"segment_id", seg.ID,
			"error", err,
		)

		result, err = e.rule.Tag(ctx, seg.Content)
		if err != nil {
			return nil, "", fmt.Errorf("rule fallback: %w", err)
		}
		return result, e.rule.Name(), nil
	case TaggerRule:
		result, err := e.rule.Tag(ctx, seg.Content)
		if err != nil {
			return nil, "", err
		}
		return result, e.rule.Name(), nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownTagger, tagger)
	}
}
