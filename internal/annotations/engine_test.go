package annotations

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/internal/segments"
)

type stubTagger struct {
	name   string
	result *TagResult
	err    error
}

func (s *stubTagger) Name() string { return s.name }

func (s *stubTagger) Tag(_ context.Context, _ string) (*TagResult, error) {
	return s.result, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSegment(tier int) segments.Segment {
	return segments.Segment{
		ID:      uuid.New(),
		Content: "Die Mächtigkeit des Kontinuums.",
		Tier:    tier,
	}
}

func TestEngineAssistedFallsBackToRule(t *testing.T) {
	assisted := &stubTagger{name: TaggerAssisted, err: errors.New("backend down")}
	rule := &stubTagger{
		name: TaggerRule,
		result: &TagResult{
			Scores:     map[string]float64{DimMathematicalIntuition: 0.4},
			Confidence: 1.0,
		},
	}
	engine := NewEngine(assisted, rule, discardLogger())

	ann, err := engine.Annotate(context.Background(), testSegment(1), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ann.Tagger != TaggerRule {
		t.Errorf("got tagger %q, want %q", ann.Tagger, TaggerRule)
	}
	if ann.Scores[DimMathematicalIntuition] != 0.4 {
		t.Errorf("rule result not carried through: %v", ann.Scores)
	}
}

func TestEngineConfidenceCeiling(t *testing.T) {
	tests := []struct {
		tier int
		want float64
	}{
		{1, 0.95},
		{4, 0.65},
		{7, 0.15},
		{8, 0.00},
	}

	for _, tt := range tests {
		assisted := &stubTagger{
			name:   TaggerAssisted,
			result: &TagResult{Confidence: 1.0},
		}
		engine := NewEngine(assisted, NewRuleTagger(), discardLogger())

		ann, err := engine.Annotate(context.Background(), testSegment(tt.tier), TaggerAssisted)
		if err != nil {
			t.Fatalf("tier %d: unexpected error: %v", tt.tier, err)
		}
		if ann.Confidence != tt.want {
			t.Errorf("tier %d: got confidence %v, want %v", tt.tier, ann.Confidence, tt.want)
		}
	}
}

func TestEngineConfidenceBelowCeilingKept(t *testing.T) {
	assisted := &stubTagger{
		name:   TaggerAssisted,
		result: &TagResult{Confidence: 0.3},
	}
	engine := NewEngine(assisted, NewRuleTagger(), discardLogger())

	ann, err := engine.Annotate(context.Background(), testSegment(1), TaggerAssisted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ann.Confidence != 0.3 {
		t.Errorf("got confidence %v, want 0.3", ann.Confidence)
	}
}

func TestEngineRuleDirect(t *testing.T) {
	assisted := &stubTagger{name: TaggerAssisted, err: errors.New("must not be called")}
	engine := NewEngine(assisted, NewRuleTagger(), discardLogger())

	ann, err := engine.Annotate(context.Background(), testSegment(2), TaggerRule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ann.Tagger != TaggerRule {
		t.Errorf("got tagger %q, want %q", ann.Tagger, TaggerRule)
	}
}

func TestEngineUnknownTagger(t *testing.T) {
	engine := NewEngine(NewRuleTagger(), NewRuleTagger(), discardLogger())

	if _, err := engine.Annotate(context.Background(), testSegment(1), "oracle"); !errors.Is(err, ErrUnknownTagger) {
		t.Errorf("got %v, want ErrUnknownTagger", err)
	}
}

func TestEngineInvalidTier(t *testing.T) {
	engine := NewEngine(NewRuleTagger(), NewRuleTagger(), discardLogger())

	if _, err := engine.Annotate(context.Background(), testSegment(0), TaggerRule); err == nil {
		t.Error("expected error for tier 0")
	}
}
