package annotations

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/internal/segments"
)

func annotated(tier int, slug string, topics []string, score float64) Annotated {
	return Annotated{
		Segment: segments.Segment{
			ID:         uuid.New(),
			SourceID:   uuid.New(),
			SourceSlug: slug,
			Tier:       tier,
		},
		Annotation: &Annotation{
			Scores: map[string]float64{DimKroneckerConflict: score},
			Topics: topics,
		},
	}
}

func TestFlagContradictionsDivergentPair(t *testing.T) {
	a := annotated(2, "schoenflies-1927", []string{"set_theory"}, 0.9)
	b := annotated(6, "bell-1937", []string{"set_theory"}, 0.1)

	flagged := FlagContradictions([]Annotated{a, b}, 0.4)
	if flagged != 1 {
		t.Fatalf("got %d flagged pairs, want 1", flagged)
	}

	if a.Annotation.ContradictionRef == nil || *a.Annotation.ContradictionRef != b.Segment.ID {
		t.Error("first annotation does not reference its opponent")
	}
	if b.Annotation.ContradictionRef == nil || *b.Annotation.ContradictionRef != a.Segment.ID {
		t.Error("second annotation does not reference its opponent")
	}

	for _, note := range []string{a.Annotation.ContradictionNote, b.Annotation.ContradictionNote} {
		if !strings.Contains(note, "schoenflies-1927") {
			t.Errorf("note %q does not name the authoritative source", note)
		}
		if !strings.Contains(note, DimKroneckerConflict) {
			t.Errorf("note %q does not name the diverging dimension", note)
		}
	}
}

func TestFlagContradictionsRequiresSharedTopic(t *testing.T) {
	a := annotated(2, "source-a", []string{"set_theory"}, 0.9)
	b := annotated(6, "source-b", []string{"topology"}, 0.1)

	if flagged := FlagContradictions([]Annotated{a, b}, 0.4); flagged != 0 {
		t.Errorf("got %d flagged pairs, want 0", flagged)
	}
	if a.Annotation.ContradictionRef != nil {
		t.Error("annotation flagged without a shared topic")
	}
}

func TestFlagContradictionsSameSourceIgnored(t *testing.T) {
	a := annotated(2, "source-a", []string{"set_theory"}, 0.9)
	b := annotated(2, "source-a", []string{"set_theory"}, 0.1)
	b.Segment.SourceID = a.Segment.SourceID

	if flagged := FlagContradictions([]Annotated{a, b}, 0.4); flagged != 0 {
		t.Errorf("got %d flagged pairs, want 0", flagged)
	}
}

func TestFlagContradictionsBelowThreshold(t *testing.T) {
	a := annotated(2, "source-a", []string{"set_theory"}, 0.5)
	b := annotated(6, "source-b", []string{"set_theory"}, 0.3)

	if flagged := FlagContradictions([]Annotated{a, b}, 0.4); flagged != 0 {
		t.Errorf("got %d flagged pairs, want 0", flagged)
	}
}
