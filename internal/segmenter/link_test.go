package segmenter_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/internal/segmenter"
	"github.com/avolkmann/cantor/internal/segments"
)

func parallelSegment(source uuid.UUID, kind, language, date string, ordering int) segments.Segment {
	return segments.Segment{
		ID:          uuid.New(),
		SourceID:    source,
		Kind:        kind,
		Language:    language,
		SegmentDate: date,
		Ordering:    ordering,
	}
}

func TestMatchParallelLettersByDate(t *testing.T) {
	german := uuid.New()
	english := uuid.New()

	group := []segments.Segment{
		parallelSegment(german, segments.KindLetter, "de", "den 5. November 1882", 0),
		parallelSegment(german, segments.KindLetter, "de", "den 12. Dezember 1882", 1),
		parallelSegment(english, segments.KindLetter, "en", "den 5. November 1882", 0),
	}

	pairs := segmenter.MatchParallel(group)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0][0].ID != group[0].ID || pairs[0][1].ID != group[2].ID {
		t.Error("wrong letters paired")
	}
}

func TestMatchParallelSectionsByNumber(t *testing.T) {
	german := uuid.New()
	english := uuid.New()
	one, two := "1", "2"

	a := parallelSegment(german, segments.KindSection, "de", "", 0)
	a.Number = &two
	b := parallelSegment(english, segments.KindSection, "en", "", 5)
	b.Number = &two
	c := parallelSegment(english, segments.KindSection, "en", "", 0)
	c.Number = &one

	pairs := segmenter.MatchParallel([]segments.Segment{a, b, c})
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1", len(pairs))
	}
	if pairs[0][0].ID != a.ID || pairs[0][1].ID != b.ID {
		t.Error("sections with matching numbers not paired")
	}
}

func TestMatchParallelOrderingFallback(t *testing.T) {
	german := uuid.New()
	english := uuid.New()

	group := []segments.Segment{
		parallelSegment(german, segments.KindSection, "de", "", 0),
		parallelSegment(german, segments.KindSection, "de", "", 1),
		parallelSegment(english, segments.KindSection, "en", "", 0),
		parallelSegment(english, segments.KindSection, "en", "", 1),
	}

	pairs := segmenter.MatchParallel(group)
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
}

func TestMatchParallelSkipsSameLanguage(t *testing.T) {
	group := []segments.Segment{
		parallelSegment(uuid.New(), segments.KindSection, "de", "", 0),
		parallelSegment(uuid.New(), segments.KindSection, "de", "", 0),
	}

	if pairs := segmenter.MatchParallel(group); len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0 for same-language sources", len(pairs))
	}
}

func TestMatchParallelSkipsMixedKinds(t *testing.T) {
	group := []segments.Segment{
		parallelSegment(uuid.New(), segments.KindLetter, "de", "", 0),
		parallelSegment(uuid.New(), segments.KindSection, "en", "", 0),
	}

	if pairs := segmenter.MatchParallel(group); len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0 for mixed kinds", len(pairs))
	}
}
