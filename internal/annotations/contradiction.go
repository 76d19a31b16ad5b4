package annotations

import (
	"fmt"

	"github.com/avolkmann/cantor/internal/segments"
)

// Annotated pairs a segment with its annotation for cross-segment analysis.
type Annotated struct {
	Segment    segments.Segment
	Annotation *Annotation
}

// FlagContradictions marks annotation pairs that discuss a shared topic
// but diverge on a dimension score by at least threshold. Both sides are
// flagged with a reference to the opposing segment and a note naming
// which side carries the more authoritative tier. Returns the number of
// flagged pairs.
func FlagContradictions(items []Annotated, threshold float64) int {
	flagged := 0
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if dim, ok := contradicts(items[i], items[j], threshold); ok {
				flag(items[i], items[j], dim)
				flagged++
			}
		}
	}
	return flagged
}

func contradicts(a, b Annotated, threshold float64) (string, bool) {
	if a.Segment.SourceID == b.Segment.SourceID {
		return "", false
	}
	if !sharesTopic(a.Annotation, b.Annotation) {
		return "", false
	}

	for _, dim := range Dimensions {
		diff := a.Annotation.Score(dim) - b.Annotation.Score(dim)
		if diff < 0 {
			diff = -diff
		}
		if diff >= threshold {
			return dim, true
		}
	}
	return "", false
}

func sharesTopic(a, b *Annotation) bool {
	for _, topic := range a.Topics {
		if b.HasTopic(topic) {
			return true
		}
	}
	return false
}

func flag(a, b Annotated, dim string) {
	authoritative := a
	if b.Segment.Tier < a.Segment.Tier {
		authoritative = b
	}

	note := fmt.Sprintf(
		"diverges on %s; tier %d source %s is authoritative",
		dim, authoritative.Segment.Tier, authoritative.Segment.SourceSlug,
	)

	refA := b.Segment.ID
	a.Annotation.ContradictionRef = &refA
	a.Annotation.ContradictionNote = note

	refB := a.Segment.ID
	b.Annotation.ContradictionRef = &refB
	b.Annotation.ContradictionNote = note
}
