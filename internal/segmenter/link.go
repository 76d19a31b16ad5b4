package segmenter

import "github.com/avolkmann/cantor/internal/segments"

// MatchParallel pairs segments from different-language sources within a
// parallel group by structural position: letters match on segment date,
// everything else on ordering. Matching is best-effort; unmatched segments
// simply produce no pair.
func MatchParallel(group []segments.Segment) [][2]segments.Segment {
	var pairs [][2]segments.Segment

	for i := range group {
		for j := i + 1; j < len(group); j++ {
			a, b := group[i], group[j]

			if a.SourceID == b.SourceID || a.Language == b.Language {
				continue
			}

			if structurallyAligned(a, b) {
				pairs = append(pairs, [2]segments.Segment{a, b})
			}
		}
	}

	return pairs
}

func structurallyAligned(a, b segments.Segment) bool {
	if a.Kind != b.Kind {
		return false
	}

	if a.Kind == segments.KindLetter {
		return a.SegmentDate != "" && a.SegmentDate == b.SegmentDate
	}

	if a.Number != nil && b.Number != nil {
		return *a.Number == *b.Number
	}

	return a.Ordering == b.Ordering
}
