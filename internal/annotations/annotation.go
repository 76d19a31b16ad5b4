package annotations

import (
	"time"

	"github.com/google/uuid"
)

// Tagger names recorded on annotations.
const (
	TaggerRule     = "rule"
	TaggerAssisted = "assisted"
)

// Annotation is the current labeling of one segment. Re-annotation
// replaces it atomically. Scores are continuous strengths in [0, 1]
// per dimension; absent dimensions score zero. Confidence never exceeds
// the owning source's tier ceiling.
type Annotation struct {
	ID                uuid.UUID            `json:"id"`
	SegmentID         uuid.UUID            `json:"segment_id"`
	Scores            map[string]float64   `json:"scores"`
	Subtags           map[string][]string  `json:"subtags"`
	Topics            []string             `json:"topics"`
	PsychState        string               `json:"psych_state,omitempty"`
	Confidence        float64              `json:"confidence"`
	Tagger            string               `json:"tagger"`
	ContradictionRef  *uuid.UUID           `json:"contradiction_ref,omitempty"`
	ContradictionNote string               `json:"contradiction_note,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// Score returns the strength for a dimension, zero when absent.
func (a *Annotation) Score(dimension string) float64 {
	return a.Scores[dimension]
}

// HasTopic reports whether the annotation carries the given topic tag.
func (a *Annotation) HasTopic(topic string) bool {
	for _, t := range a.Topics {
		if t == topic {
			return true
		}
	}
	return false
}
