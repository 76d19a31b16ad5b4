package annotations

import "context"

// TagResult is the validated output contract shared by all tagger variants.
// Scores are clamped to [0, 1] before the engine sees them.
type TagResult struct {
	Scores     map[string]float64  `json:"scores"`
	Subtags    map[string][]string `json:"subtags"`
	Topics     []string            `json:"topics"`
	PsychState string              `json:"psych_state"`
	Confidence float64             `json:"confidence"`
	Notes      string              `json:"notes"`
}

// Tagger classifies segment text along the fixed dimension and topic schema.
// Implementations must only emit values from the closed vocabularies.
type Tagger interface {
	Name() string
	Tag(ctx context.Context, text string) (*TagResult, error)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
