package annotations

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateResultClampsValues(t *testing.T) {
	result := &TagResult{
		Scores: map[string]float64{
			DimMathematicalIntuition: 1.4,
			DimPersonalContext:       -0.2,
		},
		Confidence: 2.5,
	}

	if err := validateResult(result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := result.Scores[DimMathematicalIntuition]; got != 1.0 {
		t.Errorf("got score %v, want 1.0", got)
	}
	if got := result.Scores[DimPersonalContext]; got != 0.0 {
		t.Errorf("got score %v, want 0.0", got)
	}
	if result.Confidence != 1.0 {
		t.Errorf("got confidence %v, want 1.0", result.Confidence)
	}
}

func TestValidateResultRejectsUnknownVocabulary(t *testing.T) {
	tests := []struct {
		name   string
		result TagResult
	}{
		{
			"unknown_dimension",
			TagResult{Scores: map[string]float64{"sentiment": 0.5}},
		},
		{
			"unknown_subtag_dimension",
			TagResult{Subtags: map[string][]string{"sentiment": {"positive"}}},
		},
		{
			"unknown_subtag",
			TagResult{Subtags: map[string][]string{
				DimKroneckerConflict: {"friendly_banter"},
			}},
		},
		{
			"unknown_topic",
			TagResult{Topics: []string{"number_theory"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResult(&tt.result)
			if !errors.Is(err, ErrInvalidTaggerOutput) {
				t.Errorf("got %v, want ErrInvalidTaggerOutput", err)
			}
		})
	}
}

func TestTaggingPromptCoversSchema(t *testing.T) {
	prompt := taggingPrompt("Sample segment text.")

	for _, dim := range Dimensions {
		if !strings.Contains(prompt, dim) {
			t.Errorf("prompt missing dimension %s", dim)
		}
	}
	for _, topic := range Topics {
		if !strings.Contains(prompt, topic) {
			t.Errorf("prompt missing topic %s", topic)
		}
	}
	if !strings.Contains(prompt, "Sample segment text.") {
		t.Error("prompt missing segment text")
	}
}
