package export_test

import (
	"strings"
	"testing"

	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/segments"
)

func TestUserPromptLetter(t *testing.T) {
	seg := segments.Segment{
		Kind:      segments.KindLetter,
		Recipient: "Dedekind",
	}
	ann := &annotations.Annotation{Topics: []string{"continuum_hypothesis"}}

	got := export.UserPrompt(seg, ann)
	want := "Write to Dedekind about continuum hypothesis."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUserPromptLetterWithoutTopic(t *testing.T) {
	seg := segments.Segment{
		Kind:      segments.KindLetter,
		Recipient: "Mittag-Leffler",
	}

	got := export.UserPrompt(seg, &annotations.Annotation{})
	if got != "Write to Mittag-Leffler." {
		t.Errorf("got %q", got)
	}
}

func TestUserPromptDimensionPriority(t *testing.T) {
	tests := []struct {
		name string
		ann  *annotations.Annotation
		want string
	}{
		{
			"kronecker_before_mathematical",
			&annotations.Annotation{
				Scores: map[string]float64{
					annotations.DimKroneckerConflict:     0.3,
					annotations.DimMathematicalIntuition: 0.9,
				},
				Subtags: map[string][]string{
					annotations.DimKroneckerConflict: {"finitism"},
				},
			},
			"How do you respond to finitism?",
		},
		{
			"theological_absolutum",
			&annotations.Annotation{
				Scores: map[string]float64{annotations.DimTheologicalFramework: 0.6},
				Subtags: map[string][]string{
					annotations.DimTheologicalFramework: {"absolutum"},
				},
			},
			"What is the relationship between infinity and God?",
		},
		{
			"theological_kant",
			&annotations.Annotation{
				Scores: map[string]float64{annotations.DimTheologicalFramework: 0.6},
				Subtags: map[string][]string{
					annotations.DimTheologicalFramework: {"anti_kantianism"},
				},
			},
			"What is wrong with Kant's treatment of infinity?",
		},
		{
			"mathematical_proof",
			&annotations.Annotation{
				Scores: map[string]float64{annotations.DimMathematicalIntuition: 0.8},
				Topics: []string{"uncountability"},
			},
			"Explain your proof of uncountability.",
		},
		{
			"mathematical_definition",
			&annotations.Annotation{
				Scores: map[string]float64{annotations.DimMathematicalIntuition: 0.8},
				Topics: []string{"ordinal_numbers"},
			},
			"How do you define ordinal numbers?",
		},
		{
			"psychological_state",
			&annotations.Annotation{
				Scores:     map[string]float64{annotations.DimPsychologicalLandscape: 0.7},
				PsychState: "crisis",
			},
			"Tell me about your experience during your crisis.",
		},
		{
			"personal_context",
			&annotations.Annotation{
				Scores: map[string]float64{annotations.DimPersonalContext: 0.5},
				Subtags: map[string][]string{
					annotations.DimPersonalContext: {"dmv_founding"},
				},
			},
			"Tell me about dmv founding.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := segments.Segment{Kind: segments.KindSection}
			if got := export.UserPrompt(seg, tt.ann); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserPromptTheoremFallback(t *testing.T) {
	seg := segments.Segment{Kind: segments.KindTheorem}

	got := export.UserPrompt(seg, &annotations.Annotation{})
	if got != "State and explain this theorem." {
		t.Errorf("got %q", got)
	}
}

func TestUserPromptWithoutAnnotation(t *testing.T) {
	seg := segments.Segment{
		Kind:        segments.KindSection,
		SourceTitle: "Grundlagen einer allgemeinen Mannigfaltigkeitslehre",
	}

	got := export.UserPrompt(seg, nil)
	if !strings.Contains(got, "Grundlagen") {
		t.Errorf("generic prompt %q does not mention the source title", got)
	}
}
