package annotations

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/avolkmann/cantor/pkg/formatting"
)

// AssistedTagger sends segment text to a language model and parses the
// structured response against the closed schema. Values outside the
// vocabularies are rejected rather than silently kept, so a confused
// model never widens the schema.
type AssistedTagger struct {
	config gaconfig.AgentConfig
}

func NewAssistedTagger(cfg gaconfig.AgentConfig) *AssistedTagger {
	return &AssistedTagger{config: cfg}
}

func (t *AssistedTagger) Name() string {
	return TaggerAssisted
}

func (t *AssistedTagger) Tag(ctx context.Context, text string) (*TagResult, error) {
	a, err := agent.New(&t.config)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, taggingPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("chat call: %w", err)
	}

	parsed, err := formatting.Parse[TagResult](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTaggerOutput, err)
	}

	if err := validateResult(&parsed); err != nil {
		return nil, err
	}

	return &parsed, nil
}

// validateResult enforces the closed vocabularies and clamps numeric
// values into range. Unknown dimensions, subtags, or topics fail the
// whole result.
func validateResult(r *TagResult) error {
	for dim, score := range r.Scores {
		if !ValidDimension(dim) {
			return fmt.Errorf("%w: unknown dimension %q", ErrInvalidTaggerOutput, dim)
		}
		r.Scores[dim] = clamp01(score)
	}

	for dim, tags := range r.Subtags {
		if !ValidDimension(dim) {
			return fmt.Errorf("%w: unknown dimension %q", ErrInvalidTaggerOutput, dim)
		}
		for _, tag := range tags {
			if !ValidSubtag(dim, tag) {
				return fmt.Errorf("%w: unknown subtag %q for %s", ErrInvalidTaggerOutput, tag, dim)
			}
		}
	}

	for _, topic := range r.Topics {
		if !ValidTopic(topic) {
			return fmt.Errorf("%w: unknown topic %q", ErrInvalidTaggerOutput, topic)
		}
	}

	r.Confidence = clamp01(r.Confidence)
	return nil
}

func taggingPrompt(text string) string {
	var b strings.Builder

	b.WriteString("You are annotating a text segment from a historical corpus ")
	b.WriteString("about the mathematician Georg Cantor. Score the segment along ")
	b.WriteString("each dimension below from 0.0 (absent) to 1.0 (dominant), ")
	b.WriteString("listing only the subtags actually evidenced by the text.\n\n")

	b.WriteString("Dimensions and allowed subtags:\n")
	for _, dim := range Dimensions {
		fmt.Fprintf(&b, "- %s: %s\n", dim, strings.Join(Subtags[dim], ", "))
	}

	b.WriteString("\nAllowed topics:\n")
	fmt.Fprintf(&b, "%s\n", strings.Join(Topics, ", "))

	b.WriteString("\nRespond with JSON only, using this shape:\n")
	b.WriteString(`{"scores": {"<dimension>": 0.0}, "subtags": {"<dimension>": ["<subtag>"]}, ` +
		`"topics": ["<topic>"], "psych_state": "", "confidence": 0.0, "notes": ""}`)
	b.WriteString("\n\nSegment:\n")
	b.WriteString(text)

	return b.String()
}
