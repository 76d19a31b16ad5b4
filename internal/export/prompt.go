package export

import (
	"fmt"
	"strings"

	"github.com/avolkmann/cantor/internal/annotations"
	"github.com/avolkmann/cantor/internal/segments"
)

// UserPrompt synthesizes a natural user prompt that would elicit the
// segment's content, driven by the segment's annotation. Segments
// without a usable annotation degrade to a generic prompt rather than
// failing.
func UserPrompt(seg segments.Segment, ann *annotations.Annotation) string {
	if ann == nil {
		return genericPrompt(seg)
	}

	if seg.Kind == segments.KindLetter && seg.Recipient != "" {
		if hint := topicHint(ann); hint != "" {
			return fmt.Sprintf("Write to %s about %s.", seg.Recipient, hint)
		}
		return fmt.Sprintf("Write to %s.", seg.Recipient)
	}

	if ann.Score(annotations.DimKroneckerConflict) > 0 {
		topic := firstReadable(ann.Subtags[annotations.DimKroneckerConflict], "the finitist position")
		return fmt.Sprintf("How do you respond to %s?", topic)
	}

	if ann.Score(annotations.DimTheologicalFramework) > 0 {
		tags := ann.Subtags[annotations.DimTheologicalFramework]
		if contains(tags, "absolutum") || contains(tags, "transfinitum") {
			return "What is the relationship between infinity and God?"
		}
		if contains(tags, "anti_kantianism") {
			return "What is wrong with Kant's treatment of infinity?"
		}
		return "How does your theology relate to your mathematics?"
	}

	if ann.Score(annotations.DimMathematicalIntuition) > 0 {
		if len(ann.Topics) > 0 {
			readable := humanize(ann.Topics[0])
			if ann.HasTopic("diagonal_argument") || ann.HasTopic("uncountability") {
				return fmt.Sprintf("Explain your proof of %s.", readable)
			}
			return fmt.Sprintf("How do you define %s?", readable)
		}
		return "Explain your approach to the infinite in mathematics."
	}

	if ann.Score(annotations.DimPsychologicalLandscape) > 0 {
		if ann.PsychState != "" {
			return fmt.Sprintf("Tell me about your experience during your %s.", humanize(ann.PsychState))
		}
		return "Tell me about your personal struggles."
	}

	if ann.Score(annotations.DimPersonalContext) > 0 {
		topic := firstReadable(ann.Subtags[annotations.DimPersonalContext], "your career at Halle")
		return fmt.Sprintf("Tell me about %s.", topic)
	}

	if seg.Kind == segments.KindTheorem {
		return "State and explain this theorem."
	}

	if hint := topicHint(ann); hint != "" {
		return fmt.Sprintf("Discuss %s.", hint)
	}
	return genericPrompt(seg)
}

func genericPrompt(seg segments.Segment) string {
	if seg.Kind == segments.KindTheorem {
		return "State and explain this theorem."
	}
	if seg.SourceTitle != "" {
		return fmt.Sprintf("Discuss %s.", seg.SourceTitle)
	}
	return "Discuss this topic."
}

func topicHint(ann *annotations.Annotation) string {
	if len(ann.Topics) > 0 {
		return humanize(ann.Topics[0])
	}
	for _, dim := range annotations.Dimensions {
		if tags := ann.Subtags[dim]; len(tags) > 0 {
			return humanize(tags[0])
		}
	}
	return ""
}

func firstReadable(items []string, fallback string) string {
	if len(items) > 0 {
		return humanize(items[0])
	}
	return fallback
}

func humanize(slug string) string {
	return strings.ReplaceAll(slug, "_", " ")
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
