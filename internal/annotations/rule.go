package annotations

import (
	"context"
	"strings"
)

// presenceThreshold is the minimum density score for a dimension to be
// considered present in a segment.
const presenceThreshold = 0.05

// RuleTagger scores segments by keyword density against the fixed
// lexicons. It is deterministic and needs no model backend, so it also
// serves as the fallback when the assisted tagger is unavailable.
type RuleTagger struct{}

func NewRuleTagger() *RuleTagger {
	return &RuleTagger{}
}

func (t *RuleTagger) Name() string {
	return TaggerRule
}

func (t *RuleTagger) Tag(_ context.Context, text string) (*TagResult, error) {
	lower := strings.ToLower(text)
	tokens := len(strings.Fields(text))
	if tokens == 0 {
		tokens = 1
	}

	result := &TagResult{
		Scores:     make(map[string]float64),
		Subtags:    make(map[string][]string),
		Confidence: 1.0,
	}

	for _, dim := range Dimensions {
		matches := 0
		var hit []string
		for _, tag := range Subtags[dim] {
			count := countTerms(lower, subtagTerms[dim][tag])
			if count > 0 {
				hit = append(hit, tag)
				matches += count
			}
		}
		matches += countTerms(lower, dimensionExtras[dim])

		score := density(matches, tokens)
		if score >= presenceThreshold {
			result.Scores[dim] = score
			if len(hit) > 0 {
				result.Subtags[dim] = hit
			}
		}
	}

	for _, topic := range Topics {
		if countTerms(lower, topicTerms[topic]) > 0 {
			result.Topics = append(result.Topics, topic)
		}
	}

	result.PsychState = derivePsychState(result)
	return result, nil
}

// density normalizes a raw match count against segment length. Twenty
// matches per hundred tokens saturates the score at 1.0.
func density(matches, tokens int) float64 {
	return clamp01(float64(matches) * 20 / float64(tokens))
}

func countTerms(lower string, terms []string) int {
	count := 0
	for _, term := range terms {
		count += strings.Count(lower, strings.ToLower(term))
	}
	return count
}

// derivePsychState infers a coarse psychological state from the
// psychological landscape subtags. Crisis markers dominate when present.
func derivePsychState(r *TagResult) string {
	tags := r.Subtags[DimPsychologicalLandscape]
	if len(tags) == 0 {
		return ""
	}
	for _, tag := range tags {
		if tag == "depressive_episode" || tag == "hospitalization" {
			return "crisis"
		}
	}
	for _, tag := range tags {
		if tag == "productive_period" {
			return "productive"
		}
	}
	return "stable"
}
