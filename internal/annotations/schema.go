// Package annotations implements the annotation domain: five-dimension
// scoring, the closed topic vocabulary, rule-based and assisted taggers,
// contradiction detection, and annotation persistence.
package annotations

import "slices"

// The five fixed annotation dimensions.
const (
	DimMathematicalIntuition  = "mathematical_intuition"
	DimTheologicalFramework   = "theological_framework"
	DimKroneckerConflict      = "kronecker_conflict"
	DimPsychologicalLandscape = "psychological_landscape"
	DimPersonalContext        = "personal_context"
)

// Dimensions lists the five fixed dimensions in canonical order.
var Dimensions = []string{
	DimMathematicalIntuition,
	DimTheologicalFramework,
	DimKroneckerConflict,
	DimPsychologicalLandscape,
	DimPersonalContext,
}

// Subtags is the closed subtag vocabulary per dimension.
var Subtags = map[string][]string{
	DimMathematicalIntuition: {
		"diagonal_argument",
		"cardinality",
		"ordinals",
		"continuum_hypothesis",
		"well_ordering",
		"transfinite_arithmetic",
		"trigonometric_series",
		"set_theory",
		"uncountability",
		"power_set",
	},
	DimTheologicalFramework: {
		"absolutum",
		"transfinitum",
		"neo_thomism",
		"anti_kantianism",
		"platonic_realism",
		"divine_revelation",
		"spinoza",
		"leibniz",
		"mathematical_freedom",
	},
	DimKroneckerConflict: {
		"finitism",
		"institutional_power",
		"combative_rhetoric",
		"mathematical_substance",
		"berlin_appointment",
		"constructivism",
	},
	DimPsychologicalLandscape: {
		"depressive_episode",
		"productive_period",
		"hospitalization",
		"non_math_interests",
		"baconian_theory",
		"family",
	},
	DimPersonalContext: {
		"halle_career",
		"family_life",
		"dmv_founding",
		"supporters",
		"st_petersburg",
		"lutheran_faith",
		"icm",
	},
}

// Topics is the closed 24-entry topic vocabulary.
var Topics = []string{
	"set_theory",
	"cardinality",
	"ordinal_numbers",
	"cardinal_numbers",
	"transfinite_induction",
	"well_ordering_theorem",
	"continuum_hypothesis",
	"diagonal_argument",
	"uncountability",
	"countability",
	"trigonometric_series",
	"point_sets",
	"real_analysis",
	"topology",
	"power_set",
	"aleph_numbers",
	"mathematical_freedom",
	"ordinal_arithmetic",
	"cardinal_arithmetic",
	"axiom_of_choice",
	"zermelo_axioms",
	"burali_forti_paradox",
	"russell_paradox",
	"absolute_infinite",
}

// ValidDimension reports whether d is one of the five fixed dimensions.
func ValidDimension(d string) bool {
	return slices.Contains(Dimensions, d)
}

// ValidSubtag reports whether tag belongs to the dimension's subtag vocabulary.
func ValidSubtag(dimension, tag string) bool {
	return slices.Contains(Subtags[dimension], tag)
}

// ValidTopic reports whether topic belongs to the closed vocabulary.
func ValidTopic(topic string) bool {
	return slices.Contains(Topics, topic)
}
