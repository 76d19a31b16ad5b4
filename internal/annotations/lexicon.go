package annotations

// subtagTerms maps each dimension's subtags to the keyword terms that
// indicate them. Matching is case-insensitive substring search; German
// and English terms are mixed since the corpus spans both languages.
var subtagTerms = map[string]map[string][]string{
	DimMathematicalIntuition: {
		"diagonal_argument": {
			"diagonal", "Diagonalverfahren", "diagonalization",
		},
		"cardinality": {
			"cardinal", "Mächtigkeit", "cardinality", "equipollent",
			"gleichmächtig",
		},
		"ordinals": {
			"ordinal", "Ordnungszahl", "well-ordered", "wohlgeordnet",
		},
		"continuum_hypothesis": {
			"continuum hypothesis", "Kontinuumhypothese", "Kontinuum",
			"continuum problem",
		},
		"well_ordering": {
			"well-ordering", "Wohlordnung", "well ordering", "well ordered",
		},
		"transfinite_arithmetic": {
			"transfinite", "transfinit", "aleph", "ℵ", "omega", "ω",
		},
		"trigonometric_series": {
			"trigonometric", "trigonometrisch", "Fourier",
		},
		"set_theory": {
			"Mengenlehre", "set theory", "Mannigfaltigkeit", "Inbegriff",
		},
		"uncountability": {
			"uncountable", "überabzählbar", "non-denumerable",
		},
		"power_set": {
			"power set", "Potenzmenge", "Teilmenge",
		},
	},
	DimTheologicalFramework: {
		"absolutum": {
			"Absolutum", "absolute infinite", "das Absolute",
		},
		"transfinitum": {
			"Transfinitum",
		},
		"neo_thomism": {
			"Aquinas", "Thomism", "Thomistic", "Franzelin", "neo-scholastic",
		},
		"anti_kantianism": {
			"Kant", "Kantian", "pure reason",
		},
		"platonic_realism": {
			"Plato", "Platonic", "Ideenlehre",
		},
		"divine_revelation": {
			"God", "Gott", "divine", "göttlich", "revelation",
			"Offenbarung", "Schöpfer",
		},
		"spinoza": {
			"Spinoza", "pantheism", "Pantheismus",
		},
		"leibniz": {
			"Leibniz", "Monade",
		},
		"mathematical_freedom": {
			"free mathematics", "Freiheit", "freedom of mathematics",
		},
	},
	DimKroneckerConflict: {
		"finitism": {
			"finitist", "finitism", "Endlichkeit",
		},
		"institutional_power": {
			"Zeitschrift", "publish", "appointment", "Berufung", "referee",
		},
		"combative_rhetoric": {
			"charlatan", "Scharlatan", "corrupter of youth",
			"Jugendverderber", "cholera bacillus",
		},
		"mathematical_substance": {
			"ganzen Zahlen", "integers", "arithmetic",
		},
		"berlin_appointment": {
			"Berlin", "Lehrstuhl",
		},
		"constructivism": {
			"constructive", "constructivism", "konstruktiv",
		},
	},
	DimPsychologicalLandscape: {
		"depressive_episode": {
			"depression", "depressive", "melancholy", "Melancholie",
			"breakdown", "Zusammenbruch", "nervous", "nervös",
		},
		"productive_period": {
			"productive", "fruitful", "burst of work",
		},
		"hospitalization": {
			"hospitalization", "Nervenklinik", "sanatorium", "Klinik",
		},
		"non_math_interests": {
			"Shakespeare", "literary", "literature",
		},
		"baconian_theory": {
			"Bacon", "Baconian", "Shakespeare authorship",
		},
		"family": {
			"Rudolph", "Kinder", "children", "Sohn", "Tochter",
		},
	},
	DimPersonalContext: {
		"halle_career": {
			"Halle", "ordinarius", "extraordinary professor",
		},
		"family_life": {
			"Vally", "Guttmann", "Hochzeit", "marriage",
		},
		"dmv_founding": {
			"DMV", "Mathematiker-Vereinigung", "Deutsche Mathematiker",
		},
		"supporters": {
			"Dedekind", "Mittag-Leffler", "Hilbert", "Weierstrass",
		},
		"st_petersburg": {
			"Petersburg", "Russland", "Russia",
		},
		"lutheran_faith": {
			"Lutheran", "lutherisch", "evangelisch", "Glaube",
		},
		"icm": {
			"ICM", "Kongress", "International Congress",
		},
	},
}

// dimensionExtras holds dimension-level terms that score the dimension
// without mapping to a specific subtag. The freedom declaration is
// foundational content, so it scores mathematical intuition as well as
// the theological subtag it belongs to.
var dimensionExtras = map[string][]string{
	DimMathematicalIntuition: {
		"essence of mathematics", "Wesen der Mathematik", "freedom",
	},
}

// topicTerms maps each topic in the closed vocabulary to its keyword terms.
var topicTerms = map[string][]string{
	"set_theory":            {"Mengenlehre", "set theory", "Mannigfaltigkeit"},
	"cardinality":           {"cardinality", "Mächtigkeit", "equipollent"},
	"ordinal_numbers":       {"ordinal number", "Ordnungszahl"},
	"cardinal_numbers":      {"cardinal number", "Kardinalzahl"},
	"transfinite_induction": {"transfinite induction", "transfinite Induktion"},
	"well_ordering_theorem": {"well-ordering theorem", "Wohlordnungssatz"},
	"continuum_hypothesis": {
		"continuum hypothesis", "Kontinuumhypothese", "continuum problem",
	},
	"diagonal_argument":    {"diagonal", "Diagonalverfahren", "diagonalization"},
	"uncountability":       {"uncountable", "überabzählbar", "non-denumerable"},
	"countability":         {"countable", "abzählbar", "denumerable"},
	"trigonometric_series": {"trigonometric series", "trigonometrische Reihe"},
	"point_sets":           {"point set", "Punktmenge"},
	"real_analysis":        {"real analysis", "real number", "reelle"},
	"topology":             {"topology", "Topologie", "zusammenhängend"},
	"power_set":            {"power set", "Potenzmenge"},
	"aleph_numbers":        {"aleph", "ℵ"},
	"mathematical_freedom": {
		"freedom", "Freiheit", "free mathematics", "essence of mathematics",
	},
	"ordinal_arithmetic":   {"ordinal arithmetic", "ordinal addition"},
	"cardinal_arithmetic":  {"cardinal arithmetic", "cardinal addition"},
	"axiom_of_choice":      {"axiom of choice", "Auswahlaxiom"},
	"zermelo_axioms":       {"Zermelo", "Axiomensystem"},
	"burali_forti_paradox": {"Burali-Forti", "greatest ordinal"},
	"russell_paradox":      {"Russell", "set of all sets"},
	"absolute_infinite": {
		"absolute infinite", "Absolutum", "Absolute Unendlichkeit",
	},
}
