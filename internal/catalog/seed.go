package catalog

func strptr(s string) *string { return &s }

// seedSources is the documented source catalog covering all eight tiers.
// Seeding is idempotent: slugs already present are skipped.
var seedSources = []RegisterCommand{
	// Tier 1: Cantor's own words.
	{
		Slug:     "cantor-1874-algebraische-zahlen",
		Title:    "Über eine Eigenschaft des Inbegriffes aller reellen algebraischen Zahlen",
		Author:   "Georg Cantor",
		Date:     "1874",
		Tier:     1,
		Language: "de",
		Format:   FormatPaper,
		ContentTags: []string{
			"first_infinity_proof", "algebraic_numbers", "uncountability",
		},
		ParallelGroup: strptr("cantor-1874"),
	},
	{
		Slug:     "cantor-1874-algebraic-numbers-en",
		Title:    "On a Property of the Collection of All Real Algebraic Numbers",
		Author:   "Georg Cantor",
		Date:     "1874",
		Tier:     1,
		Language: "en",
		Format:   FormatPaper,
		ContentTags: []string{
			"first_infinity_proof", "algebraic_numbers", "uncountability", "translation",
		},
		ParallelGroup: strptr("cantor-1874"),
	},
	{
		Slug:     "cantor-1883-grundlagen",
		Title:    "Über unendliche, lineare Punktmannichfaltigkeiten, Part 5 (Grundlagen)",
		Author:   "Georg Cantor",
		Date:     "1883",
		Tier:     1,
		Language: "de",
		Format:   FormatPaper,
		ContentTags: []string{
			"grundlagen", "philosophy", "actual_infinity", "platonic_realism",
			"spinoza", "leibniz", "mathematical_freedom",
		},
	},
	{
		Slug:     "cantor-1891-diagonal",
		Title:    "Über eine elementare Frage der Mannigfaltigkeitslehre",
		Author:   "Georg Cantor",
		Date:     "1891",
		Tier:     1,
		Language: "de",
		Format:   FormatPaper,
		ContentTags: []string{
			"diagonal_argument", "uncountability", "power_set",
		},
	},
	{
		Slug:     "cantor-1895-beitraege-1",
		Title:    "Beiträge zur Begründung der transfiniten Mengenlehre, Part I",
		Author:   "Georg Cantor",
		Date:     "1895",
		Tier:     1,
		Language: "de",
		Format:   FormatPaper,
		ContentTags: []string{
			"transfinite", "set_theory", "cardinality", "ordinals",
		},
	},
	{
		Slug:     "cantor-dedekind-correspondence",
		Title:    "Cantor-Dedekind correspondence (Noether & Cavaillès edition)",
		Author:   "Georg Cantor",
		Date:     "1872-1899",
		Tier:     1,
		Language: "de",
		Format:   FormatLetter,
		ContentTags: []string{
			"correspondence", "dedekind", "set_theory",
		},
	},
	{
		Slug:     "cantor-theologian-letters",
		Title:    "Letters to Catholic theologians (Esser, Jeiler, Gutberlet, Franzelin)",
		Author:   "Georg Cantor",
		Date:     "1885-1896",
		Tier:     1,
		Language: "de",
		Format:   FormatLetter,
		ContentTags: []string{
			"correspondence", "theology", "absolutum", "transfinitum",
		},
	},
	{
		Slug:     "cantor-mittag-leffler-letters",
		Title:    "Cantor-Mittag-Leffler correspondence (winter 1883-84)",
		Author:   "Georg Cantor",
		Date:     "1883-1884",
		Tier:     1,
		Language: "de",
		Format:   FormatLetter,
		ContentTags: []string{
			"correspondence", "mittag_leffler", "continuum_hypothesis",
		},
	},
	// Tier 2: direct contemporaries who supported him.
	{
		Slug:     "dedekind-replies",
		Title:    "Dedekind's replies to Cantor (from 1877 onward)",
		Author:   "Richard Dedekind",
		Date:     "1877-1899",
		Tier:     2,
		Language: "de",
		Format:   FormatLetter,
		ContentTags: []string{
			"correspondence", "dedekind",
		},
	},
	{
		Slug:     "hilbert-icm-1900",
		Title:    "Hilbert's 1900 ICM address (Problem 1: Continuum Hypothesis)",
		Author:   "David Hilbert",
		Date:     "1900",
		Tier:     2,
		Language: "de",
		Format:   FormatPaper,
		ContentTags: []string{
			"continuum_hypothesis", "hilbert", "defense",
		},
	},
	// Tier 3: documented opponents.
	{
		Slug:     "kronecker-finitism",
		Title:    "Kronecker's finitist writings and objections",
		Author:   "Leopold Kronecker",
		Date:     "1870-1891",
		Tier:     3,
		Language: "de",
		Format:   FormatPaper,
		ContentTags: []string{
			"finitism", "kronecker", "opposition",
		},
	},
	{
		Slug:     "poincare-set-theory-critique",
		Title:    "Poincaré's criticisms of set theory",
		Author:   "Henri Poincaré",
		Date:     "1905-1912",
		Tier:     3,
		Language: "fr",
		Format:   FormatPaper,
		ContentTags: []string{
			"opposition", "intuitionism",
		},
	},
	// Tier 4: theological interlocutors.
	{
		Slug:     "franzelin-1886-letter",
		Title:    "Cardinal Franzelin's 1886 letter to Cantor",
		Author:   "Johann Baptist Franzelin",
		Date:     "1886",
		Tier:     4,
		Language: "de",
		Format:   FormatLetter,
		ContentTags: []string{
			"theology", "absolutum", "neo_thomism",
		},
	},
	// Tier 5: serious scholarship.
	{
		Slug:     "dauben-1979",
		Title:    "Georg Cantor: His Mathematics and Philosophy of the Infinite",
		Author:   "Joseph Dauben",
		Date:     "1979",
		Tier:     5,
		Language: "en",
		Format:   FormatBook,
		ContentTags: []string{
			"biography", "scholarship",
		},
	},
	{
		Slug:     "grattan-guinness-1971",
		Title:    "Towards a Biography of Georg Cantor",
		Author:   "Ivor Grattan-Guinness",
		Date:     "1971",
		Tier:     5,
		Language: "en",
		Format:   FormatArticle,
		ContentTags: []string{
			"biography", "scholarship", "bell_corrective",
		},
	},
	{
		Slug:     "purkert-ilgauds-1987",
		Title:    "Probleme des Unendlichen: Werk und Leben Georg Cantors",
		Author:   "Walter Purkert and Hans Joachim Ilgauds",
		Date:     "1987",
		Tier:     5,
		Language: "de",
		Format:   FormatBook,
		ContentTags: []string{
			"biography", "scholarship",
		},
	},
	// Tier 6: reliable secondary treatments.
	{
		Slug:     "jourdain-translation-1915",
		Title:    "Contributions to the Founding of the Theory of Transfinite Numbers (Jourdain translation)",
		Author:   "Philip Jourdain",
		Date:     "1915",
		Tier:     6,
		Language: "en",
		Format:   FormatBook,
		ContentTags: []string{
			"translation", "transfinite",
		},
	},
	{
		Slug:     "mactutor-biography",
		Title:    "MacTutor biography of Georg Cantor",
		Author:   "J.J. O'Connor and E.F. Robertson",
		Date:     "1998",
		Tier:     6,
		Language: "en",
		Format:   FormatWeb,
		ContentTags: []string{
			"biography", "web",
		},
	},
	// Tier 7: pop narratives, negative-example pool.
	{
		Slug:     "pop-madness-narratives",
		Title:    "'Cantor went mad because of infinity' pop narratives",
		Author:   "Various",
		Date:     "1990-2020",
		Tier:     7,
		Language: "en",
		Format:   FormatWeb,
		ContentTags: []string{
			"pop_psychology", "myth",
		},
	},
	{
		Slug:     "wikipedia-cantor",
		Title:    "Wikipedia article on Georg Cantor",
		Author:   "Various",
		Date:     "2024",
		Tier:     7,
		Language: "en",
		Format:   FormatWeb,
		ContentTags: []string{
			"encyclopedia", "web",
		},
	},
	// Tier 8: excluded fabrication, retained for contrastive pairs.
	{
		Slug:     "bell-men-of-mathematics",
		Title:    "Men of Mathematics",
		Author:   "E.T. Bell",
		Date:     "1937",
		Tier:     8,
		Language: "en",
		Format:   FormatBook,
		ContentTags: []string{
			"fabrication", "bell",
		},
	},
}
