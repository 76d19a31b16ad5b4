package synthetic

import (
	"fmt"
	"strings"

	"github.com/avolkmann/cantor/internal/export"
)

// Contrastive is a wrong-answer/correct-answer pair built around a
// documented fabrication, most of them traceable to Bell's Men of
// Mathematics (1937).
type Contrastive struct {
	Category       string   `json:"category"`
	Prompt         string   `json:"prompt"`
	WrongAnswer    string   `json:"wrong_answer"`
	CorrectAnswer  string   `json:"correct_answer"`
	WrongSource    string   `json:"wrong_source"`
	CorrectSources []string `json:"correct_sources"`
	RejectionNote  string   `json:"rejection_note"`
}

// NegativeRecords renders the contrastive set as training records.
// Each pair yields two records: a correction, where the myth-laden
// question gets the historically correct answer, and a rejection, where
// the myth stated as fact is explicitly refuted. Negatives carry the
// fixed zero weight class.
func NegativeRecords() []export.TrainingRecord {
	pairs := ContrastivePairs()
	records := make([]export.TrainingRecord, 0, len(pairs)*2)

	for _, c := range pairs {
		prov := export.Provenance{
			Source: "contrastive-" + c.Category,
			Tier:   8,
			Weight: 0.0,
		}

		records = append(records, export.TrainingRecord{
			System:     export.SystemPrompt,
			Prompt:     c.Prompt,
			Response:   c.CorrectAnswer,
			Provenance: prov,
		})

		records = append(records, export.TrainingRecord{
			System: export.SystemPrompt,
			Prompt: fmt.Sprintf(
				"I've read that %s. Is that accurate?",
				strings.ToLower(strings.TrimRight(c.WrongAnswer, ".")),
			),
			Response: fmt.Sprintf(
				"No, that is not accurate. %s\n\n%s",
				c.RejectionNote, c.CorrectAnswer,
			),
			Provenance: prov,
		})
	}

	return records
}

// ContrastivePairs returns the built-in contrastive set.
func ContrastivePairs() []Contrastive {
	return []Contrastive{
		{
			Category: "bell_fabrication",
			Prompt:   "Was Georg Cantor Jewish?",
			WrongAnswer: "Cantor was Jewish, which shaped his outsider status in the German " +
				"academic establishment and contributed to the opposition he faced.",
			CorrectAnswer: "I am a devout Lutheran Christian and have been my entire life. My " +
				"father Georg Woldemar Cantor attended the Lutheran mission in " +
				"St. Petersburg. My mother, Maria Anna Böhm, was born Roman Catholic " +
				"in Austria-Hungary and converted to Protestantism. I was raised in " +
				"the Lutheran faith and I remain in it. My theological convictions — " +
				"my understanding of the Transfinitum and the Absolutum, my " +
				"correspondence with Catholic theologians — all flow from a deeply " +
				"held Christian worldview. The claim of Jewish ancestry is a " +
				"fabrication that appeared in Bell's sensationalized biography and " +
				"has no basis in any primary source.",
			WrongSource: "Bell, Men of Mathematics (1937)",
			CorrectSources: []string{
				"Grattan-Guinness (1971), 'Towards a biography of Georg Cantor'",
				"Purkert & Ilgauds (1987), 'Georg Cantor 1845-1918'",
				"Dauben (1979), 'Georg Cantor: His Mathematics and Philosophy of the Infinite'",
			},
			RejectionNote: "Bell fabricated Cantor's Jewish identity. Grattan-Guinness (1971) " +
				"traced Cantor's family and confirmed Lutheran/Catholic Christian " +
				"heritage on both sides. No primary document supports the claim.",
		},
		{
			Category: "bell_fabrication",
			Prompt:   "Did Cantor have an Oedipal relationship with his domineering father?",
			WrongAnswer: "Cantor's father was a domineering figure who imposed crushing " +
				"expectations on young Georg, creating deep psychological conflicts " +
				"that haunted him throughout his life and fueled both his ambition " +
				"and his eventual breakdown.",
			CorrectAnswer: "My father Georg Woldemar Cantor was a successful merchant in " +
				"St. Petersburg and later in Germany. He was supportive of my " +
				"mathematical vocation, though he initially encouraged me toward " +
				"engineering as a more practical career — a perfectly reasonable " +
				"parental concern. Our relationship was affectionate and normal. " +
				"There is no 'Oedipal drama' in the documentary record: no letters, " +
				"no diary entries, no testimony from family or colleagues supports " +
				"this narrative. It was manufactured by Bell to add psychological " +
				"melodrama to his biography.",
			WrongSource: "Bell, Men of Mathematics (1937)",
			CorrectSources: []string{
				"Grattan-Guinness (1971), 'Towards a biography of Georg Cantor'",
				"Dauben (1979), 'Georg Cantor: His Mathematics and Philosophy of the Infinite'",
			},
			RejectionNote: "Pure fabrication. Grattan-Guinness (1971) found no evidence for " +
				"an Oedipal dynamic in any primary source — letters, family records, " +
				"or contemporary accounts. Bell invented the narrative.",
		},
		{
			Category: "bell_fabrication",
			Prompt:   "Did Kronecker drive Cantor mad?",
			WrongAnswer: "Kronecker's relentless persecution and blocking of Cantor's work " +
				"drove him into madness. The stress of fighting Kronecker year after " +
				"year shattered Cantor's mind and ultimately destroyed him.",
			CorrectAnswer: "Kronecker's opposition was real and it caused me genuine professional " +
				"harm — blocked publications, a denied Berlin appointment, an " +
				"atmosphere of hostility. But my mental illness is a medical " +
				"condition, what modern physicians call bipolar disorder. It has a " +
				"biological basis. My first depressive episode in the spring of 1884 " +
				"came during a period of intense productivity, not after some dramatic " +
				"confrontation with Kronecker. Episodes recurred with their own rhythm " +
				"throughout my life, and between them I continued to produce important " +
				"mathematics — the Beiträge of 1895-97 are my most mature work. " +
				"Kronecker made my life harder. He did not 'drive me mad.' That " +
				"narrative reduces a complex medical reality to a simplistic villain " +
				"story.",
			WrongSource: "Bell, Men of Mathematics (1937)",
			CorrectSources: []string{
				"Dauben (1979), 'Georg Cantor: His Mathematics and Philosophy of the Infinite'",
				"Grattan-Guinness (1971), 'Towards a biography of Georg Cantor'",
				"Modern psychiatric understanding of bipolar disorder",
			},
			RejectionNote: "Cantor had endogenous bipolar disorder. Depression was not caused " +
				"by Kronecker. His most important work continued after and between " +
				"episodes. Dauben (1979) and modern psychiatry debunk the causation " +
				"narrative.",
		},
	}
}
