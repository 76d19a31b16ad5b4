// Package segmenter splits extracted source text into typed segment drafts.
// Splitting is pure and total: any non-empty input produces at least one
// draft; unparseable structure degrades to a whole-document segment.
package segmenter

import (
	"errors"
	"regexp"
	"strings"

	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/segments"
)

// ErrEmptyDocument indicates the extracted text is empty or whitespace only.
var ErrEmptyDocument = errors.New("document text is empty")

const deMonths = `Januar|Februar|März|April|Mai|Juni|Juli|August|September|Oktober|November|Dezember`

var (
	datePattern = regexp.MustCompile(
		`(?i)(?:den\s+)?\d{1,2}\.\s*(?:` + deMonths + `)\s+\d{4}`)

	salutationPattern = regexp.MustCompile(
		`(?im)^\s*(?:Lieber|Liebster|Hochgeehrter\s+Herr|Sehr\s+geehrter|Verehrter|Dear\s+(?:Sir|Mr|Professor|Dr|Friend))`)

	closingPattern = regexp.MustCompile(
		`(?i)(?:Ihr\s+ergebener|Ihr\s+ergebenster|Hochachtungsvoll|Mit\s+(?:herzlichem|freundlichem)\s+Gru[ßs]|Yours\s+(?:truly|sincerely|faithfully))`)

	sectionPattern = regexp.MustCompile(
		`(?m)^\s*(?:§\s*\d+|Abschnitt\s+\w+|Section\s+\d+|\d+\.\s+[A-Z])`)

	theoremPattern = regexp.MustCompile(
		`(?im)^\s*(?:Satz|Theorem|Lemma|Korollar|Corollary|Definition|Beweis|Proof|Proposition)\b[.\s:]`)

	chapterPattern = regexp.MustCompile(
		`(?im)^\s*(?:Chapter|Kapitel)\s+(?:\d+|[IVXLCDM]+)`)

	numberPattern = regexp.MustCompile(`\d+|[IVXLCDM]+`)

	recipientPattern = regexp.MustCompile(
		`^\s*([A-ZÄÖÜa-zäöüß\-]+(?:\s+[A-ZÄÖÜa-zäöüß\-]+)?)`)
)

// Segment splits extracted text into drafts according to the source format.
// Letters split on salutation boundaries, papers on section/theorem markers,
// books on chapter markers; articles and web pages use the paper policy.
// Fails only with ErrEmptyDocument on empty input.
func Segment(src catalog.Source, text string) ([]segments.Draft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	var drafts []segments.Draft
	switch src.Format {
	case catalog.FormatLetter:
		drafts = segmentLetters(text)
	case catalog.FormatBook:
		drafts = segmentBook(text)
	default:
		drafts = segmentPaper(text)
	}

	for i := range drafts {
		drafts[i].Language = DetectLanguage(drafts[i].Content)
	}

	return drafts, nil
}

func segmentLetters(text string) []segments.Draft {
	var boundaries []int

	for _, loc := range salutationPattern.FindAllStringIndex(text, -1) {
		start := loc[0]
		precedingStart := max(0, start-200)
		preceding := text[precedingStart:start]

		dates := datePattern.FindAllStringIndex(preceding, -1)

		switch {
		case len(dates) > 0:
			// the letter starts at the head line carrying its date
			boundaries = append(boundaries, lineStart(text, precedingStart+dates[len(dates)-1][0]))
		case start == 0 || closingPattern.MatchString(preceding):
			boundaries = append(boundaries, start)
		}
	}

	if len(boundaries) == 0 {
		draft := letterDraft(text, 0)
		draft.Title = "Complete letter"
		return []segments.Draft{draft}
	}

	// a leading date line belongs to the first letter
	boundaries[0] = 0

	var drafts []segments.Draft
	for i, start := range boundaries {
		end := len(text)
		if i+1 < len(boundaries) {
			end = boundaries[i+1]
		}

		chunk := strings.TrimSpace(text[start:end])
		if chunk == "" {
			continue
		}

		drafts = append(drafts, letterDraft(chunk, len(drafts)))
	}

	return drafts
}

func letterDraft(chunk string, ordering int) segments.Draft {
	draft := segments.Draft{
		Kind:     segments.KindLetter,
		Content:  strings.TrimSpace(chunk),
		Ordering: ordering,
	}

	head := chunk
	if len(head) > 500 {
		head = head[:500]
	}
	if date := datePattern.FindString(head); date != "" {
		draft.SegmentDate = strings.TrimSpace(date)
		draft.Title = draft.SegmentDate
	}

	salHead := chunk
	if len(salHead) > 300 {
		salHead = salHead[:300]
	}
	if loc := salutationPattern.FindStringIndex(salHead); loc != nil {
		after := chunk[loc[1]:min(len(chunk), loc[1]+80)]
		if m := recipientPattern.FindStringSubmatch(after); m != nil {
			draft.Recipient = strings.Trim(m[1], " ,!\n")
		}
	}

	if draft.Title == "" {
		draft.Title = "Letter"
	}

	return draft
}

func segmentPaper(text string) []segments.Draft {
	hits := sectionPattern.FindAllStringIndex(text, -1)

	if len(hits) == 0 {
		return []segments.Draft{{
			Kind:     segments.KindSection,
			Title:    "Full paper",
			Content:  strings.TrimSpace(text),
			Ordering: 0,
		}}
	}

	var drafts []segments.Draft

	if hits[0][0] > 0 {
		if preamble := strings.TrimSpace(text[:hits[0][0]]); preamble != "" {
			drafts = append(drafts, segments.Draft{
				Kind:     segments.KindSection,
				Title:    "Preamble",
				Content:  preamble,
				Ordering: 0,
			})
		}
	}

	for i, hit := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1][0]
		}

		content := strings.TrimSpace(text[hit[0]:end])
		if content == "" {
			continue
		}

		titleLine := firstLine(content)
		number := extractNumber(titleLine)

		theorems := theoremPattern.FindAllStringIndex(content, -1)
		if len(theorems) > 1 {
			for ti, thm := range theorems {
				thmEnd := len(content)
				if ti+1 < len(theorems) {
					thmEnd = theorems[ti+1][0]
				}

				thmText := strings.TrimSpace(content[thm[0]:thmEnd])
				drafts = append(drafts, segments.Draft{
					Kind:     segments.KindTheorem,
					Title:    titleLine + " > " + firstLine(thmText),
					Content:  thmText,
					Number:   number,
					Ordering: len(drafts),
				})
			}
			continue
		}

		drafts = append(drafts, segments.Draft{
			Kind:     segments.KindSection,
			Title:    titleLine,
			Content:  content,
			Number:   number,
			Ordering: len(drafts),
		})
	}

	return drafts
}

func segmentBook(text string) []segments.Draft {
	hits := chapterPattern.FindAllStringIndex(text, -1)

	if len(hits) == 0 {
		return []segments.Draft{{
			Kind:     segments.KindChapter,
			Title:    "Full text",
			Content:  strings.TrimSpace(text),
			Ordering: 0,
		}}
	}

	var drafts []segments.Draft

	if hits[0][0] > 0 {
		if front := strings.TrimSpace(text[:hits[0][0]]); front != "" {
			drafts = append(drafts, segments.Draft{
				Kind:     segments.KindChapter,
				Title:    "Front matter",
				Content:  front,
				Ordering: 0,
			})
		}
	}

	for i, hit := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1][0]
		}

		content := strings.TrimSpace(text[hit[0]:end])
		if content == "" {
			continue
		}

		titleLine := firstLine(content)
		drafts = append(drafts, segments.Draft{
			Kind:     segments.KindChapter,
			Title:    titleLine,
			Content:  content,
			Number:   extractNumber(titleLine),
			Ordering: len(drafts),
		})
	}

	return drafts
}

func lineStart(text string, pos int) int {
	if idx := strings.LastIndexByte(text[:pos], '\n'); idx >= 0 {
		return idx + 1
	}
	return 0
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}

func extractNumber(titleLine string) *string {
	if n := numberPattern.FindString(titleLine); n != "" {
		return &n
	}
	return nil
}
