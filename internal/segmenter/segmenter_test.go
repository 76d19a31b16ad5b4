package segmenter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/avolkmann/cantor/internal/catalog"
	"github.com/avolkmann/cantor/internal/segmenter"
	"github.com/avolkmann/cantor/internal/segments"
)

const twoLetters = `Halle, den 5. November 1882

Lieber Herr Dedekind!

Ich danke Ihnen herzlich für Ihren Brief. Die Frage nach der Mächtigkeit
des Kontinuums beschäftigt mich unablässig.

Ihr ergebener
Georg Cantor

Halle, den 12. Dezember 1882

Lieber Herr Dedekind!

Ich habe nun einen Beweis gefunden, der mir vollständig erscheint.

Ihr ergebener
Georg Cantor`

const sectionedPaper = `Über eine elementare Frage der Mannigfaltigkeitslehre.

§ 1

Die Gesamtheit aller reellen Zahlen ist nicht abzählbar. Der Beweis
beruht auf dem Diagonalverfahren.

§ 2

Satz. Für jede Menge M hat die Potenzmenge eine größere Mächtigkeit.
Beweis. Man betrachte die Diagonalmenge D.
Satz. Es gibt keine größte Mächtigkeit.
Beweis. Folgt unmittelbar aus dem Vorigen.`

func TestSegmentEmptyDocument(t *testing.T) {
	src := catalog.Source{Format: catalog.FormatLetter}

	for _, text := range []string{"", "   ", "\n\t\n"} {
		if _, err := segmenter.Segment(src, text); !errors.Is(err, segmenter.ErrEmptyDocument) {
			t.Errorf("text %q: got %v, want ErrEmptyDocument", text, err)
		}
	}
}

func TestSegmentAlwaysProducesDrafts(t *testing.T) {
	texts := []string{
		"A single undifferentiated paragraph about transfinite numbers.",
		twoLetters,
		sectionedPaper,
	}
	formats := []string{
		catalog.FormatLetter,
		catalog.FormatPaper,
		catalog.FormatBook,
		catalog.FormatArticle,
		catalog.FormatWeb,
	}

	for _, format := range formats {
		for _, text := range texts {
			drafts, err := segmenter.Segment(catalog.Source{Format: format}, text)
			if err != nil {
				t.Fatalf("format %s: unexpected error: %v", format, err)
			}
			if len(drafts) == 0 {
				t.Fatalf("format %s: no drafts produced", format)
			}

			for i, d := range drafts {
				if strings.TrimSpace(d.Content) == "" {
					t.Errorf("format %s: draft %d has empty content", format, i)
				}
				if d.Ordering != i {
					t.Errorf("format %s: draft %d has ordering %d", format, i, d.Ordering)
				}
				if d.Language == "" {
					t.Errorf("format %s: draft %d has empty language", format, i)
				}
			}
		}
	}
}

func TestSegmentLetters(t *testing.T) {
	src := catalog.Source{Format: catalog.FormatLetter}

	drafts, err := segmenter.Segment(src, twoLetters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(drafts))
	}

	for i, d := range drafts {
		if d.Kind != segments.KindLetter {
			t.Errorf("draft %d: kind %s, want letter", i, d.Kind)
		}
		if d.Recipient == "" {
			t.Errorf("draft %d: recipient not extracted", i)
		}
		if d.SegmentDate == "" {
			t.Errorf("draft %d: date not extracted", i)
		}
	}

	if drafts[0].SegmentDate == drafts[1].SegmentDate {
		t.Error("both letters carry the same date")
	}
}

func TestSegmentPaperSections(t *testing.T) {
	src := catalog.Source{Format: catalog.FormatPaper}

	drafts, err := segmenter.Segment(src, sectionedPaper)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var preamble, sections, theorems int
	for _, d := range drafts {
		switch {
		case d.Title == "Preamble":
			preamble++
		case d.Kind == segments.KindTheorem:
			theorems++
		case d.Kind == segments.KindSection:
			sections++
		}
	}

	if preamble != 1 {
		t.Errorf("got %d preamble drafts, want 1", preamble)
	}
	if sections == 0 {
		t.Error("no section drafts produced")
	}
	if theorems < 2 {
		t.Errorf("got %d theorem drafts, want at least 2", theorems)
	}
}

func TestSegmentUnstructuredLetterFallback(t *testing.T) {
	src := catalog.Source{Format: catalog.FormatLetter}

	drafts, err := segmenter.Segment(src, "Ein Text ohne jede Anrede oder Gliederung.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
	if drafts[0].Title != "Complete letter" {
		t.Errorf("got title %q, want %q", drafts[0].Title, "Complete letter")
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short_defaults_german", "Satz 1.", "de"},
		{
			"german",
			"Die Gesamtheit aller reellen Zahlen ist nicht abzählbar, wie ich im Jahre 1874 bewiesen habe.",
			"de",
		},
		{
			"english",
			"The collection of all real numbers cannot be counted, as I proved in my paper of 1874.",
			"en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmenter.DetectLanguage(tt.text); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
