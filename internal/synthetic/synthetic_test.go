package synthetic_test

import (
	"strings"
	"testing"

	"github.com/avolkmann/cantor/internal/export"
	"github.com/avolkmann/cantor/internal/synthetic"
)

func TestDialogueRecords(t *testing.T) {
	dialogues := synthetic.Dialogues()
	records := synthetic.DialogueRecords()

	if len(records) != len(dialogues) {
		t.Fatalf("got %d records for %d dialogues", len(records), len(dialogues))
	}

	for i, rec := range records {
		if rec.System != export.SystemPrompt {
			t.Errorf("record %d missing the persona system prompt", i)
		}
		if rec.Prompt == "" || rec.Response == "" {
			t.Errorf("record %d has an empty turn", i)
		}
		if !strings.HasPrefix(rec.Provenance.Source, "synthetic-") {
			t.Errorf("record %d has source %q", i, rec.Provenance.Source)
		}
		if rec.Provenance.Tier != 1 || rec.Provenance.Weight != 1.0 {
			t.Errorf("record %d: dialogues carry tier 1 weight 1.0, got tier %d weight %v",
				i, rec.Provenance.Tier, rec.Provenance.Weight)
		}
	}
}

func TestDialoguesGrounded(t *testing.T) {
	for i, d := range synthetic.Dialogues() {
		if len(d.References) == 0 {
			t.Errorf("dialogue %d has no references", i)
		}
		if d.Dimension == "" {
			t.Errorf("dialogue %d has no dimension", i)
		}
	}
}

func TestNegativeRecords(t *testing.T) {
	pairs := synthetic.ContrastivePairs()
	records := synthetic.NegativeRecords()

	if len(records) != len(pairs)*2 {
		t.Fatalf("got %d records for %d pairs, want 2 per pair", len(records), len(pairs))
	}

	for i, rec := range records {
		if rec.Provenance.Tier != 8 || rec.Provenance.Weight != 0.0 {
			t.Errorf("record %d: negatives carry tier 8 weight 0.0, got tier %d weight %v",
				i, rec.Provenance.Tier, rec.Provenance.Weight)
		}
		if !strings.HasPrefix(rec.Provenance.Source, "contrastive-") {
			t.Errorf("record %d has source %q", i, rec.Provenance.Source)
		}
	}

	// pairs alternate correction then rejection
	for i := 0; i < len(records); i += 2 {
		correction, rejection := records[i], records[i+1]

		if correction.Prompt != pairs[i/2].Prompt {
			t.Errorf("pair %d: correction prompt %q does not match", i/2, correction.Prompt)
		}
		if !strings.HasPrefix(rejection.Prompt, "I've read that ") {
			t.Errorf("pair %d: rejection prompt %q does not restate the myth", i/2, rejection.Prompt)
		}
		if !strings.HasPrefix(rejection.Response, "No, that is not accurate.") {
			t.Errorf("pair %d: rejection response %q does not refute", i/2, rejection.Response)
		}
	}
}

func TestNegativeRecordsSerializable(t *testing.T) {
	for _, format := range export.Formats {
		for i, rec := range synthetic.NegativeRecords() {
			line, err := export.Serialize(rec, format)
			if err != nil {
				t.Fatalf("format %s record %d: %v", format, i, err)
			}
			parsed, err := export.Parse(line, format)
			if err != nil {
				t.Fatalf("format %s record %d: %v", format, i, err)
			}
			if parsed.Response != rec.Response {
				t.Errorf("format %s record %d: response not recovered", format, i)
			}
		}
	}
}
