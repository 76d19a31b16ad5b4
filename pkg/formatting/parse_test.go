package formatting_test

import (
	"errors"
	"testing"

	"github.com/avolkmann/cantor/pkg/formatting"
)

type payload struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func TestParseDirectJSON(t *testing.T) {
	result, err := formatting.Parse[payload](`{"name": "cantor", "score": 0.9}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name != "cantor" || result.Score != 0.9 {
		t.Errorf("got %+v", result)
	}
}

func TestParseCodeFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"json_fence", "Here is the result:\n```json\n{\"name\": \"cantor\", \"score\": 0.9}\n```"},
		{"bare_fence", "```\n{\"name\": \"cantor\", \"score\": 0.9}\n```"},
		{"padded", "  \n```json\n  {\"name\": \"cantor\", \"score\": 0.9}  \n```\ntrailing prose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := formatting.Parse[payload](tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Name != "cantor" {
				t.Errorf("got %+v", result)
			}
		})
	}
}

func TestParseFailure(t *testing.T) {
	for _, content := range []string{"", "not json at all", "```\nstill not json\n```"} {
		if _, err := formatting.Parse[payload](content); !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("content %q: got %v, want ErrParseFailed", content, err)
		}
	}
}
