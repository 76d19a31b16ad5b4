package export

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Supported training-record formats.
const (
	FormatLlamaChat   = "llama-chat"
	FormatChatML      = "chatml"
	FormatOpenAIJSONL = "openai-jsonl"
	FormatAlpaca      = "alpaca"
)

// Formats lists the supported formats in canonical order.
var Formats = []string{
	FormatLlamaChat,
	FormatChatML,
	FormatOpenAIJSONL,
	FormatAlpaca,
}

// ValidFormat reports whether f is a supported training-record format.
func ValidFormat(f string) bool {
	return slices.Contains(Formats, f)
}

// Provenance records where a training record came from. Downstream
// evaluation tooling depends on this field being present in every
// record regardless of format.
type Provenance struct {
	Source string  `json:"source"`
	Tier   int     `json:"tier"`
	Weight float64 `json:"weight"`
}

// Message is one turn of a chat-style training record.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TrainingRecord is the normalized form of a serialized record,
// independent of format. It is what round-trip parsing recovers.
type TrainingRecord struct {
	System     string     `json:"system"`
	Prompt     string     `json:"prompt"`
	Response   string     `json:"response"`
	Provenance Provenance `json:"provenance"`
}

// The three chat formats share one wire shape and differ only in the
// conventions the downstream trainer applies to it.
type chatRecord struct {
	Messages   []Message  `json:"messages"`
	Provenance Provenance `json:"provenance"`
}

type alpacaRecord struct {
	Instruction string     `json:"instruction"`
	Input       string     `json:"input"`
	Output      string     `json:"output"`
	System      string     `json:"system"`
	Provenance  Provenance `json:"provenance"`
}

// Serialize renders a normalized record into the given format as one
// JSON line without the trailing newline.
func Serialize(rec TrainingRecord, format string) ([]byte, error) {
	switch format {
	case FormatLlamaChat, FormatChatML, FormatOpenAIJSONL:
		return json.Marshal(chatRecord{
			Messages: []Message{
				{Role: "system", Content: rec.System},
				{Role: "user", Content: rec.Prompt},
				{Role: "assistant", Content: rec.Response},
			},
			Provenance: rec.Provenance,
		})
	case FormatAlpaca:
		return json.Marshal(alpacaRecord{
			Instruction: rec.Prompt,
			Input:       "",
			Output:      rec.Response,
			System:      rec.System,
			Provenance:  rec.Provenance,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// Parse recovers the normalized record from one serialized JSON line.
// It is the inverse of Serialize for every supported format.
func Parse(data []byte, format string) (*TrainingRecord, error) {
	switch format {
	case FormatLlamaChat, FormatChatML, FormatOpenAIJSONL:
		var cr chatRecord
		if err := json.Unmarshal(data, &cr); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}

		rec := &TrainingRecord{Provenance: cr.Provenance}
		for _, m := range cr.Messages {
			switch m.Role {
			case "system":
				rec.System = m.Content
			case "user":
				rec.Prompt = m.Content
			case "assistant":
				rec.Response = m.Content
			}
		}
		if rec.Response == "" {
			return nil, fmt.Errorf("%w: missing assistant turn", ErrMalformedRecord)
		}
		return rec, nil
	case FormatAlpaca:
		var ar alpacaRecord
		if err := json.Unmarshal(data, &ar); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		if ar.Output == "" {
			return nil, fmt.Errorf("%w: missing output", ErrMalformedRecord)
		}
		return &TrainingRecord{
			System:     ar.System,
			Prompt:     ar.Instruction,
			Response:   ar.Output,
			Provenance: ar.Provenance,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}
