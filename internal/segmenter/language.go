package segmenter

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Texts shorter than this are unreliable to detect; the corpus default is German.
const minDetectionChars = 20

const defaultLanguage = "de"

// DetectLanguage returns the ISO 639-1 code of the dominant language in text.
// Short or undetectable text defaults to German, the corpus's primary language.
func DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if len(text) < minDetectionChars {
		return defaultLanguage
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return defaultLanguage
	}

	code := info.Lang.Iso6391()
	if code == "" {
		return defaultLanguage
	}
	return code
}
