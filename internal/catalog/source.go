// Package catalog implements the source catalog domain: the registry of
// documents about Cantor, their reliability tiers, acquisition lifecycle,
// and raw/extracted text storage.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Format classes for cataloged sources.
const (
	FormatLetter  = "letter"
	FormatPaper   = "paper"
	FormatBook    = "book"
	FormatArticle = "article"
	FormatWeb     = "web"
)

// Source represents a cataloged document with its tier, weight, and acquisition state.
// Weight is always derived from Tier via WeightForTier, never set independently.
type Source struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Date          string    `json:"date"`
	Tier          int       `json:"tier"`
	Weight        float64   `json:"weight"`
	Language      string    `json:"language"`
	Format        string    `json:"format"`
	Status        string    `json:"status"`
	ContentTags   []string  `json:"content_tags"`
	ParallelGroup *string   `json:"parallel_group"`
	PageCount     *int      `json:"page_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterCommand carries the data needed to register a new source.
// Weight is computed from Tier; Status starts at not-acquired.
type RegisterCommand struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Date          string   `json:"date"`
	Tier          int      `json:"tier"`
	Language      string   `json:"language"`
	Format        string   `json:"format"`
	ContentTags   []string `json:"content_tags"`
	ParallelGroup *string  `json:"parallel_group"`
}

// UploadCommand carries raw acquired bytes for a source.
// PageCount is optional and may be extracted by the caller via pdfcpu.
type UploadCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	PageCount   *int
}

// SeedResult reports the outcome of a seed operation.
type SeedResult struct {
	Registered int `json:"registered"`
	Skipped    int `json:"skipped"`
}

func validFormat(format string) bool {
	switch format {
	case FormatLetter, FormatPaper, FormatBook, FormatArticle, FormatWeb:
		return true
	}
	return false
}
