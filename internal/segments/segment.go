// Package segments implements segment persistence: the addressable training
// units derived from acquired sources, with ordering, structural metadata,
// and symmetric parallel-text links.
package segments

import (
	"time"

	"github.com/google/uuid"
)

// Segment kinds.
const (
	KindLetter  = "letter"
	KindSection = "section"
	KindTheorem = "theorem"
	KindChapter = "chapter"
)

// Segment is an atomic training unit owned by exactly one source.
// Ordering is unique and contiguous from zero within the source.
// Source fields are joined from the catalog for sampling and export.
type Segment struct {
	ID          uuid.UUID `json:"id"`
	SourceID    uuid.UUID `json:"source_id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"content_hash"`
	Language    string    `json:"language"`
	Sender      string    `json:"sender,omitempty"`
	Recipient   string    `json:"recipient,omitempty"`
	SegmentDate string    `json:"segment_date,omitempty"`
	Number      *string   `json:"number,omitempty"`
	Ordering    int       `json:"ordering"`
	CreatedAt   time.Time `json:"created_at"`

	SourceSlug  string  `json:"source_slug"`
	SourceTitle string  `json:"source_title"`
	Tier        int     `json:"tier"`
	Weight      float64 `json:"weight"`
}

// Draft is a segment produced by the segmenter before persistence.
type Draft struct {
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Language    string  `json:"language"`
	Sender      string  `json:"sender,omitempty"`
	Recipient   string  `json:"recipient,omitempty"`
	SegmentDate string  `json:"segment_date,omitempty"`
	Number      *string `json:"number,omitempty"`
	Ordering    int     `json:"ordering"`
}

// Link is a symmetric parallel-text relation between two segments.
type Link struct {
	SegmentID  uuid.UUID `json:"segment_id"`
	ParallelID uuid.UUID `json:"parallel_id"`
}

func validKind(kind string) bool {
	switch kind {
	case KindLetter, KindSection, KindTheorem, KindChapter:
		return true
	}
	return false
}
