package segments

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/pkg/query"
	"github.com/avolkmann/cantor/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "segments", "seg").
	Project("id", "ID").
	Project("source_id", "SourceID").
	Project("kind", "Kind").
	Project("title", "Title").
	Project("content", "Content").
	Project("content_hash", "ContentHash").
	Project("language", "Language").
	Project("sender", "Sender").
	Project("recipient", "Recipient").
	Project("segment_date", "SegmentDate").
	Project("number", "Number").
	Project("ordering", "Ordering").
	Project("created_at", "CreatedAt").
	Join("public", "sources", "src", "JOIN", "seg.source_id = src.id").
	Project("slug", "SourceSlug").
	Project("title", "SourceTitle").
	Project("tier", "Tier").
	Project("weight", "Weight")

var defaultSort = []query.SortField{
	{Field: "SourceSlug"},
	{Field: "Ordering"},
}

// Filters contains optional filtering criteria for segment queries.
type Filters struct {
	SourceID *uuid.UUID `json:"source_id,omitempty"`
	Kind     *string    `json:"kind,omitempty"`
	Language *string    `json:"language,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("SourceID", f.SourceID).
		WhereEquals("Kind", f.Kind).
		WhereEquals("Language", f.Language)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if sid := values.Get("source_id"); sid != "" {
		if id, err := uuid.Parse(sid); err == nil {
			f.SourceID = &id
		}
	}

	if k := values.Get("kind"); k != "" {
		f.Kind = &k
	}

	if l := values.Get("language"); l != "" {
		f.Language = &l
	}

	return f
}

func scanSegment(s repository.Scanner) (Segment, error) {
	var seg Segment
	err := s.Scan(
		&seg.ID,
		&seg.SourceID,
		&seg.Kind,
		&seg.Title,
		&seg.Content,
		&seg.ContentHash,
		&seg.Language,
		&seg.Sender,
		&seg.Recipient,
		&seg.SegmentDate,
		&seg.Number,
		&seg.Ordering,
		&seg.CreatedAt,
		&seg.SourceSlug,
		&seg.SourceTitle,
		&seg.Tier,
		&seg.Weight,
	)
	return seg, err
}
