package annotations

import (
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"github.com/avolkmann/cantor/pkg/query"
	"github.com/avolkmann/cantor/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "annotations", "ann").
	Project("id", "ID").
	Project("segment_id", "SegmentID").
	Project("scores", "Scores").
	Project("subtags", "Subtags").
	Project("topics", "Topics").
	Project("psych_state", "PsychState").
	Project("confidence", "Confidence").
	Project("tagger", "Tagger").
	Project("contradiction_ref", "ContradictionRef").
	Project("contradiction_note", "ContradictionNote").
	Project("notes", "Notes").
	Project("created_at", "CreatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt"},
	{Field: "ID"},
}

// Filters contains optional filtering criteria for annotation queries.
type Filters struct {
	SegmentID *uuid.UUID `json:"segment_id,omitempty"`
	Tagger    *string    `json:"tagger,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("SegmentID", f.SegmentID).
		WhereEquals("Tagger", f.Tagger)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if sid := values.Get("segment_id"); sid != "" {
		if id, err := uuid.Parse(sid); err == nil {
			f.SegmentID = &id
		}
	}

	if t := values.Get("tagger"); t != "" {
		f.Tagger = &t
	}

	return f
}

func scanAnnotation(s repository.Scanner) (Annotation, error) {
	var (
		ann     Annotation
		scores  []byte
		subtags []byte
		topics  []byte
	)

	err := s.Scan(
		&ann.ID,
		&ann.SegmentID,
		&scores,
		&subtags,
		&topics,
		&ann.PsychState,
		&ann.Confidence,
		&ann.Tagger,
		&ann.ContradictionRef,
		&ann.ContradictionNote,
		&ann.Notes,
		&ann.CreatedAt,
	)
	if err != nil {
		return ann, err
	}

	if err := json.Unmarshal(scores, &ann.Scores); err != nil {
		return ann, err
	}
	if err := json.Unmarshal(subtags, &ann.Subtags); err != nil {
		return ann, err
	}
	if err := json.Unmarshal(topics, &ann.Topics); err != nil {
		return ann, err
	}

	return ann, nil
}
