package catalog

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/avolkmann/cantor/pkg/query"
	"github.com/avolkmann/cantor/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sources", "s").
	Project("id", "ID").
	Project("slug", "Slug").
	Project("title", "Title").
	Project("author", "Author").
	Project("date", "Date").
	Project("tier", "Tier").
	Project("weight", "Weight").
	Project("language", "Language").
	Project("format", "Format").
	Project("status", "Status").
	Project("content_tags", "ContentTags").
	Project("parallel_group", "ParallelGroup").
	Project("page_count", "PageCount").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "Tier"},
	{Field: "Slug"},
}

// Filters contains optional filtering criteria for source queries.
// Nil fields are ignored. TierMin/TierMax bound an inclusive tier range.
type Filters struct {
	TierMin  *int    `json:"tier_min,omitempty"`
	TierMax  *int    `json:"tier_max,omitempty"`
	Status   *string `json:"status,omitempty"`
	Language *string `json:"language,omitempty"`
	Format   *string `json:"format,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereBetween("Tier", f.TierMin, f.TierMax).
		WhereEquals("Status", f.Status).
		WhereEquals("Language", f.Language).
		WhereEquals("Format", f.Format)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if tm := values.Get("tier_min"); tm != "" {
		if v, err := strconv.Atoi(tm); err == nil {
			f.TierMin = &v
		}
	}

	if tm := values.Get("tier_max"); tm != "" {
		if v, err := strconv.Atoi(tm); err == nil {
			f.TierMax = &v
		}
	}

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if l := values.Get("language"); l != "" {
		f.Language = &l
	}

	if fm := values.Get("format"); fm != "" {
		f.Format = &fm
	}

	return f
}

func scanSource(s repository.Scanner) (Source, error) {
	var src Source
	var tags []byte

	err := s.Scan(
		&src.ID,
		&src.Slug,
		&src.Title,
		&src.Author,
		&src.Date,
		&src.Tier,
		&src.Weight,
		&src.Language,
		&src.Format,
		&src.Status,
		&tags,
		&src.ParallelGroup,
		&src.PageCount,
		&src.CreatedAt,
		&src.UpdatedAt,
	)
	if err != nil {
		return src, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &src.ContentTags); err != nil {
			return src, err
		}
	}
	if src.ContentTags == nil {
		src.ContentTags = []string{}
	}

	return src, nil
}
