package query_test

import (
	"testing"

	"github.com/avolkmann/cantor/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "sources", "src").
		Project("id", "id").
		Project("slug", "slug").
		Project("tier", "tier").
		Project("title", "title")
}

func TestBuildWithoutConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("got %d args, want 0", len(args))
	}
}

func TestBuildParameterNumbering(t *testing.T) {
	slug := "grundlagen-1883"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("tier", 1).
		WhereContains("slug", &slug).
		Build()

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src" +
		" WHERE src.tier = $1 AND src.slug ILIKE $2"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("got %d args, want 2", len(args))
	}
	if args[1] != "%grundlagen-1883%" {
		t.Errorf("got arg %v, want wrapped pattern", args[1])
	}
}

func TestBuildNilConditionsSkipped(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("tier", nil).
		WhereContains("slug", nil).
		WhereBetween("tier", nil, 5).
		Build()

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("got %d args, want 0", len(args))
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(),
		query.SortField{Field: "slug"},
	).BuildPage(3, 25)

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src" +
		" ORDER BY src.slug ASC LIMIT 25 OFFSET 50"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}

func TestBuildCount(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("tier", 2).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.sources src WHERE src.tier = $1"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("got %d args, want 1", len(args))
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("id", "abc")

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src WHERE src.id = $1"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("got args %v", args)
	}
}

func TestWhereIn(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereIn("tier", []any{1, 2, 3}).
		Build()

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src" +
		" WHERE src.tier IN ($1, $2, $3)"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Errorf("got %d args, want 3", len(args))
	}
}

func TestWhereSearch(t *testing.T) {
	search := "cantor"
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(&search, "slug", "title").
		Build()

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src" +
		" WHERE (src.slug ILIKE $1 OR src.title ILIKE $2)"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("got %d args, want 2", len(args))
	}
}

func TestOrderByOverridesDefault(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(),
		query.SortField{Field: "slug"},
	).OrderByFields([]query.SortField{{Field: "tier", Descending: true}}).Build()

	want := "SELECT src.id, src.slug, src.tier, src.title FROM public.sources src" +
		" ORDER BY src.tier DESC"
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		input string
		want  []query.SortField
	}{
		{"", nil},
		{"title", []query.SortField{{Field: "title"}}},
		{"title,-tier", []query.SortField{{Field: "title"}, {Field: "tier", Descending: true}}},
		{" title , -tier ", []query.SortField{{Field: "title"}, {Field: "tier", Descending: true}}},
	}

	for _, tt := range tests {
		got := query.ParseSortFields(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%q: got %v, want %v", tt.input, got, tt.want)
			}
		}
	}
}
