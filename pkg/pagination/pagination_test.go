package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/avolkmann/cantor/pkg/pagination"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		req      pagination.PageRequest
		wantPage int
		wantSize int
	}{
		{"defaults", pagination.PageRequest{}, 1, 20},
		{"negative_page", pagination.PageRequest{Page: -3, PageSize: 10}, 1, 10},
		{"oversized", pagination.PageRequest{Page: 2, PageSize: 500}, 2, 100},
		{"in_range", pagination.PageRequest{Page: 4, PageSize: 50}, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(testConfig())
			if tt.req.Page != tt.wantPage {
				t.Errorf("got page %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantSize {
				t.Errorf("got page size %d, want %d", tt.req.PageSize, tt.wantSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("page_size", "40")
	values.Set("search", "dedekind")
	values.Set("sort", "-tier,slug")

	req := pagination.PageRequestFromQuery(values, testConfig())

	if req.Page != 3 || req.PageSize != 40 {
		t.Errorf("got page %d size %d", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "dedekind" {
		t.Error("search not parsed")
	}
	if len(req.Sort) != 2 || !req.Sort[0].Descending || req.Sort[0].Field != "tier" {
		t.Errorf("sort not parsed: %v", req.Sort)
	}
	if req.Offset() != 80 {
		t.Errorf("got offset %d, want 80", req.Offset())
	}
}

func TestSortFieldsUnmarshalString(t *testing.T) {
	var req pagination.PageRequest
	if err := json.Unmarshal([]byte(`{"sort": "title,-tier"}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(req.Sort) != 2 {
		t.Fatalf("got %d sort fields, want 2", len(req.Sort))
	}
	if req.Sort[1].Field != "tier" || !req.Sort[1].Descending {
		t.Errorf("got %v", req.Sort)
	}
}

func TestSortFieldsUnmarshalArray(t *testing.T) {
	var req pagination.PageRequest
	data := `{"sort": [{"Field": "slug", "Descending": true}]}`
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(req.Sort) != 1 || !req.Sort[0].Descending {
		t.Errorf("got %v", req.Sort)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		wantPages int
	}{
		{"exact", 100, 20, 5},
		{"remainder", 101, 20, 6},
		{"empty", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantPages {
				t.Errorf("got %d total pages, want %d", result.TotalPages, tt.wantPages)
			}
		})
	}
}

func TestNewPageResultNilData(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)
	if result.Data == nil {
		t.Error("nil data should serialize as an empty array")
	}
}
