package redis

import (
	"testing"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/db"
)

// --- buildQueryString ---

func TestBuildQueryString_TermsAcrossFields(t *testing.T) {
	q := &db.TextQuery{
		Terms:      []string{"ldo", "regulator"},
		TextFields: []string{"name", "description"},
	}
	got := buildQueryString(q)
	want := "@name|description:(ldo|regulator)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildQueryString_MatchAllWhenEmpty(t *testing.T) {
	if got := buildQueryString(&db.TextQuery{}); got != "*" {
		t.Fatalf("got %q, want *", got)
	}
}

func TestBuildQueryString_FiltersOnlyMatchInsideFilters(t *testing.T) {
	q := &db.TextQuery{
		Filters: []db.Filter{db.TagFilter("category", "regulator")},
	}
	got := buildQueryString(q)
	want := "@category:{regulator}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildQueryString_CombinesTermsAndFilters(t *testing.T) {
	max := 5.0
	q := &db.TextQuery{
		Terms:      []string{"ldo"},
		TextFields: []string{"name"},
		Filters: []db.Filter{
			db.TagFilter("mounting", "smd"),
			db.RangeFilter("unit_price", nil, &max),
			db.PositiveFilter("quantity_available"),
		},
	}
	got := buildQueryString(q)
	want := "@name:(ldo) @mounting:{smd} @unit_price:[-inf 5] @quantity_available:[(0 +inf]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildQueryString_EscapesTerms(t *testing.T) {
	q := &db.TextQuery{
		Terms:      []string{"mcp1700-3302e/to"},
		TextFields: []string{"part_number"},
	}
	got := buildQueryString(q)
	want := `@part_number:(mcp1700\-3302e/to)`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildQueryString_SkipsBlankTerms(t *testing.T) {
	q := &db.TextQuery{
		Terms:      []string{"  ", ""},
		TextFields: []string{"name"},
	}
	if got := buildQueryString(q); got != "*" {
		t.Fatalf("got %q, want *", got)
	}
}

// --- buildNumericFilter ---

func TestBuildNumericFilter_InclusiveRange(t *testing.T) {
	lo, hi := 3.135, 3.465
	got := buildNumericFilter(db.Filter{Field: "voltage", Min: &lo, Max: &hi})
	want := "@voltage:[3.135 3.465]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBuildNumericFilter_ExclusiveMin(t *testing.T) {
	got := buildNumericFilter(db.PositiveFilter("quantity_available"))
	want := "@quantity_available:[(0 +inf]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// --- tag escaping ---

func TestBuildTagFilter_EscapesSpecials(t *testing.T) {
	got := buildTagFilter("category", "op-amp")
	want := `@category:{op\-amp}`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// --- isRedisErr helpers ---

func TestContainsIgnoreCase(t *testing.T) {
	if !containsIgnoreCase("Index already exists", "index already exists") {
		t.Fatal("expected case-insensitive match")
	}
	if containsIgnoreCase("short", "much longer needle") {
		t.Fatal("expected no match when needle exceeds haystack")
	}
}
