package db

// TextQuery is the input for a full-text catalog search.
type TextQuery struct {
	IndexName string
	// Terms are OR-matched across TextFields. Empty terms mean match-all
	// within whatever Filters are present.
	Terms      []string
	TextFields []string
	Filters    []Filter
	Limit      int
	// ReturnFields limits the hash fields returned per hit (empty = all).
	ReturnFields []string
}

// Filter narrows the candidate set without affecting relative text scoring:
// either an exact TAG match or a numeric range. Bounds are inclusive unless
// the corresponding Exclusive flag is set; a nil bound is unbounded.
type Filter struct {
	Field        string
	Tag          string
	Min          *float64
	Max          *float64
	MinExclusive bool
	MaxExclusive bool
}

// IsTag reports whether this is an exact tag-match filter.
func (f Filter) IsTag() bool { return f.Tag != "" }

// TagFilter creates an exact-match filter.
func TagFilter(field, value string) Filter {
	return Filter{Field: field, Tag: value}
}

// RangeFilter creates an inclusive numeric range filter.
func RangeFilter(field string, min, max *float64) Filter {
	return Filter{Field: field, Min: min, Max: max}
}

// PositiveFilter creates a strictly-positive numeric filter (value > 0).
func PositiveFilter(field string) Filter {
	zero := 0.0
	return Filter{Field: field, Min: &zero, MinExclusive: true}
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
