package intent

import (
	"fmt"
	"strings"
)

// MaxTextLength is the maximum allowed free-text input length.
const MaxTextLength = 600

// Well-known attribute names shared by the parsers and the query builder.
const (
	AttrVoltage  = "voltage"
	AttrMounting = "mounting"
)

// Mounting attribute values.
const (
	MountingSMD         = "smd"
	MountingThroughHole = "tht"
)

// Intent is a structured search intent derived from user input.
type Intent struct {
	keywords       []string
	category       string
	attributes     map[string]Constraint
	maxPrice       *float64
	requireInStock bool
	rawText        string
}

// New validates and normalizes a search intent.
// Keywords are deduplicated preserving first occurrence. If rawText is
// non-empty and keywords end up empty, keywords fall back to the
// whitespace-tokenized rawText so the intent is never term-less.
func New(
	keywords []string,
	category string,
	attributes map[string]Constraint,
	maxPrice *float64,
	requireInStock bool,
	rawText string,
) (Intent, error) {
	if len(rawText) > MaxTextLength {
		return Intent{}, fmt.Errorf("input text too long (max %d chars)", MaxTextLength)
	}
	if maxPrice != nil && *maxPrice <= 0 {
		return Intent{}, fmt.Errorf("max price must be positive, got %g", *maxPrice)
	}

	kw := dedupe(keywords)
	if len(kw) == 0 && strings.TrimSpace(rawText) != "" {
		kw = strings.Fields(strings.ToLower(rawText))
	}

	attrs := make(map[string]Constraint, len(attributes))
	for name, c := range attributes {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || c.IsZero() {
			continue
		}
		attrs[name] = c
	}

	return Intent{
		keywords:       kw,
		category:       strings.ToLower(strings.TrimSpace(category)),
		attributes:     attrs,
		maxPrice:       maxPrice,
		requireInStock: requireInStock,
		rawText:        rawText,
	}, nil
}

// Keywords returns the ordered search terms.
func (i Intent) Keywords() []string { return i.keywords }

// Category returns the recognized category, or "" when none was found.
func (i Intent) Category() string { return i.category }

// Attributes returns the attribute constraints keyed by attribute name.
func (i Intent) Attributes() map[string]Constraint { return i.attributes }

// MaxPrice returns the price ceiling (nil when unset).
func (i Intent) MaxPrice() *float64 { return i.maxPrice }

// RequireInStock reports whether only in-stock parts were requested.
func (i Intent) RequireInStock() bool { return i.requireInStock }

// RawText returns the original user input, preserved for audit and fallback.
func (i Intent) RawText() string { return i.rawText }

// IsEmpty reports whether the intent carries no terms, category, or filters.
func (i Intent) IsEmpty() bool {
	return len(i.keywords) == 0 && i.category == "" && len(i.attributes) == 0 &&
		i.maxPrice == nil && !i.requireInStock
}

func dedupe(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
