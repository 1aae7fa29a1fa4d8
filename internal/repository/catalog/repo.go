package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/db"
	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain"
	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// voltageTolerance widens a point-value voltage constraint into a range so
// nominal ratings like 3.3V still match parts indexed as 3.28V or 3.35V.
const voltageTolerance = 0.05

// store is the consumer interface for the catalog (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Repo implements usecase/advisor.Catalog over a full-text search store.
type Repo struct {
	store        store
	keyPrefix    string
	queryTimeout time.Duration
}

// New creates a catalog repository. keyPrefix namespaces all part keys
// and the index, e.g. "advisor:". queryTimeout bounds every store query;
// zero disables the bound.
func New(s store, keyPrefix string, queryTimeout time.Duration) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, queryTimeout: queryTimeout}
}

// queryContext derives a deadline-bound context for a single store query.
func (r *Repo) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// Search returns up to limit products matching the intent, ordered by
// descending text relevance. Every store failure is reported as
// domain.ErrCatalogUnavailable so callers can distinguish an unreachable
// catalog from a genuinely empty result.
func (r *Repo) Search(ctx context.Context, it domintent.Intent, limit int) ([]domcat.Product, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrMalformedQuery, limit)
	}

	q := r.buildQuery(it, limit)

	qctx, cancel := r.queryContext(ctx)
	defer cancel()

	result, err := r.store.SearchText(qctx, q)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	if result == nil || len(result.Entries) == 0 {
		return nil, nil
	}

	products := make([]domcat.Product, 0, len(result.Entries))
	for _, entry := range result.Entries {
		p := parseHashFields(r.partID(entry.Key), entry.Fields)
		p.Relevance = entry.Score
		products = append(products, p)
	}
	return products, nil
}

// buildQuery translates an intent into a text query: keywords are OR-matched
// across the weighted text fields, everything else becomes a pre-filter.
func (r *Repo) buildQuery(it domintent.Intent, limit int) *db.TextQuery {
	q := &db.TextQuery{
		IndexName:  r.indexName(),
		Terms:      it.Keywords(),
		TextFields: []string{fieldPartNumber, fieldName, fieldDescription, fieldManufacturer},
		Limit:      limit,
	}

	if cat := it.Category(); cat != "" {
		q.Filters = append(q.Filters, db.TagFilter(fieldCategory, cat))
	}

	for name, c := range it.Attributes() {
		switch {
		case name == domintent.AttrMounting && c.IsValue():
			q.Filters = append(q.Filters, db.TagFilter(fieldMounting, c.Value()))
		case name == domintent.AttrVoltage && c.IsRange():
			min, max := voltageBounds(c)
			q.Filters = append(q.Filters, db.RangeFilter(fieldVoltage, min, max))
		}
	}

	if it.MaxPrice() != nil {
		q.Filters = append(q.Filters, db.RangeFilter(fieldUnitPrice, nil, it.MaxPrice()))
	}
	if it.RequireInStock() {
		q.Filters = append(q.Filters, db.PositiveFilter(fieldQuantity))
	}

	return q
}

// voltageBounds widens a point constraint by the tolerance; explicit ranges
// pass through unchanged.
func voltageBounds(c domintent.Constraint) (*float64, *float64) {
	min, max := c.Min(), c.Max()
	if min != nil && max != nil && *min == *max {
		lo := *min * (1 - voltageTolerance)
		hi := *max * (1 + voltageTolerance)
		return &lo, &hi
	}
	return min, max
}

// Count returns the number of indexed parts.
func (r *Repo) Count(ctx context.Context) (int, error) {
	qctx, cancel := r.queryContext(ctx)
	defer cancel()

	n, err := r.store.SearchCount(qctx, r.indexName(), "*")
	if err != nil {
		return 0, fmt.Errorf("count catalog: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	return n, nil
}

func (r *Repo) partKey(id string) string {
	return r.keyPrefix + "part:" + id
}

func (r *Repo) partID(key string) string {
	return strings.TrimPrefix(key, r.keyPrefix+"part:")
}

func (r *Repo) indexName() string {
	return r.keyPrefix + "part:idx"
}
