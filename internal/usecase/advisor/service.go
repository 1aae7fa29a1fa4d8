package advisor

import (
	"context"
	"fmt"

	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// ChatResult is the outcome of a conversational part lookup.
type ChatResult struct {
	Outcome  domintent.Outcome
	Products []domcat.RankedProduct
	Answer   string
}

// DirectResult is the outcome of a literal keyword search.
type DirectResult struct {
	Outcome  domintent.Outcome
	Products []domcat.RankedProduct
}

// Service orchestrates intent resolution, catalog search, and ranking.
type Service struct {
	resolver IntentResolver
	catalog  Catalog
	limit    int
	maxLimit int
}

// New creates an advisor service. limit is the default result count when the
// caller does not ask for one; maxLimit caps what a caller may request.
func New(resolver IntentResolver, catalog Catalog, limit, maxLimit int) *Service {
	return &Service{resolver: resolver, catalog: catalog, limit: limit, maxLimit: maxLimit}
}

// Chat answers a free-text part request: resolve intent, search the catalog,
// rank the hits, and compose a short conversational answer.
func (s *Service) Chat(ctx context.Context, message string, limit int) (*ChatResult, error) {
	outcome, err := s.resolver.Resolve(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("resolve intent: %w", err)
	}

	products, err := s.catalog.Search(ctx, outcome.Intent(), s.clampLimit(limit))
	if err != nil {
		return nil, err
	}

	ranked := Rank(outcome.Intent(), products)
	return &ChatResult{
		Outcome:  outcome,
		Products: ranked,
		Answer:   buildAnswer(ranked),
	}, nil
}

// DirectSearch runs the query terms against the catalog verbatim, skipping
// intent extraction entirely.
func (s *Service) DirectSearch(ctx context.Context, query string, limit int) (*DirectResult, error) {
	outcome, err := s.resolver.Direct(query)
	if err != nil {
		return nil, fmt.Errorf("resolve query: %w", err)
	}

	products, err := s.catalog.Search(ctx, outcome.Intent(), s.clampLimit(limit))
	if err != nil {
		return nil, err
	}

	return &DirectResult{
		Outcome:  outcome,
		Products: Rank(outcome.Intent(), products),
	}, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.limit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

func buildAnswer(ranked []domcat.RankedProduct) string {
	if len(ranked) == 0 {
		return "No matching parts found. Try different keywords or fewer constraints."
	}
	return fmt.Sprintf("Found %d matching part(s). Top pick: %s.",
		len(ranked), describeTop(ranked[0]))
}
