package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/db"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchTextFn  func(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	searchCountFn func(ctx context.Context, index, query string) (int, error)
	hSetMultiFn   func(ctx context.Context, items []db.HashSetItem) error
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
}

func (m *mockStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if m.searchTextFn != nil {
		return m.searchTextFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func (m *mockStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if m.hSetMultiFn != nil {
		return m.hSetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "advisor:", 5*time.Second), ms
}

func mustIntent(
	t *testing.T,
	keywords []string,
	category string,
	attrs map[string]domintent.Constraint,
	maxPrice *float64,
	requireInStock bool,
	rawText string,
) domintent.Intent {
	t.Helper()
	it, err := domintent.New(keywords, category, attrs, maxPrice, requireInStock, rawText)
	if err != nil {
		t.Fatalf("New intent: %v", err)
	}
	return it
}
