package advisor

import (
	"context"
	"testing"

	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

type mockResolver struct {
	resolveFn func(ctx context.Context, text string) (domintent.Outcome, error)
	directFn  func(query string) (domintent.Outcome, error)
}

func (m *mockResolver) Resolve(ctx context.Context, text string) (domintent.Outcome, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, text)
	}
	return domintent.Outcome{}, nil
}

func (m *mockResolver) Direct(query string) (domintent.Outcome, error) {
	if m.directFn != nil {
		return m.directFn(query)
	}
	return domintent.Outcome{}, nil
}

type mockCatalog struct {
	searchFn func(ctx context.Context, it domintent.Intent, limit int) ([]domcat.Product, error)
}

func (m *mockCatalog) Search(ctx context.Context, it domintent.Intent, limit int) ([]domcat.Product, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, it, limit)
	}
	return nil, nil
}

func mustIntent(t *testing.T, keywords []string, category string, attrs map[string]domintent.Constraint) domintent.Intent {
	t.Helper()
	it, err := domintent.New(keywords, category, attrs, nil, false, "")
	if err != nil {
		t.Fatalf("New intent: %v", err)
	}
	return it
}

func mustOutcome(t *testing.T, it domintent.Intent, mode domintent.Mode, warning string) domintent.Outcome {
	t.Helper()
	out, err := domintent.NewOutcome(it, mode, warning)
	if err != nil {
		t.Fatalf("NewOutcome: %v", err)
	}
	return out
}

func intPtr(v int) *int { return &v }
