package chi

import (
	"context"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
	advisoruc "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/usecase/advisor"
	healthuc "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/usecase/health"
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

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// newTestServer wires the API onto a router backed by the given mocks.
func newTestServer(t *testing.T, resolver *mockResolver, catalog *mockCatalog, db *mockPinger) *httptest.Server {
	t.Helper()
	if resolver == nil {
		resolver = &mockResolver{}
	}
	if catalog == nil {
		catalog = &mockCatalog{}
	}
	if db == nil {
		db = &mockPinger{}
	}

	advisorSvc := advisoruc.New(resolver, catalog, 12, 25)
	healthSvc := healthuc.New(db, nil)
	srv := NewServer(advisorSvc, healthSvc, zap.NewNop())

	r := chirouter.NewRouter()
	srv.Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func mustOutcome(t *testing.T, keywords []string, category string, mode domintent.Mode, warning string) domintent.Outcome {
	t.Helper()
	it, err := domintent.New(keywords, category, nil, nil, false, "")
	if err != nil {
		t.Fatalf("New intent: %v", err)
	}
	out, err := domintent.NewOutcome(it, mode, warning)
	if err != nil {
		t.Fatalf("NewOutcome: %v", err)
	}
	return out
}

func intPtr(v int) *int { return &v }
