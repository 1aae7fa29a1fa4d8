package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/db"
)

// --- embedded seed ---

func TestEmbeddedSeed_ParsesAndIsUsable(t *testing.T) {
	products, err := parseSeed(seedData)
	if err != nil {
		t.Fatalf("parseSeed: %v", err)
	}
	if len(products) < 20 {
		t.Fatalf("expected a populated demo catalog, got %d parts", len(products))
	}

	seenCategories := make(map[string]bool)
	for _, p := range products {
		if p.ID == "" || p.PartNumber == "" || p.Name == "" {
			t.Fatalf("incomplete seed product: %+v", p)
		}
		if p.UnitPrice <= 0 {
			t.Fatalf("non-positive price for %s", p.PartNumber)
		}
		seenCategories[p.Category] = true
	}

	for _, want := range []string{"regulator", "capacitor", "timer", "microcontroller"} {
		if !seenCategories[want] {
			t.Fatalf("seed catalog missing category %q", want)
		}
	}
}

func TestParseSeed_RejectsMissingID(t *testing.T) {
	if _, err := parseSeed([]byte(`[{"part_number":"X"}]`)); err == nil {
		t.Fatal("expected error for seed entry without id")
	}
}

func TestParseSeed_RejectsMalformedJSON(t *testing.T) {
	if _, err := parseSeed([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed seed data")
	}
}

// --- EnsureIndex ---

func TestEnsureIndex_SkipsWhenPresent(t *testing.T) {
	repo, ms := newTestRepo(t)

	created := false
	ms.indexExistsFn = func(_ context.Context, name string) (bool, error) {
		if name != "advisor:part:idx" {
			t.Errorf("unexpected index name: %s", name)
		}
		return true, nil
	}
	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		created = true
		return nil
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("index must not be recreated when it exists")
	}
}

func TestEnsureIndex_CreatesSchema(t *testing.T) {
	repo, ms := newTestRepo(t)

	var def *db.IndexDefinition
	ms.createIndexFn = func(_ context.Context, d *db.IndexDefinition) error {
		def = d
		return nil
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def == nil {
		t.Fatal("expected index creation")
	}
	if len(def.Prefixes) != 1 || def.Prefixes[0] != "advisor:part:" {
		t.Fatalf("unexpected prefixes: %v", def.Prefixes)
	}
	if len(def.Fields) != 9 {
		t.Fatalf("expected 9 schema fields, got %d", len(def.Fields))
	}
	if def.Fields[0].Name != "part_number" || def.Fields[0].TextWeight != 5 {
		t.Fatalf("expected weighted part_number first, got %+v", def.Fields[0])
	}
}

func TestEnsureIndex_ToleratesConcurrentCreate(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.createIndexFn = func(_ context.Context, _ *db.IndexDefinition) error {
		return db.ErrIndexExists
	}

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("expected concurrent create to be tolerated, got %v", err)
	}
}

// --- SeedIfEmpty ---

func TestSeedIfEmpty_WritesWhenEmpty(t *testing.T) {
	repo, ms := newTestRepo(t)

	var items []db.HashSetItem
	ms.hSetMultiFn = func(_ context.Context, got []db.HashSetItem) error {
		items = got
		return nil
	}

	n, err := repo.SeedIfEmpty(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 || len(items) != n {
		t.Fatalf("expected seeded parts, got n=%d items=%d", n, len(items))
	}
	for _, item := range items {
		if item.Key == "advisor:part:" {
			t.Fatalf("empty part id in key %q", item.Key)
		}
	}
}

func TestSeedIfEmpty_SkipsPopulatedCatalog(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchCountFn = func(_ context.Context, _, _ string) (int, error) {
		return 24, nil
	}
	ms.hSetMultiFn = func(_ context.Context, _ []db.HashSetItem) error {
		t.Fatal("must not write into a populated catalog")
		return nil
	}

	n, err := repo.SeedIfEmpty(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no writes, got %d", n)
	}
}

func TestSeedIfEmpty_CountFailure(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchCountFn = func(_ context.Context, _, _ string) (int, error) {
		return 0, errors.New("down")
	}

	if _, err := repo.SeedIfEmpty(context.Background()); err == nil {
		t.Fatal("expected error when count fails")
	}
}

func marshalSeed(t *testing.T, p seedProduct) string {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal seed product: %v", err)
	}
	return string(data)
}
