package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/db"
	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain"
	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
)

//go:embed seed.json
var seedData []byte

// seedProduct mirrors the seed file layout.
type seedProduct struct {
	ID           string  `json:"id"`
	PartNumber   string  `json:"part_number"`
	Manufacturer string  `json:"manufacturer"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     *int    `json:"quantity_available"`
	Voltage      float64 `json:"voltage,omitempty"`
	Mounting     string  `json:"mounting,omitempty"`
	ProductURL   string  `json:"product_url,omitempty"`
	DatasheetURL string  `json:"datasheet_url,omitempty"`
}

// EnsureIndex creates the catalog FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("check index: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	if exists {
		return nil
	}

	if err := r.store.CreateIndex(ctx, r.indexDefinition()); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	return nil
}

// indexDefinition declares the catalog schema. Text weights favor exact part
// number hits over name, description, and manufacturer matches. The schema
// is static, so a build failure is a programmer error.
func (r *Repo) indexDefinition() *db.IndexDefinition {
	return db.NewIndex(r.indexName()).
		Prefix(r.keyPrefix + "part:").
		TextWeighted(fieldPartNumber, 5).
		TextWeighted(fieldName, 4).
		TextWeighted(fieldDescription, 3).
		TextWeighted(fieldManufacturer, 2).
		Tag(fieldCategory).
		Tag(fieldMounting).
		Numeric(fieldUnitPrice).
		Numeric(fieldQuantity).
		Numeric(fieldVoltage).
		MustBuild()
}

// SeedIfEmpty loads the embedded demo catalog when the index holds no parts.
// Returns the number of parts written (0 when the catalog was already
// populated).
func (r *Repo) SeedIfEmpty(ctx context.Context) (int, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	products, err := parseSeed(seedData)
	if err != nil {
		return 0, err
	}

	items := make([]db.HashSetItem, 0, len(products))
	for i := range products {
		items = append(items, db.HashSetItem{
			Key:    r.partKey(products[i].ID),
			Fields: buildHashFields(&products[i]),
		})
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return 0, fmt.Errorf("seed catalog: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	return len(items), nil
}

func parseSeed(data []byte) ([]domcat.Product, error) {
	var rows []seedProduct
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	products := make([]domcat.Product, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" || row.PartNumber == "" {
			return nil, fmt.Errorf("seed entry missing id or part_number")
		}
		products = append(products, domcat.Product{
			ID:           row.ID,
			PartNumber:   row.PartNumber,
			Manufacturer: row.Manufacturer,
			Name:         row.Name,
			Description:  row.Description,
			Category:     row.Category,
			UnitPrice:    row.UnitPrice,
			Quantity:     row.Quantity,
			Voltage:      row.Voltage,
			Mounting:     row.Mounting,
			ProductURL:   row.ProductURL,
			DatasheetURL: row.DatasheetURL,
		})
	}
	return products, nil
}
