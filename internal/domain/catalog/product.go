// Package catalog holds the catalog document model and derived ranking types.
package catalog

// Product is a catalog document as returned by the store. The store owns
// these documents; the pipeline reads them and never writes them back.
type Product struct {
	ID           string
	PartNumber   string
	Manufacturer string
	Name         string
	Description  string
	Category     string
	UnitPrice    float64
	Quantity     *int    // nil = unknown
	Voltage      float64 // 0 = unspecified
	Mounting     string  // smd, tht, "" = unspecified
	ProductURL   string
	DatasheetURL string
	Relevance    float64 // store-assigned base relevance score
}

// InStock reports whether the product has known positive stock.
func (p Product) InStock() bool {
	return p.Quantity != nil && *p.Quantity > 0
}

// RankedProduct is a Product with a recommendation score and a human-readable
// justification. Derived per request, never persisted.
type RankedProduct struct {
	Product
	Score     int    // 0..100
	FitReason string // always non-empty
}
