package advisor

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Message string `json:"message"`
	Limit   int    `json:"limit,omitempty"`
}

// ChatResponse is the POST /api/chat reply. Warning is nil when the server
// resolved the intent without degradation.
type ChatResponse struct {
	Mode     string    `json:"mode"`
	Intent   Intent    `json:"intent"`
	Products []Product `json:"products"`
	Answer   string    `json:"answer"`
	Warning  *string   `json:"warning"`
}

// SearchRequest is the POST /api/search body.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SearchResponse is the POST /api/search reply.
type SearchResponse struct {
	Source   string    `json:"source"`
	Query    string    `json:"query"`
	Products []Product `json:"products"`
	Warning  *string   `json:"warning"`
}

// Intent is the structured search intent the server resolved.
type Intent struct {
	Keywords       []string             `json:"keywords"`
	Category       string               `json:"category,omitempty"`
	Attributes     map[string]Attribute `json:"attributes,omitempty"`
	MaxPrice       *float64             `json:"max_price,omitempty"`
	RequireInStock bool                 `json:"require_in_stock"`
}

// Attribute is a single attribute constraint.
type Attribute struct {
	Value string   `json:"value,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// Product is a ranked catalog hit.
type Product struct {
	ID           string  `json:"id"`
	PartNumber   string  `json:"manufacturer_part_number"`
	Manufacturer string  `json:"manufacturer"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     *int    `json:"quantity_available"`
	StockStatus  string  `json:"stock_status"`
	Voltage      float64 `json:"voltage,omitempty"`
	Mounting     string  `json:"mounting,omitempty"`
	ProductURL   string  `json:"product_url,omitempty"`
	DatasheetURL string  `json:"datasheet_url,omitempty"`
	Score        int     `json:"recommendation_score"`
	FitReason    string  `json:"fit_reason"`
}

// HealthResponse is the GET /api/health reply.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
