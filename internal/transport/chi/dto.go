package chi

import (
	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
	domintent "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/intent"
)

// chatRequest is the POST /api/chat body.
type chatRequest struct {
	Message string `json:"message"`
	Limit   int    `json:"limit,omitempty"`
}

// chatResponse is the POST /api/chat reply. Warning is a pointer so a clean
// response serializes an explicit null.
type chatResponse struct {
	Mode     string       `json:"mode"`
	Intent   intentDTO    `json:"intent"`
	Products []productDTO `json:"products"`
	Answer   string       `json:"answer"`
	Warning  *string      `json:"warning"`
}

// searchRequest is the POST /api/search body.
type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// searchResponse is the POST /api/search reply.
type searchResponse struct {
	Source   string       `json:"source"`
	Query    string       `json:"query"`
	Products []productDTO `json:"products"`
	Warning  *string      `json:"warning"`
}

// intentDTO exposes the resolved search intent to clients.
type intentDTO struct {
	Keywords       []string           `json:"keywords"`
	Category       string             `json:"category,omitempty"`
	Attributes     map[string]attrDTO `json:"attributes,omitempty"`
	MaxPrice       *float64           `json:"max_price,omitempty"`
	RequireInStock bool               `json:"require_in_stock"`
}

// attrDTO is a single attribute constraint.
type attrDTO struct {
	Value string   `json:"value,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// productDTO is a ranked catalog hit.
type productDTO struct {
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

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// healthResponse is the GET /api/health reply.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// warningToDTO maps the empty warning to JSON null.
func warningToDTO(w string) *string {
	if w == "" {
		return nil
	}
	return &w
}

func intentToDTO(it domintent.Intent) intentDTO {
	dto := intentDTO{
		Keywords:       it.Keywords(),
		Category:       it.Category(),
		MaxPrice:       it.MaxPrice(),
		RequireInStock: it.RequireInStock(),
	}
	if dto.Keywords == nil {
		dto.Keywords = []string{}
	}
	if len(it.Attributes()) > 0 {
		dto.Attributes = make(map[string]attrDTO, len(it.Attributes()))
		for name, c := range it.Attributes() {
			dto.Attributes[name] = attrDTO{
				Value: c.Value(),
				Min:   c.Min(),
				Max:   c.Max(),
			}
		}
	}
	return dto
}

func productsToDTO(ranked []domcat.RankedProduct) []productDTO {
	out := make([]productDTO, len(ranked))
	for i, rp := range ranked {
		out[i] = productDTO{
			ID:           rp.ID,
			PartNumber:   rp.PartNumber,
			Manufacturer: rp.Manufacturer,
			Name:         rp.Name,
			Description:  rp.Description,
			Category:     rp.Category,
			UnitPrice:    rp.UnitPrice,
			Quantity:     rp.Quantity,
			StockStatus:  domcat.StockStatus(rp.Quantity),
			Voltage:      rp.Voltage,
			Mounting:     rp.Mounting,
			ProductURL:   rp.ProductURL,
			DatasheetURL: rp.DatasheetURL,
			Score:        rp.Score,
			FitReason:    rp.FitReason,
		}
	}
	return out
}
