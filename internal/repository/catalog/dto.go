package catalog

import (
	"strconv"
	"strings"

	domcat "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain/catalog"
)

// Hash field names. The FT index schema in index.go must stay in sync.
const (
	fieldPartNumber   = "part_number"
	fieldManufacturer = "manufacturer"
	fieldName         = "name"
	fieldDescription  = "description"
	fieldCategory     = "category"
	fieldUnitPrice    = "unit_price"
	fieldQuantity     = "quantity_available"
	fieldVoltage      = "voltage"
	fieldMounting     = "mounting"
	fieldProductURL   = "product_url"
	fieldDatasheetURL = "datasheet_url"
)

// buildHashFields flattens a product into a map[string]string for HSET.
// Unknown quantity and unspecified voltage are omitted so numeric filters
// exclude them naturally.
func buildHashFields(p *domcat.Product) map[string]string {
	m := map[string]string{
		fieldPartNumber:   p.PartNumber,
		fieldManufacturer: p.Manufacturer,
		fieldName:         p.Name,
		fieldDescription:  p.Description,
		fieldCategory:     strings.ToLower(p.Category),
		fieldUnitPrice:    strconv.FormatFloat(p.UnitPrice, 'f', -1, 64),
	}
	if p.Quantity != nil {
		m[fieldQuantity] = strconv.Itoa(*p.Quantity)
	}
	if p.Voltage > 0 {
		m[fieldVoltage] = strconv.FormatFloat(p.Voltage, 'f', -1, 64)
	}
	if p.Mounting != "" {
		m[fieldMounting] = strings.ToLower(p.Mounting)
	}
	if p.ProductURL != "" {
		m[fieldProductURL] = p.ProductURL
	}
	if p.DatasheetURL != "" {
		m[fieldDatasheetURL] = p.DatasheetURL
	}
	return m
}

// parseHashFields reconstructs a product from a flat hash map.
func parseHashFields(id string, m map[string]string) domcat.Product {
	p := domcat.Product{
		ID:           id,
		PartNumber:   m[fieldPartNumber],
		Manufacturer: m[fieldManufacturer],
		Name:         m[fieldName],
		Description:  m[fieldDescription],
		Category:     m[fieldCategory],
		Mounting:     m[fieldMounting],
		ProductURL:   m[fieldProductURL],
		DatasheetURL: m[fieldDatasheetURL],
	}
	if v, err := strconv.ParseFloat(m[fieldUnitPrice], 64); err == nil {
		p.UnitPrice = v
	}
	if raw, ok := m[fieldQuantity]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			p.Quantity = &n
		}
	}
	if v, err := strconv.ParseFloat(m[fieldVoltage], 64); err == nil {
		p.Voltage = v
	}
	return p
}
