package catalog

// Stock level thresholds for the coarse status label.
const (
	highStockMin = 5000
	inStockMin   = 500
	lowStockMin  = 1
)

// Stock status labels.
const (
	StockUnknown = "Unknown Stock"
	StockHigh    = "High Stock"
	StockIn      = "In Stock"
	StockLimited = "Limited Stock"
	StockOut     = "Out of Stock"
)

// StockStatus derives the coarse stock label from a quantity. It is a pure
// function of the quantity so every rendering consumer agrees and the label
// is never stale relative to the source value.
func StockStatus(quantity *int) string {
	switch {
	case quantity == nil:
		return StockUnknown
	case *quantity >= highStockMin:
		return StockHigh
	case *quantity >= inStockMin:
		return StockIn
	case *quantity >= lowStockMin:
		return StockLimited
	default:
		return StockOut
	}
}
