// Package types defines the shared domain model for BOQ processing.
package types

// Trade identifies one of the four fixed construction trades
type Trade string

const (
	TradeInterior       Trade = "interior"
	TradeElectrical     Trade = "electrical"
	TradeAC             Trade = "ac"
	TradeFireProtection Trade = "fire_protection"
)

// String returns the string representation
func (t Trade) String() string {
	return string(t)
}

// AllTrades lists every supported trade
func AllTrades() []Trade {
	return []Trade{TradeInterior, TradeElectrical, TradeAC, TradeFireProtection}
}

// ParseTrade resolves a trade from its string form
func ParseTrade(s string) (Trade, bool) {
	switch Trade(s) {
	case TradeInterior, TradeElectrical, TradeAC, TradeFireProtection:
		return Trade(s), true
	}
	// Common aliases accepted on the CLI
	switch s {
	case "ee", "electric":
		return TradeElectrical, true
	case "fp", "fire":
		return TradeFireProtection, true
	}
	return "", false
}

// CellValue is the value of a single worksheet cell.
// By contract it is one of: nil, string, int, float64.
type CellValue interface{}

// ColumnMap maps logical fields to 1-based worksheet column numbers for one
// trade. A zero value means the trade's layout has no such column.
type ColumnMap struct {
	// Code is the item code column
	Code int `json:"code"`

	// Name is the item description column
	Name int `json:"name"`

	// Quantity is the quantity column
	Quantity int `json:"quantity"`

	// Unit is the unit-of-measure column
	Unit int `json:"unit"`

	// MaterialUnitCost is the per-unit material cost column
	MaterialUnitCost int `json:"material_unit_cost"`

	// LaborUnitCost is the per-unit labor cost column
	LaborUnitCost int `json:"labor_unit_cost"`

	// MaterialCost is the quantity-scaled material cost column
	MaterialCost int `json:"material_cost"`

	// LaborCost is the quantity-scaled labor cost column
	LaborCost int `json:"labor_cost"`

	// TotalCost is the row total column
	TotalCost int `json:"total_cost"`

	// TotalRowCol is the column scanned for section total markers
	TotalRowCol int `json:"total_row_col"`

	// MarkupStart is the first markup output column
	MarkupStart int `json:"markup_start"`

	// HeaderRow is the 1-based worksheet row holding the column headers.
	// Data rows start at HeaderRow + 1.
	HeaderRow int `json:"header_row"`
}
