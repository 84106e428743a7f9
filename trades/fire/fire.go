// Package fire - Fire-Protection trade registration
package fire

import (
	"boq-cost/core/costing"
	"boq-cost/core/engine"
	"boq-cost/core/section"
	"boq-cost/core/types"
	"boq-cost/trades"
)

// Definition is the Fire-Protection trade: the detailed System formula
// keeps per-unit costs on the sheet alongside the quantity-scaled ones.
func Definition() *engine.TradeDefinition {
	return &engine.TradeDefinition{
		Trade: types.TradeFireProtection,
		Columns: types.ColumnMap{
			Code:             1,
			Name:             2,
			Unit:             3,
			Quantity:         4,
			MaterialUnitCost: 5,
			MaterialCost:     6,
			LaborUnitCost:    7,
			LaborCost:        8,
			TotalCost:        9,
			TotalRowCol:      10,
			MarkupStart:      12,
			HeaderRow:        7,
		},
		Formula: costing.SystemDetailedFormula{},
		Strategy: section.NewTotalMarkerScan(section.ScanConfig{
			Tokens: []string{"รวมรายการ", "รวม", "total", "subtotal", "sum"},
		}),
		SkipTokens:        []string{"รวมรายการ", "รวม", "total", "subtotal", "งานระบบดับเพลิง"},
		MarkupPercentages: []int{30, 50, 100},
	}
}

// Register adds the Fire-Protection trade to the default registry
func Register() error {
	return trades.Register(Definition())
}
