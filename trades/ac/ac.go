// Package ac - Air-Conditioning trade registration
package ac

import (
	"boq-cost/core/costing"
	"boq-cost/core/engine"
	"boq-cost/core/section"
	"boq-cost/core/types"
	"boq-cost/trades"
)

// Definition is the AC trade. Costing matches Electrical; section
// detection is still the whole-sheet stub, so AC sheets aggregate as one
// section until the marker-scan detector is proven on its layouts.
func Definition() *engine.TradeDefinition {
	return &engine.TradeDefinition{
		Trade: types.TradeAC,
		Columns: types.ColumnMap{
			Code:         1,
			Name:         2,
			Quantity:     3,
			Unit:         4,
			MaterialCost: 6,
			LaborCost:    7,
			TotalCost:    8,
			TotalRowCol:  9,
			MarkupStart:  11,
			HeaderRow:    4,
		},
		Formula:           costing.SystemSimpleFormula{},
		Strategy:          section.WholeSheetStrategy{},
		SkipTokens:        []string{"รวมรายการ", "รวม", "total", "subtotal", "งานระบบปรับอากาศ"},
		MarkupPercentages: []int{30, 50, 100},
	}
}

// Register adds the AC trade to the default registry
func Register() error {
	return trades.Register(Definition())
}
