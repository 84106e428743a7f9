// Package electrical - Electrical trade registration
package electrical

import (
	"boq-cost/core/costing"
	"boq-cost/core/engine"
	"boq-cost/core/section"
	"boq-cost/core/types"
	"boq-cost/trades"
)

// Definition is the Electrical trade: material and labor each scaled by
// quantity, sections closed by Thai or English total indicators in the
// dedicated marker column.
func Definition() *engine.TradeDefinition {
	return &engine.TradeDefinition{
		Trade: types.TradeElectrical,
		Columns: types.ColumnMap{
			Code:         1,
			Name:         2,
			Quantity:     3,
			Unit:         4,
			MaterialCost: 5,
			LaborCost:    6,
			TotalCost:    7,
			TotalRowCol:  8,
			MarkupStart:  10,
			HeaderRow:    6,
		},
		Formula: costing.SystemSimpleFormula{},
		Strategy: section.NewTotalMarkerScan(section.ScanConfig{
			Tokens: []string{"รวมรายการ", "รวม", "total", "subtotal", "sum"},
		}),
		SkipTokens:        []string{"รวมรายการ", "รวม", "total", "subtotal", "งานระบบไฟฟ้า"},
		MarkupPercentages: []int{30, 50, 100},
	}
}

// Register adds the Electrical trade to the default registry
func Register() error {
	return trades.Register(Definition())
}
