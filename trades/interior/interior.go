// Package interior - Interior trade registration
package interior

import (
	"boq-cost/core/costing"
	"boq-cost/core/engine"
	"boq-cost/core/section"
	"boq-cost/core/types"
	"boq-cost/trades"
)

// Definition is the Interior trade: per-unit costs summed first, quantity
// scales the combined unit cost. Sections close on an exact "total" token
// in the code column, and the sheet carries a grand-total row.
func Definition() *engine.TradeDefinition {
	return &engine.TradeDefinition{
		Trade: types.TradeInterior,
		Columns: types.ColumnMap{
			Code:             2,
			Name:             3,
			Quantity:         4,
			Unit:             5,
			MaterialUnitCost: 6,
			LaborUnitCost:    7,
			TotalCost:        8,
			MarkupStart:      10,
			HeaderRow:        5,
		},
		Formula: costing.InteriorFormula{},
		Strategy: section.NewTotalMarkerScan(section.ScanConfig{
			Tokens: []string{"total"},
			Exact:  true,
		}),
		SkipTokens:        []string{"total", "รวมรายการ", "งานตกแต่งภายใน"},
		GrandTotalTokens:  []string{"รวมรายการ"},
		MarkupPercentages: []int{30, 50, 100},
	}
}

// Register adds the Interior trade to the default registry
func Register() error {
	return trades.Register(Definition())
}
