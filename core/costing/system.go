// Package costing - System-family formulas (AC, Electrical, Fire-Protection)
package costing

import (
	"github.com/shopspring/decimal"

	"boq-cost/core/types"
)

// SystemSimpleFormula scales material and labor by quantity independently
// and sums the scaled components. Used by the AC and Electrical sheet
// processors.
type SystemSimpleFormula struct{}

// Name returns the formula identifier
func (SystemSimpleFormula) Name() string { return "system_simple" }

// Calculate produces the simple System breakdown
func (SystemSimpleFormula) Calculate(item *types.MasterItem, quantity decimal.Decimal, similarity float64) *types.Breakdown {
	if b := reviewGate(similarity); b != nil {
		return b
	}

	materialCost := item.MaterialUnitCost.Mul(quantity)
	laborCost := item.LaborUnitCost.Mul(quantity)

	return &types.Breakdown{
		MaterialCost: types.Numeric(materialCost),
		LaborCost:    types.Numeric(laborCost),
		TotalCost:    types.Numeric(materialCost.Add(laborCost)),
	}
}

// SystemDetailedFormula is the same arithmetic as SystemSimpleFormula but
// keeps the per-unit costs in the output, which section aggregation reads
// back from the sheet. Used by Fire-Protection and the detailed AC path.
type SystemDetailedFormula struct{}

// Name returns the formula identifier
func (SystemDetailedFormula) Name() string { return "system_detailed" }

// Calculate produces the detailed System breakdown
func (SystemDetailedFormula) Calculate(item *types.MasterItem, quantity decimal.Decimal, similarity float64) *types.Breakdown {
	if b := reviewGate(similarity); b != nil {
		return b
	}

	materialCost := item.MaterialUnitCost.Mul(quantity)
	laborCost := item.LaborUnitCost.Mul(quantity)

	return &types.Breakdown{
		MaterialUnitCost: types.Numeric(item.MaterialUnitCost),
		LaborUnitCost:    types.Numeric(item.LaborUnitCost),
		MaterialCost:     types.Numeric(materialCost),
		LaborCost:        types.Numeric(laborCost),
		TotalCost:        types.Numeric(materialCost.Add(laborCost)),
	}
}
