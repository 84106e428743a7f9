// Package costing - Interior-family formula
package costing

import (
	"github.com/shopspring/decimal"

	"boq-cost/core/types"
)

// InteriorFormula sums material and labor per unit first, then scales the
// combined unit cost by quantity. Quantity never scales the components
// individually.
type InteriorFormula struct{}

// Name returns the formula identifier
func (InteriorFormula) Name() string { return "interior" }

// Calculate produces the Interior breakdown
func (InteriorFormula) Calculate(item *types.MasterItem, quantity decimal.Decimal, similarity float64) *types.Breakdown {
	if b := reviewGate(similarity); b != nil {
		return b
	}

	materialUnit := item.MaterialUnitCost
	laborUnit := item.LaborUnitCost
	totalUnit := materialUnit.Add(laborUnit)

	return &types.Breakdown{
		MaterialUnitCost:  types.Numeric(materialUnit),
		LaborUnitCost:     types.Numeric(laborUnit),
		MaterialUnitTotal: types.Numeric(materialUnit),
		LaborUnitTotal:    types.Numeric(laborUnit),
		TotalUnitCost:     types.Numeric(totalUnit),
		TotalCost:         types.Numeric(totalUnit.Mul(quantity)),
	}
}
