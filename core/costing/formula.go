// Package costing provides the per-trade cost calculation formulas.
// Each formula is a pure function from (matched item, quantity, match
// similarity) to a cost breakdown. Below the match threshold every field
// becomes the needs-review state, for all trades uniformly.
package costing

import (
	"github.com/shopspring/decimal"

	"boq-cost/core/types"
)

// Formula calculates a cost breakdown for a matched catalog item
type Formula interface {
	// Name returns the formula identifier
	Name() string

	// Calculate produces the breakdown for one row. quantity is
	// non-negative; similarity gates the needs-review behavior.
	Calculate(item *types.MasterItem, quantity decimal.Decimal, similarity float64) *types.Breakdown
}

// reviewGate returns the all-review breakdown when similarity is below the
// threshold, nil otherwise.
func reviewGate(similarity float64) *types.Breakdown {
	if similarity < types.MatchThreshold {
		return types.AllReview()
	}
	return nil
}
