// Package types - cost value and breakdown types
package types

import "github.com/shopspring/decimal"

// NeedsReviewText is the sentinel written into cost cells when match
// confidence is too low to trust the computed number. It is a deliberate
// user-visible flag, not an error.
const NeedsReviewText = "ต้องตรวจสอบ"

// CostValueKind tags the state of a CostValue
type CostValueKind int

const (
	// CostNumeric is a trusted numeric amount
	CostNumeric CostValueKind = iota

	// CostNeedsReview marks a value a human must verify
	CostNeedsReview
)

// CostValue is a tagged union: either a numeric amount or the
// needs-review state. Consumers must branch on IsReview before doing
// arithmetic; the review state carries no amount.
type CostValue struct {
	kind   CostValueKind
	amount decimal.Decimal
}

// Numeric wraps a decimal amount
func Numeric(d decimal.Decimal) CostValue {
	return CostValue{kind: CostNumeric, amount: d}
}

// NumericFloat wraps a float amount
func NumericFloat(f float64) CostValue {
	return Numeric(decimal.NewFromFloat(f))
}

// ReviewValue returns the needs-review state
func ReviewValue() CostValue {
	return CostValue{kind: CostNeedsReview}
}

// Kind returns the value's tag
func (v CostValue) Kind() CostValueKind {
	return v.kind
}

// IsReview reports whether the value is the needs-review sentinel
func (v CostValue) IsReview() bool {
	return v.kind == CostNeedsReview
}

// Amount returns the numeric amount; zero for the review state
func (v CostValue) Amount() decimal.Decimal {
	if v.kind == CostNeedsReview {
		return decimal.Zero
	}
	return v.amount
}

// Cell converts the value into its worksheet representation: a float64
// for numeric values, the sentinel string for the review state.
func (v CostValue) Cell() CellValue {
	if v.kind == CostNeedsReview {
		return NeedsReviewText
	}
	f, _ := v.amount.Float64()
	return f
}

// Breakdown is the cost output for a single row. The trade formula decides
// which fields are populated; the trade's column map decides which are
// written back.
type Breakdown struct {
	// MaterialUnitCost is the matched item's per-unit material cost
	MaterialUnitCost CostValue `json:"material_unit_cost"`

	// LaborUnitCost is the matched item's per-unit labor cost
	LaborUnitCost CostValue `json:"labor_unit_cost"`

	// MaterialUnitTotal and LaborUnitTotal are the Interior-family
	// per-unit components (not scaled by quantity)
	MaterialUnitTotal CostValue `json:"material_unit_total"`
	LaborUnitTotal    CostValue `json:"labor_unit_total"`

	// TotalUnitCost is the Interior-family combined per-unit cost
	TotalUnitCost CostValue `json:"total_unit_cost"`

	// MaterialCost and LaborCost are the System-family quantity-scaled
	// components
	MaterialCost CostValue `json:"material_cost"`
	LaborCost    CostValue `json:"labor_cost"`

	// TotalCost is the row total for every trade
	TotalCost CostValue `json:"total_cost"`
}

// AllReview returns a breakdown with every field in the review state
func AllReview() *Breakdown {
	r := ReviewValue()
	return &Breakdown{
		MaterialUnitCost:  r,
		LaborUnitCost:     r,
		MaterialUnitTotal: r,
		LaborUnitTotal:    r,
		TotalUnitCost:     r,
		MaterialCost:      r,
		LaborCost:         r,
		TotalCost:         r,
	}
}
