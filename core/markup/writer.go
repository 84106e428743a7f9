// Package markup applies percentage multipliers to base costs and writes
// the priced-for-client variants into designated columns.
package markup

import (
	"github.com/shopspring/decimal"

	"boq-cost/core/worksheet"
)

// DefaultRates is the standard markup percentage to rate multiplier table
func DefaultRates() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		30:  decimal.NewFromFloat(0.30),
		50:  decimal.NewFromFloat(0.50),
		100: decimal.NewFromFloat(1.00),
		130: decimal.NewFromFloat(1.30),
		150: decimal.NewFromFloat(1.50),
	}
}

// Writer computes and writes markup variants. The rate table is injected at
// construction; there is no package-level mutable state.
type Writer struct {
	rates map[int]decimal.Decimal
}

// NewWriter creates a writer; a nil table uses DefaultRates
func NewWriter(rates map[int]decimal.Decimal) *Writer {
	if rates == nil {
		rates = DefaultRates()
	}
	return &Writer{rates: rates}
}

// Rate resolves a percentage to its multiplier; unlisted percentages
// default to 1.00
func (w *Writer) Rate(percentage int) decimal.Decimal {
	if r, ok := w.rates[percentage]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// WriteMarkups writes one markup value per percentage, at startCol+index in
// the input order. Each value is base * (1 + rate), rounded to 2 places.
func (w *Writer) WriteMarkups(ws worksheet.Worksheet, row int, base decimal.Decimal, percentages []int, startCol int) {
	one := decimal.NewFromInt(1)
	for i, p := range percentages {
		value := base.Mul(one.Add(w.Rate(p))).Round(2)
		f, _ := value.Float64()
		worksheet.SetAnchored(ws, row, startCol+i, f)
	}
}
