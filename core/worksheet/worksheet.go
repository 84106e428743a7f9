// Package worksheet defines the worksheet capability the core consumes and
// the cell conversion rules shared by every reader and writer.
package worksheet

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"boq-cost/core/types"
)

// MergedRange is one merged cell region, 1-based inclusive coordinates
type MergedRange struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// Contains reports whether a cell lies inside the range
func (r MergedRange) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

// Worksheet is the spreadsheet capability consumed by the core. Rows and
// columns are 1-based.
type Worksheet interface {
	// GetCell reads a cell value; nil for empty cells
	GetCell(row, col int) types.CellValue

	// SetCell writes a cell value, numeric or the review sentinel
	SetCell(row, col int, value types.CellValue)

	// MergedRanges enumerates merged cell regions
	MergedRanges() []MergedRange

	// MaxRow is the last row carrying any data
	MaxRow() int
}

// SetAnchored writes a value, redirecting a target inside a merged range to
// the range's top-left anchor. Naive writes into merged regions are silently
// ignored by typical spreadsheet engines, so every core writer goes through
// here.
func SetAnchored(ws Worksheet, row, col int, value types.CellValue) {
	for _, r := range ws.MergedRanges() {
		if r.Contains(row, col) {
			ws.SetCell(r.MinRow, r.MinCol, value)
			return
		}
	}
	ws.SetCell(row, col, value)
}

// CellString renders a cell value as trimmed text; empty for nil
func CellString(v types.CellValue) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// SafeNumber converts a cell value to a decimal. nil, empty text, the "-"
// placeholder, and anything non-numeric become zero. Never errors; one bad
// cell must not block the sheet.
func SafeNumber(v types.CellValue) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case int:
		return decimal.NewFromInt(int64(n))
	case float64:
		return decimal.NewFromFloat(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" || s == "-" {
			return decimal.Zero
		}
		s = strings.ReplaceAll(s, ",", "")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Quantity converts a quantity cell. Unlike SafeNumber, an absent or
// non-numeric quantity defaults to 1 so an unquantified row still prices a
// single unit. Negative quantities are clamped to zero.
func Quantity(v types.CellValue) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.NewFromInt(1)
	case int:
		return clampQty(decimal.NewFromInt(int64(n)))
	case float64:
		return clampQty(decimal.NewFromFloat(n))
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if s == "" {
			return decimal.NewFromInt(1)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.NewFromInt(1)
		}
		return clampQty(d)
	default:
		return decimal.NewFromInt(1)
	}
}

func clampQty(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
