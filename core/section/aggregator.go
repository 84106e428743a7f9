// Package section - section aggregation and grand-total roll-up
package section

import (
	"strings"

	"github.com/shopspring/decimal"

	"boq-cost/core/normalize"
	"boq-cost/core/types"
	"boq-cost/core/worksheet"
)

// Totals is the aggregate of one section's cost-bearing rows
type Totals struct {
	MaterialSum decimal.Decimal
	LaborSum    decimal.Decimal
	TotalSum    decimal.Decimal
	ItemCount   int
}

// Aggregator sums cost columns over section row ranges. It always reads the
// worksheet, never in-memory row data, so manually edited and multi-pass
// written cells are reflected.
type Aggregator struct {
	skipTokens []string
}

// NewAggregator creates an aggregator. skipTokens mark rows excluded from
// sums: total markers, nested section headers, trade-name banners.
func NewAggregator(skipTokens []string) *Aggregator {
	norm := make([]string, 0, len(skipTokens))
	for _, t := range skipTokens {
		if n := normalize.Normalize(t); n != "" {
			norm = append(norm, n)
		}
	}
	return &Aggregator{skipTokens: norm}
}

// Skips reports whether row text matches a skip token. The engine reuses
// this to keep header and banner rows out of matching as well.
func (a *Aggregator) Skips(text string) bool {
	return a.skip(text)
}

// skip reports whether a row's marker text excludes it from aggregation
func (a *Aggregator) skip(text string) bool {
	norm := normalize.Normalize(text)
	if norm == "" {
		return false
	}
	for _, tok := range a.skipTokens {
		if strings.Contains(norm, tok) {
			return true
		}
	}
	return false
}

// materialColumn and laborColumn pick the summed columns: the
// quantity-scaled cost column when the trade has one, else the unit column.
func materialColumn(cols types.ColumnMap) int {
	if cols.MaterialCost > 0 {
		return cols.MaterialCost
	}
	return cols.MaterialUnitCost
}

func laborColumn(cols types.ColumnMap) int {
	if cols.LaborCost > 0 {
		return cols.LaborCost
	}
	return cols.LaborUnitCost
}

// AggregateSection sums material, labor and total over [start, end]. A row
// contributes only when at least one of its three cost values is strictly
// positive; all-zero rows stay out of the count as well.
func (a *Aggregator) AggregateSection(ws worksheet.Worksheet, start, end int, cols types.ColumnMap) Totals {
	t := Totals{
		MaterialSum: decimal.Zero,
		LaborSum:    decimal.Zero,
		TotalSum:    decimal.Zero,
	}
	matCol := materialColumn(cols)
	labCol := laborColumn(cols)

	for row := start; row <= end; row++ {
		marker := worksheet.CellString(ws.GetCell(row, markerColumn(cols)))
		if a.skip(marker) {
			continue
		}
		if a.skip(worksheet.CellString(ws.GetCell(row, cols.Name))) {
			continue
		}

		material := worksheet.SafeNumber(ws.GetCell(row, matCol))
		labor := worksheet.SafeNumber(ws.GetCell(row, labCol))
		total := worksheet.SafeNumber(ws.GetCell(row, cols.TotalCost))

		if !material.IsPositive() && !labor.IsPositive() && !total.IsPositive() {
			continue
		}

		t.MaterialSum = t.MaterialSum.Add(material)
		t.LaborSum = t.LaborSum.Add(labor)
		t.TotalSum = t.TotalSum.Add(total)
		t.ItemCount++
	}
	return t
}

// WriteSectionTotal writes a section's sums onto its total row through the
// merged-cell anchor and records the aggregates on the section.
func (a *Aggregator) WriteSectionTotal(ws worksheet.Worksheet, sec *types.Section, cols types.ColumnMap, t Totals) {
	sec.MaterialSum = t.MaterialSum
	sec.LaborSum = t.LaborSum
	sec.TotalSum = t.TotalSum
	sec.ItemCount = t.ItemCount

	if sec.TotalRow == 0 {
		return
	}
	if col := materialColumn(cols); col > 0 {
		worksheet.SetAnchored(ws, sec.TotalRow, col, decimalCell(t.MaterialSum))
	}
	if col := laborColumn(cols); col > 0 {
		worksheet.SetAnchored(ws, sec.TotalRow, col, decimalCell(t.LaborSum))
	}
	if cols.TotalCost > 0 {
		worksheet.SetAnchored(ws, sec.TotalRow, cols.TotalCost, decimalCell(t.TotalSum))
	}
}

// RollUpGrandTotal is the second pass: it re-reads the total cells the
// first pass already wrote, sums them, finds the grand-total marker row and
// writes the sum there. The grand total must come from the written cells,
// not from in-memory aggregates; after merged-cell redirection the sheet is
// the authoritative value.
func (a *Aggregator) RollUpGrandTotal(ws worksheet.Worksheet, sections map[string]*types.Section, cols types.ColumnMap, grandTokens []string) (decimal.Decimal, int) {
	grand := decimal.Zero
	for _, sec := range sections {
		if sec.TotalRow == 0 {
			continue
		}
		grand = grand.Add(worksheet.SafeNumber(ws.GetCell(sec.TotalRow, cols.TotalCost)))
	}

	row := a.findGrandTotalRow(ws, cols, grandTokens)
	if row > 0 && cols.TotalCost > 0 {
		worksheet.SetAnchored(ws, row, cols.TotalCost, decimalCell(grand))
	}
	return grand, row
}

// findGrandTotalRow scans the code and name columns for a grand-total
// token. Grand tokens must be distinct from the section marker tokens.
func (a *Aggregator) findGrandTotalRow(ws worksheet.Worksheet, cols types.ColumnMap, grandTokens []string) int {
	for row := 1; row <= ws.MaxRow(); row++ {
		for _, col := range []int{cols.Code, cols.Name} {
			if col <= 0 {
				continue
			}
			text := normalize.Normalize(worksheet.CellString(ws.GetCell(row, col)))
			if text == "" {
				continue
			}
			for _, tok := range grandTokens {
				if strings.Contains(text, normalize.Normalize(tok)) {
					return row
				}
			}
		}
	}
	return 0
}

func decimalCell(d decimal.Decimal) types.CellValue {
	f, _ := d.Float64()
	return f
}
