package engine

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boq-cost/core/catalog"
	"boq-cost/core/costing"
	"boq-cost/core/match"
	"boq-cost/core/section"
	"boq-cost/core/types"
	"boq-cost/core/worksheet"
)

var acCols = types.ColumnMap{
	Code:         1,
	Name:         2,
	Quantity:     3,
	Unit:         4,
	MaterialCost: 5,
	LaborCost:    6,
	TotalCost:    7,
	TotalRowCol:  8,
	MarkupStart:  10,
	HeaderRow:    2,
}

func acDefinition() TradeDefinition {
	return TradeDefinition{
		Trade:    types.TradeAC,
		Columns:  acCols,
		Formula:  costing.SystemSimpleFormula{},
		Strategy: section.NewTotalMarkerScan(section.ScanConfig{Tokens: []string{"รวมรายการ", "รวม", "total", "subtotal"}}),
		SkipTokens: []string{
			"รวมรายการ", "รวม", "total", "subtotal",
		},
	}
}

func acCatalog() *catalog.MemoryCatalog {
	cat := catalog.NewMemoryCatalog()
	cat.Register(types.TradeAC, &types.MasterItem{
		Code:             "AC001",
		Name:             "Split Unit",
		MaterialUnitCost: decimal.NewFromInt(15000),
		LaborUnitCost:    decimal.NewFromInt(3000),
	})
	cat.Register(types.TradeAC, &types.MasterItem{
		Code:             "FP002",
		Name:             "Sprinkler Head",
		MaterialUnitCost: decimal.NewFromInt(200),
		LaborUnitCost:    decimal.NewFromInt(50),
	})
	return cat
}

func setRow(ws *worksheet.MemorySheet, row int, code, name string, qty types.CellValue) {
	ws.SetCell(row, acCols.Code, code)
	ws.SetCell(row, acCols.Name, name)
	ws.SetCell(row, acCols.Quantity, qty)
}

func TestExactMatchCostsAndWrites(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", 2.0)

	p := NewProcessor(acDefinition(), nil)
	result, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	assert.Equal(t, 1, result.ItemsProcessed)
	assert.Equal(t, 0, result.ItemsFailed)
	assert.InDelta(t, 100.0, result.MatchRate, 0.001)

	assert.Equal(t, 30000.0, ws.GetCell(3, acCols.MaterialCost))
	assert.Equal(t, 6000.0, ws.GetCell(3, acCols.LaborCost))
	assert.Equal(t, 36000.0, ws.GetCell(3, acCols.TotalCost))
}

func TestHyphenNameRowMatchesByCode(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "FP002", "-", 4.0)

	p := NewProcessor(acDefinition(), nil)
	result, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	// hyphen special case scores 95: confident, costed normally
	assert.Equal(t, 1, result.ItemsProcessed)
	assert.InDelta(t, 100.0, result.MatchRate, 0.001)
	assert.Equal(t, 1000.0, ws.GetCell(3, acCols.TotalCost))
}

func TestUnmatchedRowCountsAsFailed(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "ZZ999", "Completely unknown item", 1.0)
	setRow(ws, 4, "AC001", "Split Unit", 1.0)

	p := NewProcessor(acDefinition(), nil)
	result, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	assert.Equal(t, 1, result.ItemsProcessed)
	assert.Equal(t, 1, result.ItemsFailed)
	assert.InDelta(t, 50.0, result.MatchRate, 0.001)
	assert.Error(t, result.RowErrors)
	// the unmatched row's cost cells stay untouched
	assert.Nil(t, ws.GetCell(3, acCols.TotalCost))
}

func TestEmptyCatalogLeavesAllRowsUnmatched(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", 2.0)

	p := NewProcessor(acDefinition(), nil)
	result, err := p.Process(context.Background(), ws, catalog.NewMemoryCatalog())
	require.NoError(t, err)

	assert.Equal(t, 0, result.ItemsProcessed)
	assert.Equal(t, 1, result.ItemsFailed)
}

func TestLowConfidenceWritesSentinel(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	// wrong code, name close enough to penalize down to the 50 floor is
	// still confident; use a forced low-similarity formula gate instead
	setRow(ws, 3, "AC001", "Split Unit", 2.0)

	def := acDefinition()
	def.Formula = gatedFormula{}
	p := NewProcessor(def, nil)
	result, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	assert.Equal(t, 1, result.ItemsProcessed)
	assert.Equal(t, types.NeedsReviewText, ws.GetCell(3, acCols.TotalCost))
}

// gatedFormula ignores the incoming similarity and always flags for review
type gatedFormula struct{}

func (gatedFormula) Name() string { return "gated" }
func (gatedFormula) Calculate(item *types.MasterItem, qty decimal.Decimal, similarity float64) *types.Breakdown {
	return costing.SystemSimpleFormula{}.Calculate(item, qty, 0)
}

func TestSectionsDetectedAndTotalsWritten(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", 2.0)
	setRow(ws, 4, "AC001", "Split Unit", 1.0)
	ws.SetCell(5, acCols.TotalRowCol, "รวม")
	setRow(ws, 6, "FP002", "Sprinkler Head", 10.0)
	ws.SetCell(7, acCols.TotalRowCol, "รวม")

	p := NewProcessor(acDefinition(), nil)
	result, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	require.Len(t, result.Sections, 2)

	// section totals are written onto the marker rows
	assert.Equal(t, 54000.0, ws.GetCell(5, acCols.TotalCost))
	assert.Equal(t, 2500.0, ws.GetCell(7, acCols.TotalCost))

	for _, sec := range result.Sections {
		assert.GreaterOrEqual(t, sec.EndRow, sec.StartRow, "section %s", sec.ID)
	}
}

func TestDegenerateSheetGetsMainSection(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", 1.0)

	p := NewProcessor(acDefinition(), nil)
	result, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	require.Len(t, result.Sections, 1)
	main := result.Sections[types.MainSectionID]
	require.NotNil(t, main)
	assert.Equal(t, 1, main.ItemCount)
	assert.True(t, main.TotalSum.Equal(decimal.NewFromInt(18000)))
}

func TestGrandTotalRollsUpFromWrittenCells(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", 1.0)
	ws.SetCell(4, acCols.TotalRowCol, "รวม")
	setRow(ws, 5, "FP002", "Sprinkler Head", 2.0)
	ws.SetCell(6, acCols.TotalRowCol, "รวม")
	ws.SetCell(8, acCols.Name, "รวมรายการทั้งหมด")

	def := acDefinition()
	def.GrandTotalTokens = []string{"รวมรายการ"}
	p := NewProcessor(def, nil)
	result, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	assert.True(t, result.GrandTotal.Equal(decimal.NewFromInt(18500)),
		"grand = %s", result.GrandTotal)
	assert.Equal(t, 18500.0, ws.GetCell(8, acCols.TotalCost))
}

func TestMarkupsWrittenForItemAndTotalRows(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", 1.0)
	ws.SetCell(4, acCols.TotalRowCol, "รวม")

	def := acDefinition()
	def.MarkupPercentages = []int{30, 100}
	p := NewProcessor(def, nil)
	_, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	// item row markups
	assert.Equal(t, 23400.0, ws.GetCell(3, acCols.MarkupStart))
	assert.Equal(t, 36000.0, ws.GetCell(3, acCols.MarkupStart+1))
	// section total row markups from its own written base
	assert.Equal(t, 23400.0, ws.GetCell(4, acCols.MarkupStart))
}

func TestMergedTotalCellWriteRedirects(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", 1.0)
	// the row's total cell is merged with the cell to its right
	ws.Merge(3, acCols.TotalCost, 3, acCols.TotalCost+1)

	p := NewProcessor(acDefinition(), nil)
	_, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	assert.Equal(t, 18000.0, ws.GetCell(3, acCols.TotalCost))
}

func TestMissingFormulaIsConfigError(t *testing.T) {
	def := acDefinition()
	def.Formula = nil
	p := NewProcessor(def, nil)
	_, err := p.Process(context.Background(), worksheet.NewMemorySheet(), acCatalog())
	require.Error(t, err)
}

func TestQuantityDefaultsWhenAbsent(t *testing.T) {
	ws := worksheet.NewMemorySheet()
	setRow(ws, 3, "AC001", "Split Unit", nil)

	p := NewProcessor(acDefinition(), nil)
	_, err := p.Process(context.Background(), ws, acCatalog())
	require.NoError(t, err)

	assert.Equal(t, 18000.0, ws.GetCell(3, acCols.TotalCost))
}

func TestInteriorEndToEnd(t *testing.T) {
	cols := types.ColumnMap{
		Code:             1,
		Name:             2,
		Quantity:         3,
		MaterialUnitCost: 5,
		LaborUnitCost:    6,
		TotalCost:        7,
		HeaderRow:        2,
	}
	def := TradeDefinition{
		Trade:            types.TradeInterior,
		Columns:          cols,
		Formula:          costing.InteriorFormula{},
		Strategy:         section.NewTotalMarkerScan(section.ScanConfig{Tokens: []string{"total"}, Exact: true}),
		SkipTokens:       []string{"total", "รวมรายการ"},
		GrandTotalTokens: []string{"รวมรายการ"},
		Matcher:          match.Options{},
	}

	cat := catalog.NewMemoryCatalog()
	cat.Register(types.TradeInterior, &types.MasterItem{
		Code:             "IN001",
		Name:             "Gypsum ceiling",
		MaterialUnitCost: decimal.NewFromInt(100),
		LaborUnitCost:    decimal.NewFromInt(0),
	})

	ws := worksheet.NewMemorySheet()
	ws.SetCell(3, cols.Code, "IN001")
	ws.SetCell(3, cols.Name, "Gypsum ceiling")
	ws.SetCell(3, cols.Quantity, 5.0)
	ws.SetCell(4, cols.Code, "total")
	ws.SetCell(6, cols.Name, "รวมรายการ")

	p := NewProcessor(def, nil)
	result, err := p.Process(context.Background(), ws, cat)
	require.NoError(t, err)

	// (100 + 0) * 5, numeric because similarity is above threshold
	assert.Equal(t, 500.0, ws.GetCell(3, cols.TotalCost))
	assert.Equal(t, 500.0, ws.GetCell(4, cols.TotalCost))
	assert.Equal(t, 500.0, ws.GetCell(6, cols.TotalCost))
	assert.True(t, result.GrandTotal.Equal(decimal.NewFromInt(500)))
}
