// Package engine binds matching, costing, section detection, aggregation
// and markup into the per-trade processing pipeline.
//
// The pipeline runs in a fixed order on one worksheet: cost rows first,
// detect sections on the now-filled sheet, write section totals, then roll
// up the grand total from the written cells, then markups. The roll-up
// depends on the section writes having landed; the order is a contract.
package engine

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"boq-cost/core/catalog"
	"boq-cost/core/costing"
	"boq-cost/core/markup"
	"boq-cost/core/match"
	"boq-cost/core/section"
	"boq-cost/core/types"
	"boq-cost/core/worksheet"
	"boq-cost/internal/errors"
	"boq-cost/internal/logging"
)

// TradeDefinition is the full configuration of one trade: its fixed column
// layout, cost formula variant, detection strategy and token sets. Hand
// authored per trade, never inferred at runtime.
type TradeDefinition struct {
	// Trade identifies the trade
	Trade types.Trade

	// Columns is the trade's fixed column map
	Columns types.ColumnMap

	// Formula is the trade's cost calculation variant
	Formula costing.Formula

	// Strategy detects section boundaries for this trade
	Strategy section.Strategy

	// SkipTokens mark rows excluded from aggregation and row processing
	// (total markers, headers, trade banners)
	SkipTokens []string

	// GrandTotalTokens locate the grand-total row; empty disables the
	// roll-up pass
	GrandTotalTokens []string

	// MarkupPercentages, in output order; empty disables markup writing
	MarkupPercentages []int

	// Matcher tunes fuzzy matching for this trade
	Matcher match.Options
}

// Processor runs the pipeline for one trade
type Processor struct {
	def     TradeDefinition
	matcher *match.Matcher
	agg     *section.Aggregator
	markup  *markup.Writer
	log     *zap.Logger
}

// NewProcessor creates a processor. markupRates may be nil for the default
// rate table.
func NewProcessor(def TradeDefinition, markupRates map[int]decimal.Decimal) *Processor {
	return &Processor{
		def:     def,
		matcher: match.NewMatcher(def.Matcher),
		agg:     section.NewAggregator(def.SkipTokens),
		markup:  markup.NewWriter(markupRates),
		log:     logging.Logger.With(zap.String("trade", def.Trade.String())),
	}
}

// Process runs one sheet start to finish. Row-level failures are logged,
// counted and collected; they never abort the sheet. Only structural
// problems (an unusable definition) return an error.
func (p *Processor) Process(ctx context.Context, ws worksheet.Worksheet, cat catalog.Catalog) (*types.Result, error) {
	if p.def.Formula == nil || p.def.Strategy == nil {
		return nil, errors.New(errors.TypeConfig, "trade definition missing formula or strategy").
			WithContext("trade", p.def.Trade.String())
	}

	items := cat.ListItems(p.def.Trade)
	if len(items) == 0 {
		p.log.Warn("catalog has no items for trade; all rows will be unmatched")
	}

	result := &types.Result{
		Trade:    p.def.Trade,
		Sections: make(map[string]*types.Section),
	}

	maxRow := ws.MaxRow()
	cols := p.def.Columns

	// Phase 1: match and cost every data row, writing through the
	// merged-cell anchor.
	candidates := 0
	matched := 0
	var rowErrs error

	for row := cols.HeaderRow + 1; row <= maxRow; row++ {
		boq, ok := p.readRow(ws, row)
		if !ok {
			continue
		}
		candidates++

		err := p.processRow(ws, row, boq, items, &matched)
		if err != nil {
			result.ItemsFailed++
			rowErrs = multierr.Append(rowErrs, err)
			p.log.Debug("row failed", zap.Int("row", row), zap.Error(err))
			continue
		}
		result.ItemsProcessed++
	}

	// Phase 2: detect sections on the now-filled sheet and write their
	// totals.
	sections, err := p.def.Strategy.FindSections(ws, ws.MaxRow(), cols)
	if err != nil {
		return nil, errors.Wrap(errors.TypeSection, "section detection failed", err).
			WithContext("trade", p.def.Trade.String())
	}
	for _, sec := range sections {
		totals := p.agg.AggregateSection(ws, sec.StartRow, sec.EndRow, cols)
		p.agg.WriteSectionTotal(ws, sec, cols, totals)
		result.Sections[sec.ID] = sec
	}

	// Phase 3: grand total, re-read from the cells phase 2 wrote.
	if len(p.def.GrandTotalTokens) > 0 {
		grand, grandRow := p.agg.RollUpGrandTotal(ws, sections, cols, p.def.GrandTotalTokens)
		result.GrandTotal = grand
		if grandRow == 0 {
			p.log.Debug("no grand-total marker row found")
		}
	}

	// Phase 4: markup variants for every row with a written base cost,
	// item rows and total rows alike.
	if len(p.def.MarkupPercentages) > 0 && cols.MarkupStart > 0 {
		for row := cols.HeaderRow + 1; row <= ws.MaxRow(); row++ {
			base := worksheet.SafeNumber(ws.GetCell(row, cols.TotalCost))
			if !base.IsPositive() {
				continue
			}
			p.markup.WriteMarkups(ws, row, base, p.def.MarkupPercentages, cols.MarkupStart)
		}
	}

	if candidates > 0 {
		result.MatchRate = float64(matched) / float64(candidates) * 100
	}
	result.RowErrors = rowErrs

	p.log.Info("sheet processed",
		zap.Int("processed", result.ItemsProcessed),
		zap.Int("failed", result.ItemsFailed),
		zap.Int("sections", len(result.Sections)),
		zap.Float64("match_rate", result.MatchRate))

	return result, nil
}

// readRow materializes a BOQ row from worksheet cells. Returns false for
// blank rows and rows carrying skip tokens (headers, totals, banners).
func (p *Processor) readRow(ws worksheet.Worksheet, row int) (*types.BOQRow, bool) {
	cols := p.def.Columns
	code := worksheet.CellString(ws.GetCell(row, cols.Code))
	name := worksheet.CellString(ws.GetCell(row, cols.Name))
	if code == "" && name == "" {
		return nil, false
	}
	for _, cell := range []string{code, name, worksheet.CellString(ws.GetCell(row, cols.TotalRowCol))} {
		if cell != "" && p.agg.Skips(cell) {
			return nil, false
		}
	}
	return &types.BOQRow{
		RowIndex: row - cols.HeaderRow - 1,
		Code:     code,
		Name:     name,
		Quantity: worksheet.Quantity(ws.GetCell(row, cols.Quantity)),
	}, true
}

// processRow matches one row and writes its cost breakdown. A recovered
// panic becomes a row error so one malformed row cannot abort the sheet.
func (p *Processor) processRow(ws worksheet.Worksheet, row int, boq *types.BOQRow, items []*types.MasterItem, matched *int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.TypeInternal, "row %d: %v", row, r)
		}
	}()

	res := p.matcher.FindBestMatch(items, boq.Name, boq.Code)
	if res == nil {
		return errors.Newf(errors.TypeMatch, "row %d: no catalog match for %q", row, boq.Name)
	}

	breakdown := p.def.Formula.Calculate(res.Item, boq.Quantity, res.Similarity)
	p.writeBreakdown(ws, row, breakdown)

	if res.Confident() {
		*matched++
	} else {
		p.log.Debug("low-confidence match flagged for review",
			zap.Int("row", row),
			zap.Float64("similarity", res.Similarity),
			zap.String("kind", string(res.Kind)))
	}
	return nil
}

// writeBreakdown writes the breakdown fields the trade's column map has
// homes for
func (p *Processor) writeBreakdown(ws worksheet.Worksheet, row int, b *types.Breakdown) {
	cols := p.def.Columns
	write := func(col int, v types.CostValue) {
		if col > 0 {
			worksheet.SetAnchored(ws, row, col, v.Cell())
		}
	}
	write(cols.MaterialUnitCost, b.MaterialUnitCost)
	write(cols.LaborUnitCost, b.LaborUnitCost)
	write(cols.MaterialCost, b.MaterialCost)
	write(cols.LaborCost, b.LaborCost)
	write(cols.TotalCost, b.TotalCost)
}
