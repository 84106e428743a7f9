// Package section detects subtotal sections in a trade sheet and rolls
// their totals up.
//
// Detection maturity differs per trade in production: some trades scan for
// total-marker rows, others always treat the sheet as one section. The
// asymmetry is explicit here as two Strategy implementations selected per
// trade by configuration.
package section

import (
	"boq-cost/core/types"
	"boq-cost/core/worksheet"
)

// Strategy partitions a sheet's rows into sections
type Strategy interface {
	// Name returns the strategy identifier
	Name() string

	// FindSections scans rows 1..maxRow and returns detected sections
	// keyed by section ID. Must succeed on any sheet; a sheet without
	// total markers degrades to a single whole-sheet section.
	FindSections(ws worksheet.Worksheet, maxRow int, cols types.ColumnMap) (map[string]*types.Section, error)
}

// WholeSheetStrategy always returns a single MAIN_SECTION spanning the full
// data region, with no total row.
type WholeSheetStrategy struct{}

// Name returns the strategy identifier
func (WholeSheetStrategy) Name() string { return "whole_sheet" }

// FindSections returns the single whole-sheet section
func (WholeSheetStrategy) FindSections(ws worksheet.Worksheet, maxRow int, cols types.ColumnMap) (map[string]*types.Section, error) {
	return map[string]*types.Section{
		types.MainSectionID: wholeSheet(maxRow, cols),
	}, nil
}

// wholeSheet builds the degenerate full-range section, keeping the
// EndRow >= StartRow invariant on any input.
func wholeSheet(maxRow int, cols types.ColumnMap) *types.Section {
	if maxRow < 1 {
		maxRow = 1
	}
	start := cols.HeaderRow + 1
	if start < 1 {
		start = 1
	}
	if start > maxRow {
		start = maxRow
	}
	return &types.Section{
		ID:       types.MainSectionID,
		StartRow: start,
		EndRow:   maxRow,
	}
}
