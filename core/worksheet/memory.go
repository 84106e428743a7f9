// Package worksheet - in-memory implementation
package worksheet

import "boq-cost/core/types"

type cellKey struct {
	row int
	col int
}

// MemorySheet is a map-backed Worksheet. Used as a test double and as a
// scratch target for dry runs.
type MemorySheet struct {
	cells  map[cellKey]types.CellValue
	merged []MergedRange
	maxRow int
}

// NewMemorySheet creates an empty sheet
func NewMemorySheet() *MemorySheet {
	return &MemorySheet{cells: make(map[cellKey]types.CellValue)}
}

// GetCell reads a cell; nil when never written
func (m *MemorySheet) GetCell(row, col int) types.CellValue {
	return m.cells[cellKey{row, col}]
}

// SetCell writes a cell and extends the data region
func (m *MemorySheet) SetCell(row, col int, value types.CellValue) {
	m.cells[cellKey{row, col}] = value
	if row > m.maxRow {
		m.maxRow = row
	}
}

// MergedRanges enumerates configured merged regions
func (m *MemorySheet) MergedRanges() []MergedRange {
	return m.merged
}

// Merge declares a merged region, mirroring a real workbook's layout
func (m *MemorySheet) Merge(minRow, minCol, maxRow, maxCol int) {
	m.merged = append(m.merged, MergedRange{MinRow: minRow, MinCol: minCol, MaxRow: maxRow, MaxCol: maxCol})
}

// MaxRow is the last written row
func (m *MemorySheet) MaxRow() int {
	return m.maxRow
}
