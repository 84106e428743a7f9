// Package excel adapts excelize workbooks to the core Worksheet capability.
package excel

import (
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"boq-cost/core/types"
	"boq-cost/core/worksheet"
	"boq-cost/internal/errors"
)

// Workbook wraps an open xlsx file
type Workbook struct {
	file *excelize.File
}

// Open reads a workbook from disk
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Worksheet("opening workbook", err).WithContext("path", path)
	}
	return &Workbook{file: f}, nil
}

// OpenReader reads a workbook from a stream
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Worksheet("reading workbook", err)
	}
	return &Workbook{file: f}, nil
}

// SheetNames lists the workbook's sheets in order
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Sheet returns a Worksheet view of one sheet
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, errors.NotFound("sheet", name)
	}

	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, errors.Worksheet("reading sheet rows", err).WithContext("sheet", name)
	}

	s := &Sheet{file: w.file, name: name, maxRow: len(rows)}
	if err := s.loadMergedRanges(); err != nil {
		return nil, err
	}
	return s, nil
}

// FirstSheet returns the workbook's first sheet
func (w *Workbook) FirstSheet() (*Sheet, error) {
	names := w.SheetNames()
	if len(names) == 0 {
		return nil, errors.New(errors.TypeWorksheet, "workbook has no sheets")
	}
	return w.Sheet(names[0])
}

// SaveAs writes the workbook to disk
func (w *Workbook) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return errors.Worksheet("saving workbook", err).WithContext("path", path)
	}
	return nil
}

// Write streams the workbook
func (w *Workbook) Write(dst io.Writer) error {
	if err := w.file.Write(dst); err != nil {
		return errors.Worksheet("writing workbook", err)
	}
	return nil
}

// Close releases the underlying file
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Sheet is one worksheet of an open workbook. Merged ranges are read once
// at open; processing never adds merges.
type Sheet struct {
	file   *excelize.File
	name   string
	merged []worksheet.MergedRange
	maxRow int
}

// loadMergedRanges caches the sheet's merged regions
func (s *Sheet) loadMergedRanges() error {
	cells, err := s.file.GetMergeCells(s.name)
	if err != nil {
		return errors.Worksheet("reading merged cells", err).WithContext("sheet", s.name)
	}
	for _, mc := range cells {
		minCol, minRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		maxCol, maxRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		s.merged = append(s.merged, worksheet.MergedRange{
			MinRow: minRow, MinCol: minCol,
			MaxRow: maxRow, MaxCol: maxCol,
		})
	}
	return nil
}

// Name returns the sheet name
func (s *Sheet) Name() string {
	return s.name
}

// GetCell reads a cell, preserving the number/text distinction. Cells
// stored as strings stay strings even when they look numeric, so codes
// like "001" survive.
func (s *Sheet) GetCell(row, col int) types.CellValue {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil
	}
	raw, err := s.file.GetCellValue(s.name, axis)
	if err != nil || raw == "" {
		return nil
	}

	cellType, err := s.file.GetCellType(s.name, axis)
	if err == nil {
		switch cellType {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
			return raw
		}
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// SetCell writes a cell value
func (s *Sheet) SetCell(row, col int, value types.CellValue) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	_ = s.file.SetCellValue(s.name, axis, value)
	if row > s.maxRow {
		s.maxRow = row
	}
}

// MergedRanges enumerates the sheet's merged regions
func (s *Sheet) MergedRanges() []worksheet.MergedRange {
	return s.merged
}

// MaxRow is the last row carrying data
func (s *Sheet) MaxRow() int {
	return s.maxRow
}
