// Package section - total-marker scanning strategy
package section

import (
	"fmt"
	"strings"

	"boq-cost/core/normalize"
	"boq-cost/core/types"
	"boq-cost/core/worksheet"
)

const (
	defaultLabelWindow  = 50
	defaultMarkerWindow = 100
	defaultFallbackSpan = 20
)

// ScanConfig tunes the marker-scanning detector
type ScanConfig struct {
	// Tokens are the total-marker indicators, compared after
	// normalization
	Tokens []string

	// Exact requires the marker cell to equal a token; otherwise a
	// substring match suffices
	Exact bool

	// LabelWindow bounds the upward search for a row repeating the
	// total row's label (Method A)
	LabelWindow int

	// MarkerWindow bounds the upward search for the previous total
	// marker (Method B)
	MarkerWindow int

	// FallbackSpan bounds the section when neither method resolves a
	// boundary
	FallbackSpan int
}

// TotalMarkerScanStrategy partitions rows by scanning a marker column for
// total indicators. Each marker row closes the section above it.
type TotalMarkerScanStrategy struct {
	cfg ScanConfig
}

// NewTotalMarkerScan creates the strategy, applying window defaults
func NewTotalMarkerScan(cfg ScanConfig) *TotalMarkerScanStrategy {
	if cfg.LabelWindow <= 0 {
		cfg.LabelWindow = defaultLabelWindow
	}
	if cfg.MarkerWindow <= 0 {
		cfg.MarkerWindow = defaultMarkerWindow
	}
	if cfg.FallbackSpan <= 0 {
		cfg.FallbackSpan = defaultFallbackSpan
	}
	return &TotalMarkerScanStrategy{cfg: cfg}
}

// Name returns the strategy identifier
func (s *TotalMarkerScanStrategy) Name() string { return "total_marker_scan" }

// markerColumn picks the cell scanned for total indicators: the dedicated
// total column when the trade has one, else the code column.
func markerColumn(cols types.ColumnMap) int {
	if cols.TotalRowCol > 0 {
		return cols.TotalRowCol
	}
	return cols.Code
}

// isMarker reports whether normalized cell text is a total indicator
func (s *TotalMarkerScanStrategy) isMarker(text string) bool {
	norm := normalize.Normalize(text)
	if norm == "" {
		return false
	}
	for _, tok := range s.cfg.Tokens {
		t := normalize.Normalize(tok)
		if s.cfg.Exact {
			if norm == t {
				return true
			}
		} else if strings.Contains(norm, t) {
			return true
		}
	}
	return false
}

// FindSections scans top to bottom. A sheet with zero markers returns the
// single MAIN_SECTION covering the full range; this path never fails.
func (s *TotalMarkerScanStrategy) FindSections(ws worksheet.Worksheet, maxRow int, cols types.ColumnMap) (map[string]*types.Section, error) {
	sections := make(map[string]*types.Section)
	markerCol := markerColumn(cols)
	count := 0

	for row := 1; row <= maxRow; row++ {
		text := worksheet.CellString(ws.GetCell(row, markerCol))
		if !s.isMarker(text) {
			continue
		}

		end := row - 1
		if end < 1 {
			// marker with no room above it closes nothing
			continue
		}

		label := worksheet.CellString(ws.GetCell(row, cols.Name))
		start, id := s.resolveStart(ws, row, cols, label)
		if start > end {
			start = end
		}
		if start < 1 {
			start = 1
		}

		count++
		if id == "" {
			id = fmt.Sprintf("SECTION_%d", count)
		}
		if _, dup := sections[id]; dup {
			id = fmt.Sprintf("%s_%d", id, row)
		}

		sections[id] = &types.Section{
			ID:       id,
			StartRow: start,
			EndRow:   end,
			TotalRow: row,
		}
	}

	if len(sections) == 0 {
		return map[string]*types.Section{
			types.MainSectionID: wholeSheet(maxRow, cols),
		}, nil
	}
	return sections, nil
}

// resolveStart finds where the section closed by the marker at totalRow
// begins, trying Method A (label repeat), then Method B (previous marker),
// then bounded fallbacks.
func (s *TotalMarkerScanStrategy) resolveStart(ws worksheet.Worksheet, totalRow int, cols types.ColumnMap, label string) (int, string) {
	// Method A: the total row often repeats the section's label; the
	// matching row above is the section header.
	if label != "" {
		normLabel := normalize.Normalize(label)
		floor := totalRow - s.cfg.LabelWindow
		if floor < 1 {
			floor = 1
		}
		for i := totalRow - 1; i >= floor; i-- {
			code := normalize.Normalize(worksheet.CellString(ws.GetCell(i, cols.Code)))
			name := normalize.Normalize(worksheet.CellString(ws.GetCell(i, cols.Name)))
			if code == normLabel || name == normLabel {
				return i + 1, label
			}
		}
	}

	// Method B: the previous total marker bounds this section from above.
	markerCol := markerColumn(cols)
	floor := totalRow - s.cfg.MarkerWindow
	if floor < 1 {
		floor = 1
	}
	for j := totalRow - 1; j >= floor; j-- {
		if !s.isMarker(worksheet.CellString(ws.GetCell(j, markerCol))) {
			continue
		}
		cand := j + 1
		if s.isHeaderRow(ws, cand, cols) {
			return cand + 1, headerLabel(ws, cand, cols)
		}
		// The row after the previous marker is already data; the
		// section has no header line of its own.
		return cand, fmt.Sprintf("FALLBACK%d", totalRow)
	}

	// No boundary found. The first section in a sheet starts right after
	// the header row; otherwise fall back to a bounded span.
	if cols.HeaderRow > 0 && cols.HeaderRow+1 < totalRow {
		id := label
		return cols.HeaderRow + 1, id
	}
	start := totalRow - s.cfg.FallbackSpan
	if start < 1 {
		start = 1
	}
	return start, fmt.Sprintf("FALLBACK%d", totalRow)
}

// isHeaderRow reports whether a row looks like a section header: it carries
// a label but no cost values.
func (s *TotalMarkerScanStrategy) isHeaderRow(ws worksheet.Worksheet, row int, cols types.ColumnMap) bool {
	if headerLabel(ws, row, cols) == "" {
		return false
	}
	for _, col := range costColumns(cols) {
		if worksheet.SafeNumber(ws.GetCell(row, col)).IsPositive() {
			return false
		}
	}
	return true
}

// headerLabel reads a row's label from its name cell, falling back to code
func headerLabel(ws worksheet.Worksheet, row int, cols types.ColumnMap) string {
	if name := worksheet.CellString(ws.GetCell(row, cols.Name)); name != "" {
		return name
	}
	return worksheet.CellString(ws.GetCell(row, cols.Code))
}

// costColumns lists the trade's populated cost columns
func costColumns(cols types.ColumnMap) []int {
	var out []int
	for _, c := range []int{cols.MaterialUnitCost, cols.LaborUnitCost, cols.MaterialCost, cols.LaborCost, cols.TotalCost} {
		if c > 0 {
			out = append(out, c)
		}
	}
	return out
}
