package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"boq-cost/core/worksheet"
)

func buildWorkbook(t *testing.T) *Workbook {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetCellStr(sheet, "A1", "001"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Cable tray 100mm"))
	require.NoError(t, f.SetCellValue(sheet, "C1", 2500.5))
	require.NoError(t, f.SetCellValue(sheet, "C2", 3))
	require.NoError(t, f.MergeCell(sheet, "A4", "C4"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	wb, err := OpenReader(&buf)
	require.NoError(t, err)
	return wb
}

func TestSheetTypedReads(t *testing.T) {
	wb := buildWorkbook(t)
	defer wb.Close()

	s, err := wb.FirstSheet()
	require.NoError(t, err)

	assert.Equal(t, "001", s.GetCell(1, 1), "text cell keeps leading zero")
	assert.Equal(t, "Cable tray 100mm", s.GetCell(1, 2))
	assert.Equal(t, 2500.5, s.GetCell(1, 3))
	assert.Equal(t, float64(3), s.GetCell(2, 3))
	assert.Nil(t, s.GetCell(1, 4), "empty cell reads nil")
	assert.Nil(t, s.GetCell(50, 1))
}

func TestSheetWriteReadRoundTrip(t *testing.T) {
	wb := buildWorkbook(t)
	defer wb.Close()

	s, err := wb.FirstSheet()
	require.NoError(t, err)

	s.SetCell(6, 2, 42000.75)
	s.SetCell(7, 2, "pending")

	assert.Equal(t, 42000.75, s.GetCell(6, 2))
	assert.Equal(t, "pending", s.GetCell(7, 2))
	assert.Equal(t, 7, s.MaxRow(), "writes below the data extend MaxRow")
}

func TestSheetMergedRanges(t *testing.T) {
	wb := buildWorkbook(t)
	defer wb.Close()

	s, err := wb.FirstSheet()
	require.NoError(t, err)

	ranges := s.MergedRanges()
	require.Len(t, ranges, 1)
	assert.Equal(t, worksheet.MergedRange{MinRow: 4, MinCol: 1, MaxRow: 4, MaxCol: 3}, ranges[0])

	// Writing into the middle of the merge lands on the anchor.
	worksheet.SetAnchored(s, 4, 3, 999.0)
	assert.Equal(t, float64(999), s.GetCell(4, 1))
}

func TestSheetMissing(t *testing.T) {
	wb := buildWorkbook(t)
	defer wb.Close()

	_, err := wb.Sheet("NoSuchSheet")
	require.Error(t, err)
}

func TestWorkbookWritePersists(t *testing.T) {
	wb := buildWorkbook(t)

	s, err := wb.FirstSheet()
	require.NoError(t, err)
	s.SetCell(2, 1, "written")

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	require.NoError(t, wb.Close())

	reopened, err := OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()

	s2, err := reopened.FirstSheet()
	require.NoError(t, err)
	assert.Equal(t, "written", s2.GetCell(2, 1))
}
