// Package types - section and processing result types
package types

import "github.com/shopspring/decimal"

// MainSectionID names the synthetic whole-sheet section emitted when no
// total markers exist.
const MainSectionID = "MAIN_SECTION"

// Section is a contiguous run of BOQ rows sharing one subtotal. Detected
// fresh on every processing run; never persisted.
type Section struct {
	// ID is the section label, or a generated fallback token
	ID string `json:"id"`

	// StartRow and EndRow are 1-based inclusive worksheet rows.
	// Invariant: EndRow >= StartRow.
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`

	// TotalRow is the 1-based row holding the section subtotal;
	// 0 when no total row exists (boundary-only mode)
	TotalRow int `json:"total_row,omitempty"`

	// Aggregates, computed from worksheet cells after cost writing.
	// Never derived from BOQRow data directly.
	MaterialSum decimal.Decimal `json:"material_sum"`
	LaborSum    decimal.Decimal `json:"labor_sum"`
	TotalSum    decimal.Decimal `json:"total_sum"`
	ItemCount   int             `json:"item_count"`
}

// Result is the output of one processing run, handed back to the calling
// layer for reporting.
type Result struct {
	// Trade is the processed trade
	Trade Trade `json:"trade"`

	// Sections maps section ID to the detected, aggregated section
	Sections map[string]*Section `json:"sections"`

	// ItemsProcessed counts rows that received a cost write,
	// including needs-review sentinels
	ItemsProcessed int `json:"items_processed"`

	// ItemsFailed counts unmatched rows and rows that errored
	ItemsFailed int `json:"items_failed"`

	// MatchRate is the percentage of candidate rows with a confident match
	MatchRate float64 `json:"match_rate"`

	// GrandTotal is the rolled-up total across sections, when computed
	GrandTotal decimal.Decimal `json:"grand_total"`

	// RowErrors aggregates non-fatal per-row errors for diagnostics
	RowErrors error `json:"-"`
}
