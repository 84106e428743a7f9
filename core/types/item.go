// Package types - catalog and BOQ line item types
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MasterItem is a priced catalog entry. Read-only from the core's
// perspective; created by catalog import or administrative tooling.
type MasterItem struct {
	// ID is an opaque unique identifier, assigned at creation
	ID string `json:"id"`

	// Code is the trade-specific short code; may be empty
	Code string `json:"code"`

	// Name is the human-readable description; required
	Name string `json:"name"`

	// MaterialUnitCost is the material cost per unit
	MaterialUnitCost decimal.Decimal `json:"material_unit_cost"`

	// LaborUnitCost is the labor cost per unit
	LaborUnitCost decimal.Decimal `json:"labor_unit_cost"`

	// Unit is the unit-of-measure label; may be empty
	Unit string `json:"unit"`
}

// TotalUnitCost is always derived from its inputs, never stored
func (m *MasterItem) TotalUnitCost() decimal.Decimal {
	return m.MaterialUnitCost.Add(m.LaborUnitCost)
}

// DedupKey identifies an item for catalog deduplication
func (m *MasterItem) DedupKey() string {
	return strings.TrimSpace(m.Code) + "\x00" + strings.TrimSpace(m.Name)
}

// BOQRow is one line of an uploaded bill of quantities, materialized
// transiently per processing run.
type BOQRow struct {
	// RowIndex is the zero-based position within the sheet's data region
	RowIndex int `json:"row_index"`

	// Code is the raw code text, trimmed only
	Code string `json:"code"`

	// Name is the raw description text, trimmed only
	Name string `json:"name"`

	// Quantity is the non-negative multiplier; 1 when absent or non-numeric
	Quantity decimal.Decimal `json:"quantity"`
}

// MatchKind classifies how a match was scored. Diagnostic only.
type MatchKind string

const (
	MatchExact         MatchKind = "exact"
	MatchHyphenCode    MatchKind = "hyphen_code"
	MatchCodeBoosted   MatchKind = "code_boosted"
	MatchNamePenalized MatchKind = "name_penalized"
)

// MatchThreshold is the minimum similarity for a match to be trusted.
// Results below it must not drive cost writing.
const MatchThreshold = 50.0

// MatchResult is the outcome of matching one BOQ row against the catalog
type MatchResult struct {
	// Item is the matched catalog entry (shared, read-only)
	Item *MasterItem `json:"item"`

	// Similarity is the match score in [0, 100]
	Similarity float64 `json:"similarity"`

	// Kind records the scoring branch that produced this result
	Kind MatchKind `json:"kind"`
}

// Confident reports whether the match clears the trust threshold
func (r *MatchResult) Confident() bool {
	return r != nil && r.Similarity >= MatchThreshold
}
