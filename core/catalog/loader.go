// Package catalog - JSON file loader
package catalog

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"

	"boq-cost/core/types"
	"boq-cost/internal/errors"
)

// fileItem is the on-disk item shape
type fileItem struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	MaterialUnitCost float64 `json:"material_unit_cost"`
	LaborUnitCost    float64 `json:"labor_unit_cost"`
	Unit             string  `json:"unit"`
}

// Load reads a catalog file: a JSON object mapping trade names to item
// lists. Unknown trades and duplicate items are skipped, not fatal.
func Load(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Catalog("reading catalog file", err).WithContext("path", path)
	}

	var byTrade map[string][]fileItem
	if err := json.Unmarshal(data, &byTrade); err != nil {
		return nil, errors.Catalog("parsing catalog file", err).WithContext("path", path)
	}

	cat := NewMemoryCatalog()
	for name, items := range byTrade {
		trade, ok := types.ParseTrade(name)
		if !ok {
			continue
		}
		for _, fi := range items {
			cat.Register(trade, &types.MasterItem{
				Code:             fi.Code,
				Name:             fi.Name,
				MaterialUnitCost: nonNegative(fi.MaterialUnitCost),
				LaborUnitCost:    nonNegative(fi.LaborUnitCost),
				Unit:             fi.Unit,
			})
		}
	}
	return cat, nil
}

// nonNegative clamps a monetary input; unit costs are never negative
func nonNegative(f float64) decimal.Decimal {
	if f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
