package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"boq-cost/core/types"
)

func TestRegisterDeduplicates(t *testing.T) {
	cat := NewMemoryCatalog()

	a := &types.MasterItem{Code: "AC001", Name: "Split Unit", MaterialUnitCost: decimal.NewFromInt(15000)}
	b := &types.MasterItem{Code: "AC001", Name: "Split Unit", MaterialUnitCost: decimal.NewFromInt(99999)}

	if !cat.Register(types.TradeAC, a) {
		t.Fatal("first register rejected")
	}
	if cat.Register(types.TradeAC, b) {
		t.Error("duplicate (code, name) should be dropped")
	}
	if cat.Size(types.TradeAC) != 1 {
		t.Errorf("size = %d, want 1", cat.Size(types.TradeAC))
	}
	// first entry wins
	if got := cat.ListItems(types.TradeAC)[0]; !got.MaterialUnitCost.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("kept item material cost = %s", got.MaterialUnitCost)
	}
}

func TestRegisterAssignsID(t *testing.T) {
	cat := NewMemoryCatalog()
	item := &types.MasterItem{Name: "Fire Pump"}
	cat.Register(types.TradeFireProtection, item)

	if item.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestRegisterRejectsNameless(t *testing.T) {
	cat := NewMemoryCatalog()
	if cat.Register(types.TradeInterior, &types.MasterItem{Code: "X"}) {
		t.Error("nameless item must be rejected")
	}
	if cat.Register(types.TradeInterior, nil) {
		t.Error("nil item must be rejected")
	}
}

func TestItemsIsolatedPerTrade(t *testing.T) {
	cat := NewMemoryCatalog()
	cat.Register(types.TradeAC, &types.MasterItem{Code: "AC001", Name: "Split Unit"})

	if got := cat.ListItems(types.TradeElectrical); len(got) != 0 {
		t.Errorf("electrical list = %d items, want 0", len(got))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
		"ac": [
			{"code": "AC001", "name": "Split Unit", "material_unit_cost": 15000, "labor_unit_cost": 3000, "unit": "set"},
			{"code": "AC001", "name": "Split Unit", "material_unit_cost": 1}
		],
		"interior": [
			{"code": "IN001", "name": "Gypsum ceiling", "material_unit_cost": 320, "labor_unit_cost": 80, "unit": "sqm"}
		],
		"plumbing": [
			{"code": "PL001", "name": "Unknown trade item"}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Size(types.TradeAC) != 1 {
		t.Errorf("ac size = %d, want 1 after dedup", cat.Size(types.TradeAC))
	}
	if cat.Size(types.TradeInterior) != 1 {
		t.Errorf("interior size = %d, want 1", cat.Size(types.TradeInterior))
	}

	item := cat.ListItems(types.TradeAC)[0]
	if !item.TotalUnitCost().Equal(decimal.NewFromInt(18000)) {
		t.Errorf("TotalUnitCost = %s, want 18000", item.TotalUnitCost())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
