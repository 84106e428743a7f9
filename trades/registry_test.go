package trades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boq-cost/core/costing"
	"boq-cost/core/engine"
	"boq-cost/core/section"
	"boq-cost/core/types"
)

func testDefinition(trade types.Trade) *engine.TradeDefinition {
	return &engine.TradeDefinition{
		Trade:    trade,
		Columns:  types.ColumnMap{Code: 1, Name: 2, Quantity: 3, TotalCost: 4, HeaderRow: 1},
		Formula:  costing.SystemSimpleFormula{},
		Strategy: section.WholeSheetStrategy{},
	}
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(testDefinition(types.TradeElectrical)))

	def, ok := r.Get(types.TradeElectrical)
	require.True(t, ok)
	assert.Equal(t, types.TradeElectrical, def.Trade)

	_, ok = r.Get(types.TradeInterior)
	assert.False(t, ok)
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(testDefinition(types.TradeAC)))
	err := r.Register(testDefinition(types.TradeAC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterIncomplete(t *testing.T) {
	r := NewRegistry()

	def := testDefinition(types.TradeFireProtection)
	def.Formula = nil
	require.Error(t, r.Register(def))

	def = testDefinition(types.TradeFireProtection)
	def.Strategy = nil
	require.Error(t, r.Register(def))
}

func TestTrades(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testDefinition(types.TradeInterior)))
	require.NoError(t, r.Register(testDefinition(types.TradeElectrical)))

	assert.ElementsMatch(t,
		[]types.Trade{types.TradeInterior, types.TradeElectrical},
		r.Trades())
}
