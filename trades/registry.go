// Package trades provides the trade plugin system.
// Each trade registers its fixed column map, cost formula variant and
// section detection strategy without modifying core.
package trades

import (
	"fmt"
	"sync"

	"boq-cost/core/engine"
	"boq-cost/core/types"
)

// Registry manages trade definition registration
type Registry struct {
	mu   sync.RWMutex
	defs map[types.Trade]*engine.TradeDefinition
}

// NewRegistry creates a new trade registry
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[types.Trade]*engine.TradeDefinition),
	}
}

// Register adds a trade definition to the registry
func (r *Registry) Register(def *engine.TradeDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Trade]; exists {
		return fmt.Errorf("trade already registered: %s", def.Trade)
	}
	if def.Formula == nil || def.Strategy == nil {
		return fmt.Errorf("trade %s: definition incomplete", def.Trade)
	}

	r.defs[def.Trade] = def
	return nil
}

// Get returns a trade definition
func (r *Registry) Get(trade types.Trade) (*engine.TradeDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[trade]
	return def, ok
}

// Trades returns all registered trade IDs
func (r *Registry) Trades() []types.Trade {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.Trade, 0, len(r.defs))
	for t := range r.defs {
		out = append(out, t)
	}
	return out
}

// Global default registry
var defaultRegistry = NewRegistry()

// Register adds a trade to the default registry
func Register(def *engine.TradeDefinition) error {
	return defaultRegistry.Register(def)
}

// Get looks up a trade in the default registry
func Get(trade types.Trade) (*engine.TradeDefinition, bool) {
	return defaultRegistry.Get(trade)
}

// DefaultRegistry returns the default registry
func DefaultRegistry() *Registry {
	return defaultRegistry
}
