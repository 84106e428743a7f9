// Package catalog - per-trade master price list
// The core only reads the catalog; population and CRUD belong to external
// tooling. Reads must not run concurrently with catalog mutation.
package catalog

import (
	"github.com/google/uuid"

	"boq-cost/core/types"
)

// Catalog is the read capability the core consumes
type Catalog interface {
	// ListItems returns all priced items for a trade
	ListItems(trade types.Trade) []*types.MasterItem
}

// MemoryCatalog holds master items in memory, keyed by trade
type MemoryCatalog struct {
	items map[types.Trade][]*types.MasterItem
	seen  map[types.Trade]map[string]bool
}

// NewMemoryCatalog creates an empty catalog
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		items: make(map[types.Trade][]*types.MasterItem),
		seen:  make(map[types.Trade]map[string]bool),
	}
}

// Register adds an item to a trade's list, assigning an ID when missing.
// Duplicate (code, name) pairs within a trade are dropped; the first entry
// wins. Items without a name are rejected.
func (c *MemoryCatalog) Register(trade types.Trade, item *types.MasterItem) bool {
	if item == nil || item.Name == "" {
		return false
	}
	if c.seen[trade] == nil {
		c.seen[trade] = make(map[string]bool)
	}
	key := item.DedupKey()
	if c.seen[trade][key] {
		return false
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	c.seen[trade][key] = true
	c.items[trade] = append(c.items[trade], item)
	return true
}

// ListItems returns the trade's items in registration order
func (c *MemoryCatalog) ListItems(trade types.Trade) []*types.MasterItem {
	return c.items[trade]
}

// Size counts items for a trade
func (c *MemoryCatalog) Size(trade types.Trade) int {
	return len(c.items[trade])
}
