package planner

import (
	"github.com/shopspring/decimal"
)

// InventoryLedger groups on-hand stacks per item, preserving the order
// they were loaded in. Stacks are drained in exactly that order during
// a run — no FIFO, LIFO or zone-priority policy is applied. The ledger
// deep-copies its input so two engines built from the same snapshot
// never share mutable stock.
type InventoryLedger struct {
	bySKU map[string][]*InventoryStack
}

// NewInventoryLedger copies the inventory rows into a fresh ledger.
func NewInventoryLedger(rows []InventoryStack) *InventoryLedger {
	l := &InventoryLedger{bySKU: make(map[string][]*InventoryStack)}
	for _, row := range rows {
		stack := row
		l.bySKU[stack.SKU] = append(l.bySKU[stack.SKU], &stack)
	}
	return l
}

// Stacks returns the item's stacks in load order. The returned
// pointers refer to the ledger's own copies; draining mutates them.
func (l *InventoryLedger) Stacks(sku string) []*InventoryStack {
	return l.bySKU[sku]
}

// TotalQuantity sums the item's remaining quantity across all stacks,
// regardless of status.
func (l *InventoryLedger) TotalQuantity(sku string) decimal.Decimal {
	total := decimal.Zero
	for _, stack := range l.bySKU[sku] {
		total = total.Add(stack.Quantity)
	}
	return total
}
