package planner

import (
	"testing"
)

func TestInventoryLedger_PreservesLoadOrder(t *testing.T) {
	ledger := NewInventoryLedger([]InventoryStack{
		{SKU: "BOLT", Quantity: qty(5), ZoneID: "DC-EAST", Status: StatusAvailable},
		{SKU: "NUT", Quantity: qty(9), ZoneID: "DC-EAST", Status: StatusAvailable},
		{SKU: "BOLT", Quantity: qty(3), ZoneID: "DC-WEST", Status: "QUARANTINE"},
	})

	stacks := ledger.Stacks("BOLT")
	if len(stacks) != 2 {
		t.Fatalf("expected 2 BOLT stacks, got %d", len(stacks))
	}
	if stacks[0].ZoneID != "DC-EAST" || stacks[1].ZoneID != "DC-WEST" {
		t.Error("stacks must stay in load order")
	}
}

func TestInventoryLedger_CopiesInputRows(t *testing.T) {
	rows := []InventoryStack{
		{SKU: "BOLT", Quantity: qty(5), ZoneID: "DC-EAST", Status: StatusAvailable},
	}
	ledger := NewInventoryLedger(rows)

	ledger.Stacks("BOLT")[0].Quantity = qty(1)

	if !rows[0].Quantity.Equal(qty(5)) {
		t.Error("draining the ledger must not touch the caller's rows")
	}

	// A second ledger from the same rows starts fresh.
	other := NewInventoryLedger(rows)
	if !other.Stacks("BOLT")[0].Quantity.Equal(qty(5)) {
		t.Error("ledgers built from one snapshot must not share stacks")
	}
}

func TestInventoryLedger_TotalQuantity(t *testing.T) {
	ledger := NewInventoryLedger([]InventoryStack{
		{SKU: "BOLT", Quantity: qty(5), ZoneID: "DC-EAST", Status: StatusAvailable},
		{SKU: "BOLT", Quantity: qty(3), ZoneID: "DC-WEST", Status: "HOLD"},
	})

	if total := ledger.TotalQuantity("BOLT"); !total.Equal(qty(8)) {
		t.Errorf("expected 8 across statuses, got %s", total)
	}
	if total := ledger.TotalQuantity("GHOST"); !total.IsZero() {
		t.Errorf("expected zero for unknown item, got %s", total)
	}
}
