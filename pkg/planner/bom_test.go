package planner

import (
	"strings"
	"testing"
)

func TestBOMIndex_ChildrenInInputOrder(t *testing.T) {
	index := NewBOMIndex([]BOMLine{
		{ParentSKU: "WIDGET", ChildSKU: "FRAME", QtyPer: qty(1)},
		{ParentSKU: "FRAME", ChildSKU: "METAL", QtyPer: qty(1)},
		{ParentSKU: "WIDGET", ChildSKU: "METAL", QtyPer: qty(2)},
	})

	children := index.Children("WIDGET")
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0].ChildSKU != "FRAME" || children[1].ChildSKU != "METAL" {
		t.Errorf("children out of input order: %+v", children)
	}
	if children := index.Children("METAL"); children != nil {
		t.Errorf("leaf item should have no children, got %+v", children)
	}
}

func TestBOMIndex_DiamondIsAcyclic(t *testing.T) {
	// A child feeding multiple parents is a DAG, not a cycle.
	index := NewBOMIndex([]BOMLine{
		{ParentSKU: "A", ChildSKU: "B", QtyPer: qty(1)},
		{ParentSKU: "A", ChildSKU: "C", QtyPer: qty(1)},
		{ParentSKU: "B", ChildSKU: "D", QtyPer: qty(1)},
		{ParentSKU: "C", ChildSKU: "D", QtyPer: qty(1)},
	})

	if err := index.ValidateAcyclic(); err != nil {
		t.Errorf("diamond BOM wrongly rejected: %v", err)
	}
}

func TestBOMIndex_DetectsCycle(t *testing.T) {
	index := NewBOMIndex([]BOMLine{
		{ParentSKU: "A", ChildSKU: "B", QtyPer: qty(1)},
		{ParentSKU: "B", ChildSKU: "C", QtyPer: qty(1)},
		{ParentSKU: "C", ChildSKU: "A", QtyPer: qty(1)},
	})

	err := index.ValidateAcyclic()
	if err == nil {
		t.Fatal("expected cycle to be detected")
	}
	for _, sku := range []string{"A", "B", "C"} {
		if !strings.Contains(err.Error(), sku) {
			t.Errorf("cycle path should name %s: %v", sku, err)
		}
	}
}

func TestBOMIndex_SelfReferenceIsCycle(t *testing.T) {
	index := NewBOMIndex([]BOMLine{
		{ParentSKU: "A", ChildSKU: "A", QtyPer: qty(1)},
	})

	if err := index.ValidateAcyclic(); err == nil {
		t.Fatal("expected self-reference to be detected")
	}
}
