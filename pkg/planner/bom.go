package planner

import (
	"fmt"
	"sort"
	"strings"
)

// BOMIndex indexes bill-of-material edges by parent item, preserving
// input order per parent.
type BOMIndex struct {
	lines    []BOMLine
	byParent map[string][]int
}

// NewBOMIndex builds the index from the flat edge list.
func NewBOMIndex(lines []BOMLine) *BOMIndex {
	idx := &BOMIndex{
		lines:    make([]BOMLine, len(lines)),
		byParent: make(map[string][]int),
	}
	copy(idx.lines, lines)
	for i, line := range idx.lines {
		idx.byParent[line.ParentSKU] = append(idx.byParent[line.ParentSKU], i)
	}
	return idx
}

// Children returns the BOM edges under a parent item in input order.
func (x *BOMIndex) Children(parentSKU string) []BOMLine {
	indexes := x.byParent[parentSKU]
	if len(indexes) == 0 {
		return nil
	}
	children := make([]BOMLine, 0, len(indexes))
	for _, i := range indexes {
		children = append(children, x.lines[i])
	}
	return children
}

// ValidateAcyclic checks that the BOM edges form a DAG. Explosion
// recurses over this graph, so a cycle would never terminate; the
// engine refuses to construct rather than loop. The returned error
// names one cycle path.
func (x *BOMIndex) ValidateAcyclic() error {
	parents := make([]string, 0, len(x.byParent))
	for parent := range x.byParent {
		parents = append(parents, parent)
	}
	sort.Strings(parents)

	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	var visit func(sku string, path []string) error
	visit = func(sku string, path []string) error {
		visited[sku] = true
		onStack[sku] = true
		path = append(path, sku)

		for _, i := range x.byParent[sku] {
			child := x.lines[i].ChildSKU
			if onStack[child] {
				cycle := append(path, child)
				return fmt.Errorf("bom cycle detected: %s", strings.Join(cycle, " -> "))
			}
			if !visited[child] {
				if err := visit(child, path); err != nil {
					return err
				}
			}
		}

		onStack[sku] = false
		return nil
	}

	for _, parent := range parents {
		if !visited[parent] {
			if err := visit(parent, nil); err != nil {
				return err
			}
		}
	}
	return nil
}
