package planner

// TransitMatrix is a two-level zone-to-zone travel time lookup built
// once from the flat edge list. Edges are directed and not necessarily
// symmetric.
type TransitMatrix struct {
	mins map[string]map[string]int
}

// NewTransitMatrix builds the lookup from transit time edges.
func NewTransitMatrix(edges []TransitTime) *TransitMatrix {
	m := &TransitMatrix{mins: make(map[string]map[string]int)}
	for _, edge := range edges {
		inner, ok := m.mins[edge.FromZone]
		if !ok {
			inner = make(map[string]int)
			m.mins[edge.FromZone] = inner
		}
		inner[edge.ToZone] = edge.Mins
	}
	return m
}

// Minutes returns the travel time between two zones, or 0 when no edge
// exists. Absence means no known transit penalty, not an error.
func (m *TransitMatrix) Minutes(fromZone, toZone string) int {
	inner, ok := m.mins[fromZone]
	if !ok {
		return 0
	}
	return inner[toZone]
}
