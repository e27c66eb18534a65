package planner

import "testing"

func TestTransitMatrix_Lookup(t *testing.T) {
	matrix := NewTransitMatrix([]TransitTime{
		{FromZone: "DC-WEST", ToZone: "DC-EAST", Mins: 30},
		{FromZone: "DC-EAST", ToZone: "DC-WEST", Mins: 45},
		{FromZone: "DC-WEST", ToZone: "DC-NORTH", Mins: 90},
	})

	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "known_edge", from: "DC-WEST", to: "DC-EAST", want: 30},
		{name: "directed_not_symmetric", from: "DC-EAST", to: "DC-WEST", want: 45},
		{name: "missing_edge_is_zero", from: "DC-NORTH", to: "DC-WEST", want: 0},
		{name: "unknown_zone_is_zero", from: "DC-GHOST", to: "DC-EAST", want: 0},
		{name: "same_zone_without_edge", from: "DC-EAST", to: "DC-EAST", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matrix.Minutes(tt.from, tt.to); got != tt.want {
				t.Errorf("Minutes(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
