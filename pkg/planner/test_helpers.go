package planner

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shared builders for engine tests.

func qty(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// day returns midnight UTC on the given June 2025 day.
func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

// newTestInput returns a minimal snapshot with ids stamped and a
// five-day, 480-minute calendar for each listed work center.
func newTestInput(workCenterIDs ...string) Input {
	in := Input{
		OrgID:        "org-test",
		PlanID:       "plan-test",
		HorizonStart: day(1),
	}
	for _, wcID := range workCenterIDs {
		in.WorkCenters = append(in.WorkCenters, WorkCenter{ID: wcID})
		for d := 1; d <= 5; d++ {
			in.Calendars = append(in.Calendars, CalendarEntry{
				WorkCenterID: wcID,
				Date:         day(d),
				ShiftID:      "S1",
				CapacityMins: 480,
			})
		}
	}
	return in
}

// newTwoZoneFactory builds the widget scenario used across tests:
// WIDGET-PRO assembled in DC-EAST from one FRAME (fabricated in
// DC-WEST) and two RAW-METAL, with FRAME itself needing one RAW-METAL.
func newTwoZoneFactory() Input {
	in := newTestInput("WC-ASSY", "WC-FAB")
	in.WorkCenters = []WorkCenter{
		{ID: "WC-ASSY", ZoneID: "DC-EAST"},
		{ID: "WC-FAB", ZoneID: "DC-WEST"},
	}
	in.Zones = []Zone{
		{ID: "DC-EAST", Name: "East DC"},
		{ID: "DC-WEST", Name: "West DC"},
	}
	in.TransitTimes = []TransitTime{
		{FromZone: "DC-WEST", ToZone: "DC-EAST", Mins: 30},
	}
	in.Items = []Item{
		{SKU: "WIDGET-PRO", Name: "Pro Widget", Type: Make, UnitCost: decimal.NewFromInt(120)},
		{SKU: "FRAME", Name: "Frame", Type: Make, UnitCost: decimal.NewFromInt(40)},
		{SKU: "RAW-METAL", Name: "Raw Metal", Type: Buy, UnitCost: decimal.NewFromInt(5), LeadTimeDays: 7},
	}
	in.BOMLines = []BOMLine{
		{ParentSKU: "WIDGET-PRO", ChildSKU: "FRAME", QtyPer: qty(1)},
		{ParentSKU: "WIDGET-PRO", ChildSKU: "RAW-METAL", QtyPer: qty(2)},
		{ParentSKU: "FRAME", ChildSKU: "RAW-METAL", QtyPer: qty(1)},
	}
	in.Routings = []Routing{
		{SKU: "WIDGET-PRO", WorkCenterID: "WC-ASSY", SetupMins: 30, CycleMins: decimal.NewFromInt(10)},
		{SKU: "FRAME", WorkCenterID: "WC-FAB", SetupMins: 15, CycleMins: decimal.NewFromInt(5)},
	}
	in.Inventory = []InventoryStack{
		{SKU: "RAW-METAL", Quantity: qty(100), ZoneID: "DC-WEST", Status: StatusAvailable},
	}
	return in
}

func alertsOfType(out Output, alertType AlertType) []Alert {
	var matched []Alert
	for _, alert := range out.Alerts {
		if alert.Type == alertType {
			matched = append(matched, alert)
		}
	}
	return matched
}

func linesForSKU(out Output, sku string) []PlanLine {
	var matched []PlanLine
	for _, line := range out.Lines {
		if line.SKU == sku {
			matched = append(matched, line)
		}
	}
	return matched
}
