package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaunaqR66996/finplan/pkg/planner"
)

func main() {
	in := buildBikeFactory()

	engine, err := planner.NewEngine(in)
	if err != nil {
		fmt.Printf("invalid snapshot: %v\n", err)
		return
	}

	fmt.Println("Running finite-capacity plan for the bike factory...")
	fmt.Printf("Demand: %d top-level orders, horizon %d days from %s\n",
		len(in.Orders), in.HorizonDays, in.HorizonStart.Format("2006-01-02"))
	fmt.Println()

	out := engine.Run()

	fmt.Printf("Plan lines: %d\n", len(out.Lines))
	for _, line := range out.Lines {
		fmt.Printf("  %-12s x%-4s on %-8s %s -> %s\n",
			line.SKU,
			line.Quantity.String(),
			line.WorkCenterID,
			line.Start.Format("01-02 15:04"),
			line.End.Format("15:04"))
	}
	fmt.Println()

	fmt.Printf("Alerts: %d\n", len(out.Alerts))
	for _, alert := range out.Alerts {
		fmt.Printf("  [%s] %s\n", alert.Type, alert.Message)
	}
}

// buildBikeFactory assembles a two-zone snapshot: bikes are assembled
// in the east plant from frames welded in the west plant plus
// purchased wheel sets stored in the west warehouse.
func buildBikeFactory() planner.Input {
	horizonStart := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	in := planner.Input{
		OrgID:        "demo-org",
		PlanID:       "bike-plan-001",
		HorizonStart: horizonStart,
		HorizonDays:  14,
	}

	in.Zones = []planner.Zone{
		{ID: "PLANT-EAST", Name: "East Assembly Plant"},
		{ID: "PLANT-WEST", Name: "West Fabrication Plant"},
	}
	in.TransitTimes = []planner.TransitTime{
		{FromZone: "PLANT-WEST", ToZone: "PLANT-EAST", Mins: 120},
		{FromZone: "PLANT-EAST", ToZone: "PLANT-WEST", Mins: 90},
	}
	in.WorkCenters = []planner.WorkCenter{
		{ID: "WC-ASSEMBLY", ZoneID: "PLANT-EAST"},
		{ID: "WC-WELDING", ZoneID: "PLANT-WEST"},
	}

	for d := 0; d < 14; d++ {
		date := horizonStart.AddDate(0, 0, d)
		in.Calendars = append(in.Calendars,
			planner.CalendarEntry{WorkCenterID: "WC-ASSEMBLY", Date: date, ShiftID: "DAY", CapacityMins: 480},
			planner.CalendarEntry{WorkCenterID: "WC-WELDING", Date: date, ShiftID: "DAY", CapacityMins: 420},
		)
	}

	in.Items = []planner.Item{
		{SKU: "CITY-BIKE", Name: "City Bike", Type: planner.Make, UnitCost: decimal.NewFromInt(450)},
		{SKU: "BIKE-FRAME", Name: "Welded Frame", Type: planner.Make, UnitCost: decimal.NewFromInt(120)},
		{SKU: "WHEEL-SET", Name: "Wheel Set", Type: planner.Buy, UnitCost: decimal.NewFromInt(60), LeadTimeDays: 10},
		{SKU: "STEEL-TUBE", Name: "Steel Tube", Type: planner.Buy, UnitCost: decimal.NewFromInt(8), LeadTimeDays: 5},
	}
	in.BOMLines = []planner.BOMLine{
		{ParentSKU: "CITY-BIKE", ChildSKU: "BIKE-FRAME", QtyPer: decimal.NewFromInt(1)},
		{ParentSKU: "CITY-BIKE", ChildSKU: "WHEEL-SET", QtyPer: decimal.NewFromInt(1)},
		{ParentSKU: "BIKE-FRAME", ChildSKU: "STEEL-TUBE", QtyPer: decimal.NewFromInt(6)},
	}
	in.Routings = []planner.Routing{
		{SKU: "CITY-BIKE", WorkCenterID: "WC-ASSEMBLY", SetupMins: 20, CycleMins: decimal.NewFromInt(12)},
		{SKU: "BIKE-FRAME", WorkCenterID: "WC-WELDING", SetupMins: 45, CycleMins: decimal.NewFromInt(25)},
	}
	in.Inventory = []planner.InventoryStack{
		{SKU: "WHEEL-SET", Quantity: decimal.NewFromInt(40), ZoneID: "PLANT-WEST", Status: planner.StatusAvailable},
		{SKU: "STEEL-TUBE", Quantity: decimal.NewFromInt(500), ZoneID: "PLANT-WEST", Status: planner.StatusAvailable},
		{SKU: "STEEL-TUBE", Quantity: decimal.NewFromInt(80), ZoneID: "PLANT-WEST", Status: "QUARANTINE"},
	}

	in.Orders = []planner.Order{
		{LineID: "L-1001", OrderID: "SO-1001", SKU: "CITY-BIKE", Quantity: decimal.NewFromInt(25), DueDate: horizonStart.AddDate(0, 0, 5), Priority: 80},
		{LineID: "L-1002", OrderID: "SO-1002", SKU: "CITY-BIKE", Quantity: decimal.NewFromInt(15), DueDate: horizonStart.AddDate(0, 0, 5), Priority: 40},
		{LineID: "L-1003", OrderID: "SO-1003", SKU: "WHEEL-SET", Quantity: decimal.NewFromInt(10), DueDate: horizonStart.AddDate(0, 0, 8), Priority: 60},
	}

	return in
}
