package planner

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType distinguishes items produced internally from purchased items.
type ItemType int

const (
	Make ItemType = iota
	Buy
)

func (t ItemType) String() string {
	switch t {
	case Make:
		return "Make"
	case Buy:
		return "Buy"
	default:
		return "Unknown"
	}
}

// Item represents reference master data for a planned material.
type Item struct {
	SKU          string
	Name         string
	Type         ItemType
	UnitCost     decimal.Decimal
	LeadTimeDays int
}

// BOMLine is a single parent -> child edge in the bill of materials.
type BOMLine struct {
	ParentSKU string
	ChildSKU  string
	QtyPer    decimal.Decimal
}

// Routing describes the single production step for a Make item:
// which work center runs it and how long setup and one unit take.
type Routing struct {
	SKU          string
	WorkCenterID string
	SetupMins    int
	CycleMins    decimal.Decimal
}

// RequiredMins returns the total minutes needed to produce qty units,
// rounded up to whole minutes.
func (r Routing) RequiredMins(qty decimal.Decimal) int {
	run := r.CycleMins.Mul(qty).Ceil().IntPart()
	return r.SetupMins + int(run)
}

// WorkCenter is a finite-capacity production resource, optionally
// located in a zone.
type WorkCenter struct {
	ID     string
	ZoneID string
}

// CalendarEntry is the available capacity of one work center on one day.
type CalendarEntry struct {
	WorkCenterID string
	Date         time.Time
	ShiftID      string
	CapacityMins int
}

// Zone is a physical location referenced by work centers and inventory.
type Zone struct {
	ID   string
	Name string
}

// TransitTime is a directed zone-to-zone travel time edge.
type TransitTime struct {
	FromZone string
	ToZone   string
	Mins     int
}

// StatusAvailable is the only inventory status that may satisfy demand.
const StatusAvailable = "AVAILABLE"

// InventoryStack is one quantity/zone/status record of on-hand stock.
// Quantities are drained in place during a planning run.
type InventoryStack struct {
	SKU      string
	Quantity decimal.Decimal
	ZoneID   string
	Status   string
}

// Order is a demand line. Top-level lines come from sales orders;
// component lines are synthesized during BOM explosion and carry an
// id derived from the parent line for traceability.
type Order struct {
	LineID   string
	OrderID  string
	SKU      string
	Quantity decimal.Decimal
	DueDate  time.Time
	Priority int
}

// Reason explains why a plan line was booked the way it was.
type Reason struct {
	Decision      string `json:"decision"`
	ConstraintHit string `json:"constraint_hit,omitempty"`
	Msg           string `json:"msg"`
}

// PlanLine is one successfully booked production run.
type PlanLine struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"org_id"`
	PlanID       string          `json:"plan_id"`
	SKU          string          `json:"item_id"`
	WorkCenterID string          `json:"work_center_id"`
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       Reason          `json:"reason"`
}

// Input is the immutable snapshot a planning run is computed from.
// The engine performs no I/O of its own; loading and mapping into
// these shapes is the caller's responsibility.
type Input struct {
	OrgID        string
	PlanID       string
	HorizonStart time.Time
	HorizonDays  int
	Orders       []Order
	Items        []Item
	BOMLines     []BOMLine
	Routings     []Routing
	WorkCenters  []WorkCenter
	Calendars    []CalendarEntry
	Inventory    []InventoryStack
	Zones        []Zone
	TransitTimes []TransitTime
}

// Output is the complete result of one planning run.
type Output struct {
	Lines  []PlanLine `json:"lines"`
	Alerts []Alert    `json:"alerts"`
}
