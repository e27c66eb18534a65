package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// shiftStartHour is the fixed hour of day production bookings begin at.
const shiftStartHour = 8

// bottleneckThreshold is the utilization fraction above which a work
// center day is flagged as a bottleneck.
const bottleneckThreshold = 0.95

// Engine computes a finite-capacity production plan from one input
// snapshot. Construction deep-copies all mutable state (inventory
// stacks, capacity ledger), so concurrent what-if scenarios must each
// build their own Engine from the same Input; nothing is shared.
//
// An Engine is good for a single Run: inventory and booked capacity
// are consumed in place.
type Engine struct {
	orgID  string
	planID string

	horizonEnd time.Time // zero when no horizon cutoff applies

	orders      []Order
	items       map[string]Item
	routings    map[string]Routing
	workCenters map[string]WorkCenter

	calendar  *CalendarIndex
	capacity  *CapacityLedger
	inventory *InventoryLedger
	transit   *TransitMatrix
	bom       *BOMIndex

	lines  []PlanLine
	alerts []Alert
}

// NewEngine validates the snapshot's reference data and builds a
// planning engine. Malformed input graphs are the only fatal
// conditions: a cyclic BOM or a routing pointing at a missing work
// center returns an error here; everything else surfaces as alerts
// during Run.
func NewEngine(in Input) (*Engine, error) {
	items := make(map[string]Item, len(in.Items))
	for _, item := range in.Items {
		items[item.SKU] = item
	}

	workCenters := make(map[string]WorkCenter, len(in.WorkCenters))
	for _, wc := range in.WorkCenters {
		workCenters[wc.ID] = wc
	}

	routings := make(map[string]Routing, len(in.Routings))
	for _, routing := range in.Routings {
		if _, ok := workCenters[routing.WorkCenterID]; !ok {
			return nil, fmt.Errorf("routing for %s references unknown work center %s", routing.SKU, routing.WorkCenterID)
		}
		if item, ok := items[routing.SKU]; ok && item.Type == Buy {
			return nil, fmt.Errorf("routing defined for buy item %s", routing.SKU)
		}
		routings[routing.SKU] = routing
	}

	bom := NewBOMIndex(in.BOMLines)
	if err := bom.ValidateAcyclic(); err != nil {
		return nil, err
	}

	var horizonEnd time.Time
	if in.HorizonDays > 0 {
		horizonEnd = dayOf(in.HorizonStart).AddDate(0, 0, in.HorizonDays)
	}

	orders := make([]Order, len(in.Orders))
	copy(orders, in.Orders)

	return &Engine{
		orgID:       in.OrgID,
		planID:      in.PlanID,
		horizonEnd:  horizonEnd,
		orders:      orders,
		items:       items,
		routings:    routings,
		workCenters: workCenters,
		calendar:    NewCalendarIndex(in.Calendars),
		capacity:    NewCapacityLedger(),
		inventory:   NewInventoryLedger(in.Inventory),
		transit:     NewTransitMatrix(in.TransitTimes),
		bom:         bom,
	}, nil
}

// Inventory exposes the engine's ledger, mostly for inspecting
// remaining stock after a run.
func (e *Engine) Inventory() *InventoryLedger {
	return e.inventory
}

// Run plans every demand line and returns the booked plan lines plus
// all planning exceptions. Orders are processed by ascending due date,
// then descending priority, so earlier-due and higher-priority demand
// gets first claim on scarce capacity. The heuristic is greedy and
// never backtracks: claimed capacity is never released for a later,
// more urgent order.
func (e *Engine) Run() Output {
	e.lines = []PlanLine{}
	e.alerts = []Alert{}

	orders := make([]Order, len(e.orders))
	copy(orders, e.orders)
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].DueDate.Equal(orders[j].DueDate) {
			return orders[i].DueDate.Before(orders[j].DueDate)
		}
		return orders[i].Priority > orders[j].Priority
	})

	for _, order := range orders {
		line := e.planOrder(order, time.Time{})
		// Due dates are date-granular; finishing any time on the due
		// day itself is on time.
		if line != nil && dayOf(line.End).After(dayOf(order.DueDate)) {
			e.addAlert(AlertLateOrder,
				fmt.Sprintf("order %s finishes %s, after due date %s",
					order.OrderID,
					line.End.Format(time.RFC3339),
					order.DueDate.Format(time.RFC3339)),
				LateOrderData{
					OrderID:      order.OrderID,
					LineID:       order.LineID,
					DueDate:      order.DueDate,
					ScheduledEnd: line.End,
				})
		}
	}

	e.detectBottlenecks()

	return Output{Lines: e.lines, Alerts: e.alerts}
}

// planOrder books the order on the earliest calendar day with enough
// spare minutes, then explodes its BOM children anchored at the booked
// start. A non-zero constraint caps how late the booking may land: the
// parent needs the material by then. Returns the booked line, or nil
// when the demand was satisfied from inventory or dropped with a
// CAPACITY_OVERLOAD alert.
func (e *Engine) planOrder(order Order, constraint time.Time) *PlanLine {
	routing, ok := e.routings[order.SKU]
	if !ok {
		e.consume(order, nil)
		return nil
	}

	requiredMins := routing.RequiredMins(order.Quantity)

	skippedFull := false
	for _, entry := range e.calendar.Entries(routing.WorkCenterID) {
		day := dayOf(entry.Date)
		if !e.horizonEnd.IsZero() && !day.Before(e.horizonEnd) {
			continue
		}
		if !constraint.IsZero() && day.After(dayOf(constraint)) {
			// Calendar is sorted; every later day is too late as well.
			break
		}

		used := e.capacity.Used(routing.WorkCenterID, entry.Date)
		if entry.CapacityMins-used < requiredMins {
			skippedFull = true
			continue
		}

		start := day.Add(shiftStartHour * time.Hour).Add(time.Duration(used) * time.Minute)
		end := start.Add(time.Duration(requiredMins) * time.Minute)

		reason := Reason{
			Decision: "FINITE_CAPACITY_OK",
			Msg: fmt.Sprintf("Finite Capacity OK: booked %d min on %s for %s",
				requiredMins, routing.WorkCenterID, day.Format(dateKeyLayout)),
		}
		if skippedFull {
			reason.ConstraintHit = "CAPACITY"
		}

		line := PlanLine{
			ID:           uuid.NewString(),
			OrgID:        e.orgID,
			PlanID:       e.planID,
			SKU:          order.SKU,
			WorkCenterID: routing.WorkCenterID,
			Start:        start,
			End:          end,
			Quantity:     order.Quantity,
			Reason:       reason,
		}
		e.lines = append(e.lines, line)
		e.capacity.Book(routing.WorkCenterID, entry.Date, requiredMins)

		e.explode(order, start, e.workCenters[routing.WorkCenterID])

		return &line
	}

	e.addAlert(AlertCapacityOverload,
		fmt.Sprintf("no capacity for %d min of %s on work center %s",
			requiredMins, order.SKU, routing.WorkCenterID),
		CapacityOverloadData{
			OrderID:      order.OrderID,
			SKU:          order.SKU,
			WorkCenterID: routing.WorkCenterID,
			RequiredMins: requiredMins,
		})
	return nil
}

// explode turns a booked parent into synthetic child demand. A child
// produced in a different zone than the parent's work center must
// finish earlier by the zone-to-zone transit time, so its due date is
// back-shifted from the parent's start. Children with routings recurse
// into scheduling; purchased children only consume inventory.
func (e *Engine) explode(parent Order, parentStart time.Time, parentWC WorkCenter) {
	var shortages []ComponentShortage

	for _, child := range e.childOrders(parent, parentStart, parentWC) {
		if _, hasRouting := e.routings[child.SKU]; hasRouting {
			e.planOrder(child, child.DueDate)
			continue
		}

		remaining := e.consume(child, &parentWC)
		if remaining.IsPositive() {
			shortages = append(shortages, ComponentShortage{SKU: child.SKU, MissingQty: remaining})
		}
	}

	if len(shortages) > 0 {
		e.addAlert(AlertMaterialShortage,
			fmt.Sprintf("order %s: %d component(s) short for %s", parent.OrderID, len(shortages), parent.SKU),
			MaterialShortageData{
				OrderID:    parent.OrderID,
				SKU:        parent.SKU,
				Components: shortages,
			})
	}
}

// childOrders synthesizes the demand lines one booked parent implies.
// Each child inherits the parent's priority and order id, multiplies
// quantity by the BOM's qty-per, and is due at the parent's start —
// back-shifted by zone-to-zone transit when the child is produced in a
// different zone than the parent's work center consumes it in.
func (e *Engine) childOrders(parent Order, parentStart time.Time, parentWC WorkCenter) []Order {
	edges := e.bom.Children(parent.SKU)
	if len(edges) == 0 {
		return nil
	}

	children := make([]Order, 0, len(edges))
	for _, edge := range edges {
		childDue := parentStart
		if childRouting, ok := e.routings[edge.ChildSKU]; ok {
			childWC := e.workCenters[childRouting.WorkCenterID]
			if childWC.ZoneID != "" && parentWC.ZoneID != "" && childWC.ZoneID != parentWC.ZoneID {
				if mins := e.transit.Minutes(childWC.ZoneID, parentWC.ZoneID); mins > 0 {
					childDue = parentStart.Add(-time.Duration(mins) * time.Minute)
				}
			}
		}

		children = append(children, Order{
			LineID:   parent.LineID + "-" + edge.ChildSKU,
			OrderID:  parent.OrderID,
			SKU:      edge.ChildSKU,
			Quantity: parent.Quantity.Mul(edge.QtyPer),
			DueDate:  childDue,
			Priority: parent.Priority,
		})
	}
	return children
}

// consume drains the order's quantity from the item's stacks in load
// order. Stacks whose status is not AVAILABLE are skipped entirely and
// reported as blocked; they never satisfy demand, even partially. A
// cross-zone draw toward dest is flagged as an advisory material move.
// Returns the unfilled remainder, which is also reported as a
// predicted stockout.
func (e *Engine) consume(order Order, dest *WorkCenter) decimal.Decimal {
	remaining := order.Quantity

	for _, stack := range e.inventory.Stacks(order.SKU) {
		if stack.Status != StatusAvailable {
			e.addAlert(AlertStockBlocked,
				fmt.Sprintf("%s of %s in zone %s blocked with status %s",
					stack.Quantity, order.SKU, stack.ZoneID, stack.Status),
				StockBlockedData{
					SKU:      order.SKU,
					Quantity: stack.Quantity,
					Status:   stack.Status,
					ZoneID:   stack.ZoneID,
				})
			continue
		}
		if !remaining.IsPositive() {
			continue
		}

		take := decimal.Min(stack.Quantity, remaining)
		if !take.IsPositive() {
			continue
		}
		stack.Quantity = stack.Quantity.Sub(take)
		remaining = remaining.Sub(take)

		if dest != nil && dest.ZoneID != "" && stack.ZoneID != "" && stack.ZoneID != dest.ZoneID {
			if mins := e.transit.Minutes(stack.ZoneID, dest.ZoneID); mins > 0 {
				e.addAlert(AlertBottleneckWarning,
					fmt.Sprintf("%s of %s moves %s -> %s (%d min transit)",
						take, order.SKU, stack.ZoneID, dest.ZoneID, mins),
					CrossZoneMoveData{
						FromZone: stack.ZoneID,
						ToZone:   dest.ZoneID,
						Mins:     mins,
						SKU:      order.SKU,
						Quantity: take,
					})
			}
		}
	}

	if remaining.IsPositive() {
		orderBy := order.DueDate
		if item, ok := e.items[order.SKU]; ok && item.LeadTimeDays > 0 {
			orderBy = order.DueDate.AddDate(0, 0, -item.LeadTimeDays)
		}
		e.addAlert(AlertStockoutPredicted,
			fmt.Sprintf("short %s of %s for order %s, required by %s",
				remaining, order.SKU, order.OrderID, order.DueDate.Format(dateKeyLayout)),
			StockoutData{
				SKU:        order.SKU,
				MissingQty: remaining,
				OrderID:    order.OrderID,
				RequiredBy: order.DueDate,
				OrderByEst: orderBy,
			})
	}

	return remaining
}

// detectBottlenecks scans every booked work center day once, after all
// orders are planned, and flags days past the saturation threshold.
// Advisory only: nothing already booked is moved.
func (e *Engine) detectBottlenecks() {
	for _, key := range e.capacity.Keys() {
		date, err := time.Parse(dateKeyLayout, key.Date)
		if err != nil {
			continue
		}
		dayCap := e.calendar.DayCapacity(key.WorkCenterID, date)
		if dayCap <= 0 {
			continue
		}
		used := e.capacity.Used(key.WorkCenterID, date)
		utilization := float64(used) / float64(dayCap)
		if utilization > bottleneckThreshold {
			e.addAlert(AlertBottleneckWarning,
				fmt.Sprintf("work center %s at %.1f%% utilization on %s",
					key.WorkCenterID, utilization*100, key.Date),
				UtilizationData{
					WorkCenterID:   key.WorkCenterID,
					Date:           key.Date,
					UtilizationPct: utilization * 100,
				})
		}
	}
}

func (e *Engine) addAlert(alertType AlertType, msg string, data AlertData) {
	e.alerts = append(e.alerts, Alert{
		ID:      uuid.NewString(),
		OrgID:   e.orgID,
		PlanID:  e.planID,
		Type:    alertType,
		Message: msg,
		Data:    data,
	})
}

// dayOf truncates a timestamp to midnight in its own location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
