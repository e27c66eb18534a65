package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaunaqR66996/finplan/pkg/planner"
)

const dateLayout = "2006-01-02"

// Loader reads planner snapshot data from CSV files. Every file must
// carry the expected header; parse errors report the offending row.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadItems loads item master data.
func (l *Loader) LoadItems(filename string) ([]planner.Item, error) {
	records, err := readAll(filename, []string{"sku", "name", "type", "unit_cost", "lead_time_days"})
	if err != nil {
		return nil, err
	}

	var items []planner.Item
	for i, record := range records {
		itemType, err := parseItemType(record[2])
		if err != nil {
			return nil, fmt.Errorf("items row %d: %w", i+2, err)
		}
		unitCost, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("items row %d: invalid unit_cost %q", i+2, record[3])
		}
		leadTime, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("items row %d: invalid lead_time_days %q", i+2, record[4])
		}
		items = append(items, planner.Item{
			SKU:          record[0],
			Name:         record[1],
			Type:         itemType,
			UnitCost:     unitCost,
			LeadTimeDays: leadTime,
		})
	}
	return items, nil
}

// LoadBOMLines loads bill-of-material edges.
func (l *Loader) LoadBOMLines(filename string) ([]planner.BOMLine, error) {
	records, err := readAll(filename, []string{"parent_sku", "child_sku", "qty_per"})
	if err != nil {
		return nil, err
	}

	var lines []planner.BOMLine
	for i, record := range records {
		qtyPer, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("boms row %d: invalid qty_per %q", i+2, record[2])
		}
		lines = append(lines, planner.BOMLine{
			ParentSKU: record[0],
			ChildSKU:  record[1],
			QtyPer:    qtyPer,
		})
	}
	return lines, nil
}

// LoadRoutings loads the single-step routings for make items.
func (l *Loader) LoadRoutings(filename string) ([]planner.Routing, error) {
	records, err := readAll(filename, []string{"sku", "work_center_id", "setup_mins", "cycle_mins"})
	if err != nil {
		return nil, err
	}

	var routings []planner.Routing
	for i, record := range records {
		setupMins, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("routings row %d: invalid setup_mins %q", i+2, record[2])
		}
		cycleMins, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("routings row %d: invalid cycle_mins %q", i+2, record[3])
		}
		routings = append(routings, planner.Routing{
			SKU:          record[0],
			WorkCenterID: record[1],
			SetupMins:    setupMins,
			CycleMins:    cycleMins,
		})
	}
	return routings, nil
}

// LoadWorkCenters loads work centers and their optional zones.
func (l *Loader) LoadWorkCenters(filename string) ([]planner.WorkCenter, error) {
	records, err := readAll(filename, []string{"id", "zone_id"})
	if err != nil {
		return nil, err
	}

	var workCenters []planner.WorkCenter
	for _, record := range records {
		workCenters = append(workCenters, planner.WorkCenter{
			ID:     record[0],
			ZoneID: record[1],
		})
	}
	return workCenters, nil
}

// LoadCalendars loads per-day capacity entries.
func (l *Loader) LoadCalendars(filename string) ([]planner.CalendarEntry, error) {
	records, err := readAll(filename, []string{"work_center_id", "date", "shift_id", "capacity_mins"})
	if err != nil {
		return nil, err
	}

	var entries []planner.CalendarEntry
	for i, record := range records {
		date, err := time.Parse(dateLayout, record[1])
		if err != nil {
			return nil, fmt.Errorf("calendars row %d: invalid date %q (expected YYYY-MM-DD)", i+2, record[1])
		}
		capacityMins, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("calendars row %d: invalid capacity_mins %q", i+2, record[3])
		}
		entries = append(entries, planner.CalendarEntry{
			WorkCenterID: record[0],
			Date:         date,
			ShiftID:      record[2],
			CapacityMins: capacityMins,
		})
	}
	return entries, nil
}

// LoadInventory loads on-hand stacks.
func (l *Loader) LoadInventory(filename string) ([]planner.InventoryStack, error) {
	records, err := readAll(filename, []string{"sku", "quantity", "zone_id", "status"})
	if err != nil {
		return nil, err
	}

	var stacks []planner.InventoryStack
	for i, record := range records {
		quantity, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: invalid quantity %q", i+2, record[1])
		}
		stacks = append(stacks, planner.InventoryStack{
			SKU:      record[0],
			Quantity: quantity,
			ZoneID:   record[2],
			Status:   strings.ToUpper(strings.TrimSpace(record[3])),
		})
	}
	return stacks, nil
}

// LoadZones loads zones.
func (l *Loader) LoadZones(filename string) ([]planner.Zone, error) {
	records, err := readAll(filename, []string{"id", "name"})
	if err != nil {
		return nil, err
	}

	var zones []planner.Zone
	for _, record := range records {
		zones = append(zones, planner.Zone{ID: record[0], Name: record[1]})
	}
	return zones, nil
}

// LoadTransitTimes loads directed zone-to-zone transit edges.
func (l *Loader) LoadTransitTimes(filename string) ([]planner.TransitTime, error) {
	records, err := readAll(filename, []string{"from_zone", "to_zone", "mins"})
	if err != nil {
		return nil, err
	}

	var edges []planner.TransitTime
	for i, record := range records {
		mins, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("transit_times row %d: invalid mins %q", i+2, record[2])
		}
		edges = append(edges, planner.TransitTime{
			FromZone: record[0],
			ToZone:   record[1],
			Mins:     mins,
		})
	}
	return edges, nil
}

// LoadOrders loads top-level demand lines.
func (l *Loader) LoadOrders(filename string) ([]planner.Order, error) {
	records, err := readAll(filename, []string{"line_id", "order_id", "sku", "quantity", "due_date", "priority"})
	if err != nil {
		return nil, err
	}

	var orders []planner.Order
	for i, record := range records {
		quantity, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("orders row %d: invalid quantity %q", i+2, record[3])
		}
		dueDate, err := time.Parse(dateLayout, record[4])
		if err != nil {
			return nil, fmt.Errorf("orders row %d: invalid due_date %q (expected YYYY-MM-DD)", i+2, record[4])
		}
		priority, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("orders row %d: invalid priority %q", i+2, record[5])
		}
		orders = append(orders, planner.Order{
			LineID:   record[0],
			OrderID:  record[1],
			SKU:      record[2],
			Quantity: quantity,
			DueDate:  dueDate,
			Priority: priority,
		})
	}
	return orders, nil
}

// readAll opens a CSV file, validates its header and returns the data
// rows. Column counts are enforced by encoding/csv.
func readAll(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", filename)
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s: header mismatch, expected %v, got %v", filename, expectedHeader, records[0])
	}
	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseItemType(s string) (planner.ItemType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MAKE":
		return planner.Make, nil
	case "BUY":
		return planner.Buy, nil
	default:
		return planner.Make, fmt.Errorf("invalid item type: %s (expected MAKE or BUY)", s)
	}
}
