package csv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaunaqR66996/finplan/pkg/planner"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadItems(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "items.csv",
		"sku,name,type,unit_cost,lead_time_days\n"+
			"WIDGET-PRO,Pro Widget,MAKE,120.50,0\n"+
			"RAW-METAL,Raw Metal,buy,5,7\n")

	items, err := NewLoader().LoadItems(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "WIDGET-PRO", items[0].SKU)
	assert.Equal(t, planner.Make, items[0].Type)
	assert.True(t, items[0].UnitCost.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, planner.Buy, items[1].Type)
	assert.Equal(t, 7, items[1].LeadTimeDays)
}

func TestLoadItems_RejectsBadType(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "items.csv",
		"sku,name,type,unit_cost,lead_time_days\n"+
			"WIDGET,Widget,PHASE,1,0\n")

	_, err := NewLoader().LoadItems(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "invalid item type")
}

func TestLoadItems_RejectsHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "items.csv", "sku,name\nWIDGET,Widget\n")

	_, err := NewLoader().LoadItems(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestLoadCalendars(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "calendars.csv",
		"work_center_id,date,shift_id,capacity_mins\n"+
			"WC-ASSY,2025-06-01,S1,480\n"+
			"WC-ASSY,2025-06-02,S1,480\n")

	entries, err := NewLoader().LoadCalendars(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, 480, entries[0].CapacityMins)
}

func TestLoadInventory_NormalizesStatus(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "inventory.csv",
		"sku,quantity,zone_id,status\n"+
			"RAW-METAL,100,DC-WEST,available\n"+
			"RAW-METAL,25.5,DC-EAST,Quarantine\n")

	stacks, err := NewLoader().LoadInventory(path)
	require.NoError(t, err)
	require.Len(t, stacks, 2)
	assert.Equal(t, planner.StatusAvailable, stacks[0].Status)
	assert.Equal(t, "QUARANTINE", stacks[1].Status)
	assert.True(t, stacks[1].Quantity.Equal(decimal.RequireFromString("25.5")))
}

func TestLoadOrders(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "orders.csv",
		"line_id,order_id,sku,quantity,due_date,priority\n"+
			"L1,SO-1,WIDGET-PRO,3,2025-06-05,90\n")

	orders, err := NewLoader().LoadOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "SO-1", orders[0].OrderID)
	assert.Equal(t, 90, orders[0].Priority)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), orders[0].DueDate)
}

func TestLoadTransitTimes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "transit_times.csv",
		"from_zone,to_zone,mins\n"+
			"DC-WEST,DC-EAST,30\n")

	edges, err := NewLoader().LoadTransitTimes(path)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, planner.TransitTime{FromZone: "DC-WEST", ToZone: "DC-EAST", Mins: 30}, edges[0])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadItems(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
