package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"scenario.yaml": `org_id: org-1
plan_id: plan-2025-06
horizon_start: 2025-06-01
horizon_days: 30
files:
  items: items.csv
  boms: boms.csv
  routings: routings.csv
  work_centers: work_centers.csv
  calendars: calendars.csv
  inventory: inventory.csv
  zones: zones.csv
  transit_times: transit_times.csv
  orders: orders.csv
`,
		"items.csv": "sku,name,type,unit_cost,lead_time_days\n" +
			"WIDGET-PRO,Pro Widget,MAKE,120,0\n" +
			"FRAME,Frame,MAKE,40,0\n" +
			"RAW-METAL,Raw Metal,BUY,5,7\n",
		"boms.csv": "parent_sku,child_sku,qty_per\n" +
			"WIDGET-PRO,FRAME,1\n" +
			"WIDGET-PRO,RAW-METAL,2\n" +
			"FRAME,RAW-METAL,1\n",
		"routings.csv": "sku,work_center_id,setup_mins,cycle_mins\n" +
			"WIDGET-PRO,WC-ASSY,30,10\n" +
			"FRAME,WC-FAB,15,5\n",
		"work_centers.csv": "id,zone_id\nWC-ASSY,DC-EAST\nWC-FAB,DC-WEST\n",
		"calendars.csv": "work_center_id,date,shift_id,capacity_mins\n" +
			"WC-ASSY,2025-06-01,S1,480\n" +
			"WC-FAB,2025-06-01,S1,480\n",
		"inventory.csv":     "sku,quantity,zone_id,status\nRAW-METAL,100,DC-WEST,AVAILABLE\n",
		"zones.csv":         "id,name\nDC-EAST,East DC\nDC-WEST,West DC\n",
		"transit_times.csv": "from_zone,to_zone,mins\nDC-WEST,DC-EAST,30\n",
		"orders.csv": "line_id,order_id,sku,quantity,due_date,priority\n" +
			"L1,SO-1,WIDGET-PRO,1,2025-06-05,90\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeScenario(t)

	in, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "org-1", in.OrgID)
	assert.Equal(t, "plan-2025-06", in.PlanID)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), in.HorizonStart)
	assert.Equal(t, 30, in.HorizonDays)
	assert.Len(t, in.Items, 3)
	assert.Len(t, in.BOMLines, 3)
	assert.Len(t, in.Routings, 2)
	assert.Len(t, in.WorkCenters, 2)
	assert.Len(t, in.Calendars, 2)
	assert.Len(t, in.Inventory, 1)
	assert.Len(t, in.Zones, 2)
	assert.Len(t, in.TransitTimes, 1)
	assert.Len(t, in.Orders, 1)
}

func TestLoadManifest_RequiresPlanID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName),
		[]byte("org_id: org-1\n"), 0o644))

	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan_id")
}

func TestLoadManifest_RejectsBadHorizon(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName),
		[]byte("plan_id: p1\nhorizon_start: June 1\n"), 0o644))

	_, err := LoadManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "horizon_start")
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_RequiresOrdersFile(t *testing.T) {
	dir := writeScenario(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(`plan_id: p1
files:
  items: items.csv
  calendars: calendars.csv
`), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders")
}
