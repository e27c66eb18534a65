package planner

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertType enumerates the kinds of planning exceptions the engine reports.
type AlertType string

const (
	AlertCapacityOverload  AlertType = "CAPACITY_OVERLOAD"
	AlertStockoutPredicted AlertType = "STOCKOUT_PREDICTED"
	AlertStockBlocked      AlertType = "STOCK_BLOCKED"
	AlertBottleneckWarning AlertType = "BOTTLENECK_WARNING"
	AlertMaterialShortage  AlertType = "MATERIAL_SHORTAGE"
	AlertLateOrder         AlertType = "LATE_ORDER"
)

// AlertData is the typed payload of an alert. Each alert kind carries a
// concrete payload struct so consumers get exactly the fields that kind
// needs instead of a loose bag.
type AlertData interface {
	isAlertData()
}

// CapacityOverloadData reports demand that found no calendar day with
// enough remaining capacity. The demand line is represented only by
// this alert; it is dropped from the plan.
type CapacityOverloadData struct {
	OrderID      string `json:"order_id"`
	SKU          string `json:"item_id"`
	WorkCenterID string `json:"work_center_id"`
	RequiredMins int    `json:"required_mins"`
}

// StockoutData reports demand that drained all available stacks and
// still came up short.
type StockoutData struct {
	SKU        string          `json:"item_id"`
	MissingQty decimal.Decimal `json:"missing_qty"`
	OrderID    string          `json:"order_id"`
	RequiredBy time.Time       `json:"required_by"`
	OrderByEst time.Time       `json:"order_by_est"`
}

// StockBlockedData reports a stack that was visible but untouchable
// because its status is not AVAILABLE.
type StockBlockedData struct {
	SKU      string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Status   string          `json:"status"`
	ZoneID   string          `json:"zone_id"`
}

// CrossZoneMoveData flags a material move between zones during
// consumption. Advisory only; it never changes booked times.
type CrossZoneMoveData struct {
	FromZone string          `json:"from"`
	ToZone   string          `json:"to"`
	Mins     int             `json:"minutes"`
	SKU      string          `json:"material"`
	Quantity decimal.Decimal `json:"quantity"`
}

// UtilizationData flags a work center/day pair booked past the
// saturation threshold.
type UtilizationData struct {
	WorkCenterID   string  `json:"work_center_id"`
	Date           string  `json:"date"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// ComponentShortage is one missing component within a material
// shortage roll-up.
type ComponentShortage struct {
	SKU        string          `json:"item_id"`
	MissingQty decimal.Decimal `json:"missing_qty"`
}

// MaterialShortageData rolls child component stockouts up to the
// parent order they block.
type MaterialShortageData struct {
	OrderID    string              `json:"order_id"`
	SKU        string              `json:"item_id"`
	Components []ComponentShortage `json:"components"`
}

// LateOrderData reports a top-level order whose booked end slipped
// past its due date.
type LateOrderData struct {
	OrderID      string    `json:"order_id"`
	LineID       string    `json:"line_id"`
	DueDate      time.Time `json:"due_date"`
	ScheduledEnd time.Time `json:"scheduled_end"`
}

func (CapacityOverloadData) isAlertData() {}
func (StockoutData) isAlertData()         {}
func (StockBlockedData) isAlertData()     {}
func (CrossZoneMoveData) isAlertData()    {}
func (UtilizationData) isAlertData()      {}
func (MaterialShortageData) isAlertData() {}
func (LateOrderData) isAlertData()        {}

// Alert is one structured planning exception. Planning failures are
// always represented this way, never as errors, so a planner sees
// every problem in a single run.
type Alert struct {
	ID      string    `json:"id"`
	OrgID   string    `json:"org_id"`
	PlanID  string    `json:"plan_id"`
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
	Data    AlertData `json:"data"`
}
