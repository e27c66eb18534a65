package planner

import (
	"sort"
	"time"
)

const dateKeyLayout = "2006-01-02"

// CalendarIndex indexes calendar entries per work center, sorted
// ascending by date. It is built once and never mutated afterwards;
// an empty result for an unknown work center is valid.
type CalendarIndex struct {
	byWorkCenter map[string][]CalendarEntry
}

// NewCalendarIndex builds the index from the full calendar entry list.
func NewCalendarIndex(entries []CalendarEntry) *CalendarIndex {
	idx := &CalendarIndex{
		byWorkCenter: make(map[string][]CalendarEntry),
	}
	for _, entry := range entries {
		idx.byWorkCenter[entry.WorkCenterID] = append(idx.byWorkCenter[entry.WorkCenterID], entry)
	}
	for wc := range idx.byWorkCenter {
		sorted := idx.byWorkCenter[wc]
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.Before(sorted[j].Date)
		})
		idx.byWorkCenter[wc] = sorted
	}
	return idx
}

// Entries returns the work center's calendar entries in date order.
func (x *CalendarIndex) Entries(workCenterID string) []CalendarEntry {
	return x.byWorkCenter[workCenterID]
}

// DayCapacity returns the total capacity minutes a work center has on
// one date, summed across shifts.
func (x *CalendarIndex) DayCapacity(workCenterID string, date time.Time) int {
	key := date.Format(dateKeyLayout)
	total := 0
	for _, entry := range x.byWorkCenter[workCenterID] {
		if entry.Date.Format(dateKeyLayout) == key {
			total += entry.CapacityMins
		}
	}
	return total
}

// CapacityKey identifies one work center day in the ledger.
type CapacityKey struct {
	WorkCenterID string
	Date         string
}

// CapacityLedger tracks minutes already booked per (work center, day).
// It is owned by a single planning run and mutated in place as orders
// claim capacity.
type CapacityLedger struct {
	used map[CapacityKey]int
}

// NewCapacityLedger creates an empty ledger.
func NewCapacityLedger() *CapacityLedger {
	return &CapacityLedger{used: make(map[CapacityKey]int)}
}

// Used returns minutes already booked on a work center's day.
func (l *CapacityLedger) Used(workCenterID string, date time.Time) int {
	return l.used[CapacityKey{workCenterID, date.Format(dateKeyLayout)}]
}

// Book records mins of additional usage on a work center's day.
func (l *CapacityLedger) Book(workCenterID string, date time.Time, mins int) {
	l.used[CapacityKey{workCenterID, date.Format(dateKeyLayout)}] += mins
}

// Keys returns every booked (work center, day) pair sorted by work
// center then date, so post-run scans stay deterministic.
func (l *CapacityLedger) Keys() []CapacityKey {
	keys := make([]CapacityKey, 0, len(l.used))
	for k := range l.used {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].WorkCenterID != keys[j].WorkCenterID {
			return keys[i].WorkCenterID < keys[j].WorkCenterID
		}
		return keys[i].Date < keys[j].Date
	})
	return keys
}
