package schedule

import (
	"sort"

	"github.com/facilityops/setupsched/internal/clock"
)

// Activity labels the two schedule entries derived from each event.
type Activity string

const (
	ActivitySetupReadyBy Activity = "Setup Ready By"
	ActivityClosing      Activity = "Closing"
)

// Row is one line of the final activity schedule. Time keeps the original
// 12-hour label; the parsed form is only ever a sort key.
type Row struct {
	EventName string   `json:"event_name"`
	Location  string   `json:"location"`
	Activity  Activity `json:"activity"`
	Time      string   `json:"time"`
}

// BuildRows expands each event into exactly two rows, Setup Ready By
// before Closing, with events in input order. That emission order is the
// tie-break for the later chronological sort.
func BuildRows(events []Event) []Row {
	rows := make([]Row, 0, 2*len(events))
	for _, ev := range events {
		rows = append(rows, Row{
			EventName: ev.Name,
			Location:  ev.Location,
			Activity:  ActivitySetupReadyBy,
			Time:      ev.SetupTime,
		})
		rows = append(rows, Row{
			EventName: ev.Name,
			Location:  ev.Location,
			Activity:  ActivityClosing,
			Time:      ev.ClosingTime,
		})
	}
	return rows
}

// SortChronologically orders rows ascending by parsed time, stable for
// equal times. Rows whose time fails to parse are returned separately in
// dropped rather than kept in place; an all-dropped input yields an empty
// sorted slice, which is a valid result.
func SortChronologically(rows []Row) (sorted, dropped []Row) {
	type keyed struct {
		row Row
		key int
	}
	ks := make([]keyed, 0, len(rows))
	for _, r := range rows {
		t, ok := clock.Parse(r.Time)
		if !ok {
			dropped = append(dropped, r)
			continue
		}
		ks = append(ks, keyed{row: r, key: t.Minutes()})
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })

	sorted = make([]Row, 0, len(ks))
	for _, k := range ks {
		sorted = append(sorted, k.row)
	}
	return sorted, dropped
}
