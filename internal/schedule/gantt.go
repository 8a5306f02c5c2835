package schedule

import "github.com/facilityops/setupsched/internal/clock"

// GanttRow is the three-column shape consumed by the Gantt charting app:
// no header, no event name, both times in 24-hour notation. EndTime may
// exceed "23:59" ("26:00" style) when the event closes past midnight.
type GanttRow struct {
	Location  string `json:"location"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GanttDrop records an event that could not be converted, with the reason.
type GanttDrop struct {
	Event  Event
	Reason string
}

// BuildGanttRows converts each event into a single row. The setup hour is
// the midnight-crossing reference for the closing time; the setup time is
// converted against its own hour, which by construction never crosses.
// Events whose times fail to parse or convert are dropped, not emitted
// partially. Output preserves input order; no re-sorting happens here.
func BuildGanttRows(events []Event) (rows []GanttRow, dropped []GanttDrop) {
	rows = make([]GanttRow, 0, len(events))
	for _, ev := range events {
		setup, ok := clock.Parse(ev.SetupTime)
		if !ok {
			dropped = append(dropped, GanttDrop{Event: ev, Reason: "invalid setup time"})
			continue
		}
		start, startOK := clock.To24Hour(ev.SetupTime, 0)
		end, endOK := clock.To24Hour(ev.ClosingTime, setup.Hour)
		if !startOK || !endOK {
			dropped = append(dropped, GanttDrop{Event: ev, Reason: "time conversion failed"})
			continue
		}
		rows = append(rows, GanttRow{
			Location:  ev.Location,
			StartTime: start,
			EndTime:   end,
		})
	}
	return rows, dropped
}
