package export

import (
	"encoding/csv"
	"io"

	"github.com/facilityops/setupsched/internal/pipeline"
)

// ScheduleCSV writes the activity schedule with its header row. Times are
// the original 12-hour labels.
func ScheduleCSV(w io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Event Name", "Location", "Activity", "Time"}); err != nil {
		return err
	}
	for _, r := range res.Rows {
		if err := cw.Write([]string{r.EventName, r.Location, string(r.Activity), r.Time}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// GanttCSV writes the three-column rows with no header, the shape the
// charting app ingests.
func GanttCSV(w io.Writer, res *pipeline.Result) error {
	cw := csv.NewWriter(w)
	for _, r := range res.GanttRows {
		if err := cw.Write([]string{r.Location, r.StartTime, r.EndTime}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
