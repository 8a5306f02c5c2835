// Package schedule turns assembled events into the two output shapes the
// service produces: the four-column activity schedule and the three-column
// gantt rows consumed by the charting app.
package schedule

// Event is one assembled setup-report entry. Location has already been
// normalized and has passed the location filter; the time fields are the
// raw 12-hour labels from the report and may still fail to parse, which
// is handled when rows are built, not here. Events are never mutated
// after assembly.
type Event struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	SetupTime   string `json:"setup_time"`
	ClosingTime string `json:"closing_time"`
}
