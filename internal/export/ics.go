// Package export renders a processed schedule in formats consumed by
// external tooling: an ICS calendar feed and CSV bodies for both output
// shapes.
package export

import (
	"errors"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/facilityops/setupsched/internal/clock"
	"github.com/facilityops/setupsched/internal/pipeline"
)

// Calendar renders each event as a VEVENT on the report date, spanning
// setup time through closing time. Closing times past midnight roll into
// the next calendar day. Requires a report date: without one the events
// cannot be anchored to a day.
func Calendar(res *pipeline.Result) (string, error) {
	if res.Date.IsZero() {
		return "", errors.New("result has no report date")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//setupsched//schedule//EN")

	for _, ev := range res.Events {
		setup, ok := clock.Parse(ev.SetupTime)
		if !ok {
			continue
		}
		closing, ok := clock.Parse(ev.ClosingTime)
		if !ok {
			continue
		}
		closing = closing.WithReference(setup.Hour)

		ve := cal.AddEvent(uuid.New().String() + "@setupsched")
		ve.SetDtStampTime(time.Now().UTC())
		ve.SetSummary(ev.Name)
		ve.SetLocation(ev.Location)
		ve.SetStartAt(onDay(res.Date, setup))
		ve.SetEndAt(onDay(res.Date, closing))
	}

	return cal.Serialize(), nil
}

// onDay anchors an hour/minute pair to the report date. Hours of 24 and
// above land on the following day.
func onDay(day time.Time, t clock.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local).
		Add(time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute)
}
