package export

import (
	"strings"
	"testing"
	"time"

	"github.com/facilityops/setupsched/internal/pipeline"
	"github.com/facilityops/setupsched/internal/schedule"
)

func testResult() *pipeline.Result {
	events := []schedule.Event{
		{Name: "Morning Briefing", Location: "UC 1227 Conference", SetupTime: "7:30 AM", ClosingTime: "10:00 AM"},
	}
	rows := schedule.BuildRows(events)
	sorted, _ := schedule.SortChronologically(rows)
	gantt, _ := schedule.BuildGanttRows(events)
	return &pipeline.Result{
		Date:      time.Date(2026, time.January, 7, 0, 0, 0, 0, time.Local),
		DateLabel: "01-07-26",
		Events:    events,
		Rows:      sorted,
		GanttRows: gantt,
	}
}

func TestScheduleCSV(t *testing.T) {
	var sb strings.Builder
	if err := ScheduleCSV(&sb, testResult()); err != nil {
		t.Fatalf("ScheduleCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "Event Name,Location,Activity,Time" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Setup Ready By") || !strings.Contains(lines[1], "7:30 AM") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestGanttCSV(t *testing.T) {
	var sb strings.Builder
	if err := GanttCSV(&sb, testResult()); err != nil {
		t.Fatalf("GanttCSV: %v", err)
	}
	got := strings.TrimSpace(sb.String())
	if got != "UC 1227 Conference,07:30,10:00" {
		t.Errorf("gantt csv = %q", got)
	}
}

func TestCalendar(t *testing.T) {
	body, err := Calendar(testResult())
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "SUMMARY:Morning Briefing", "LOCATION:UC 1227 Conference"} {
		if !strings.Contains(body, want) {
			t.Errorf("calendar missing %q", want)
		}
	}
}

func TestCalendar_RequiresDate(t *testing.T) {
	res := testResult()
	res.Date = time.Time{}
	if _, err := Calendar(res); err == nil {
		t.Fatal("expected error without a report date")
	}
}
