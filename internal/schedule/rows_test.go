package schedule

import (
	"testing"

	"github.com/facilityops/setupsched/internal/clock"
)

func TestBuildRows(t *testing.T) {
	events := []Event{
		{Name: "Event 1", Location: "UC 1227", SetupTime: "7:30 AM", ClosingTime: "10:00 AM"},
		{Name: "Event 2", Location: "UC 1225", SetupTime: "11:00 AM", ClosingTime: "2:00 PM"},
	}

	rows := BuildRows(events)

	if len(rows) != 2*len(events) {
		t.Fatalf("got %d rows, want %d (two per event)", len(rows), 2*len(events))
	}
	// Fixed emission order: Setup Ready By before Closing, events in input order.
	want := []Row{
		{EventName: "Event 1", Location: "UC 1227", Activity: ActivitySetupReadyBy, Time: "7:30 AM"},
		{EventName: "Event 1", Location: "UC 1227", Activity: ActivityClosing, Time: "10:00 AM"},
		{EventName: "Event 2", Location: "UC 1225", Activity: ActivitySetupReadyBy, Time: "11:00 AM"},
		{EventName: "Event 2", Location: "UC 1225", Activity: ActivityClosing, Time: "2:00 PM"},
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestBuildRows_Empty(t *testing.T) {
	if rows := BuildRows(nil); len(rows) != 0 {
		t.Errorf("got %d rows for no events, want 0", len(rows))
	}
}

func TestSortChronologically(t *testing.T) {
	rows := []Row{
		{EventName: "Event 2", Activity: ActivitySetupReadyBy, Time: "11:00 AM"},
		{EventName: "Event 1", Activity: ActivitySetupReadyBy, Time: "7:30 AM"},
		{EventName: "Event 3", Activity: ActivitySetupReadyBy, Time: "2:00 PM"},
		{EventName: "Event 1", Activity: ActivityClosing, Time: "10:00 AM"},
	}

	sorted, dropped := SortChronologically(rows)

	if len(dropped) != 0 {
		t.Fatalf("dropped %d rows, want 0", len(dropped))
	}
	wantTimes := []string{"7:30 AM", "10:00 AM", "11:00 AM", "2:00 PM"}
	if len(sorted) != len(wantTimes) {
		t.Fatalf("got %d rows, want %d", len(sorted), len(wantTimes))
	}
	for i, w := range wantTimes {
		if sorted[i].Time != w {
			t.Errorf("sorted[%d].Time = %q, want %q", i, sorted[i].Time, w)
		}
	}
	// Sort invariant: adjacent rows never run backwards.
	for i := 1; i < len(sorted); i++ {
		prev, _ := clock.Parse(sorted[i-1].Time)
		cur, _ := clock.Parse(sorted[i].Time)
		if cur.Before(prev) {
			t.Errorf("rows out of order at %d: %q after %q", i, sorted[i].Time, sorted[i-1].Time)
		}
	}
}

func TestSortChronologically_StableForEqualTimes(t *testing.T) {
	rows := []Row{
		{EventName: "Event 1", Activity: ActivitySetupReadyBy, Time: "9:00 AM"},
		{EventName: "Event 2", Activity: ActivitySetupReadyBy, Time: "9:00 AM"},
		{EventName: "Event 3", Activity: ActivitySetupReadyBy, Time: "9:00 AM"},
	}

	sorted, _ := SortChronologically(rows)

	for i, want := range []string{"Event 1", "Event 2", "Event 3"} {
		if sorted[i].EventName != want {
			t.Errorf("sorted[%d] = %q, want %q (emission order must break ties)", i, sorted[i].EventName, want)
		}
	}
}

func TestSortChronologically_DropsUnparseable(t *testing.T) {
	rows := []Row{
		{EventName: "Good", Activity: ActivitySetupReadyBy, Time: "7:30 AM"},
		{EventName: "Bad", Activity: ActivitySetupReadyBy, Time: "no setup time defined"},
		{EventName: "Worse", Activity: ActivityClosing, Time: "whenever"},
	}

	sorted, dropped := SortChronologically(rows)

	if len(sorted) != 1 || sorted[0].EventName != "Good" {
		t.Errorf("sorted = %+v, want only the parseable row", sorted)
	}
	if len(dropped) != 2 {
		t.Errorf("dropped %d rows, want 2", len(dropped))
	}
}

func TestSortChronologically_Empty(t *testing.T) {
	sorted, dropped := SortChronologically(nil)
	if len(sorted) != 0 || len(dropped) != 0 {
		t.Errorf("empty input must yield empty output, got %d/%d", len(sorted), len(dropped))
	}
}
