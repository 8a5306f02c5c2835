package clock

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		label  string
		hour   int
		minute int
		ok     bool
	}{
		{name: "standard with space", label: "7:30 AM", hour: 7, minute: 30, ok: true},
		{name: "no space before meridiem", label: "11:45PM", hour: 23, minute: 45, ok: true},
		{name: "pm time", label: "2:15 PM", hour: 14, minute: 15, ok: true},
		{name: "noon", label: "12:00 PM", hour: 12, minute: 0, ok: true},
		{name: "midnight", label: "12:00 AM", hour: 0, minute: 0, ok: true},
		{name: "surrounding whitespace", label: "  9:05 AM ", hour: 9, minute: 5, ok: true},
		{name: "lowercase meridiem", label: "3:00 pm", hour: 15, minute: 0, ok: true},
		{name: "no setup time placeholder", label: "no setup time defined", ok: false},
		{name: "placeholder embedded", label: "Setup Starts: no setup time defined", ok: false},
		{name: "garbage", label: "invalid time", ok: false},
		{name: "24h label rejected", label: "19:30", ok: false},
		{name: "hour out of range", label: "13:00 PM", ok: false},
		{name: "minute out of range", label: "7:75 AM", ok: false},
		{name: "empty", label: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.label)
			if ok != tc.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tc.label, ok, tc.ok)
			}
			if !ok {
				return
			}
			if got.Hour != tc.hour || got.Minute != tc.minute {
				t.Errorf("Parse(%q) = %02d:%02d, want %02d:%02d",
					tc.label, got.Hour, got.Minute, tc.hour, tc.minute)
			}
		})
	}
}

func TestIsNoSetupTime(t *testing.T) {
	if !IsNoSetupTime("No Setup Time Defined") {
		t.Error("expected case-insensitive match")
	}
	if IsNoSetupTime("7:30 AM") {
		t.Error("time label misidentified as placeholder")
	}
}

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		name      string
		label     string
		reference int
		want      string
		ok        bool
	}{
		{name: "morning no reference", label: "1:15 AM", reference: 0, want: "01:15", ok: true},
		{name: "afternoon", label: "2:00 PM", reference: 0, want: "14:00", ok: true},
		{name: "midnight crossing", label: "2:00 AM", reference: 23, want: "26:00", ok: true},
		{name: "evening reference boundary", label: "2:00 AM", reference: 18, want: "26:00", ok: true},
		{name: "no crossing morning reference", label: "2:00 AM", reference: 10, want: "02:00", ok: true},
		{name: "late hour never crosses", label: "11:30 PM", reference: 23, want: "23:30", ok: true},
		{name: "boundary hour crosses", label: "6:00 AM", reference: 20, want: "30:00", ok: true},
		{name: "seven am stays", label: "7:00 AM", reference: 20, want: "07:00", ok: true},
		{name: "unparseable", label: "whenever", reference: 12, ok: false},
		{name: "placeholder", label: "no setup time defined", reference: 12, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := To24Hour(tc.label, tc.reference)
			if ok != tc.ok {
				t.Fatalf("To24Hour(%q, %d) ok = %v, want %v", tc.label, tc.reference, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("To24Hour(%q, %d) = %q, want %q", tc.label, tc.reference, got, tc.want)
			}
		})
	}
}

func TestBefore(t *testing.T) {
	a := Time{Hour: 7, Minute: 30}
	b := Time{Hour: 7, Minute: 45}
	if !a.Before(b) || b.Before(a) {
		t.Errorf("7:30 should sort before 7:45")
	}
	if a.Before(a) {
		t.Errorf("equal times must not be Before each other")
	}
}
