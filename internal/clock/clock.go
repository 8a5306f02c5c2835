// Package clock parses the 12-hour time labels found in setup reports and
// converts them to 24-hour notation. Times that follow an evening reference
// into the early morning are rendered in next-day notation ("26:00") so a
// schedule never appears to run backwards across midnight.
package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NoSetupTimeLabel is the literal the report uses when a setup time was
// never entered. It parses to "no value" rather than an error.
const NoSetupTimeLabel = "no setup time defined"

// Midnight-crossing heuristic: a parsed hour at or before earlyMorningHour,
// following a reference hour at or after eveningHour, is assumed to fall on
// the next calendar day. This is an approximation, not a guaranteed
// day-boundary detector.
const (
	eveningHour      = 18
	earlyMorningHour = 6
)

// labelRE accepts "7:30 AM" and "11:45PM" (meridiem case-insensitive,
// space optional).
var labelRE = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s?([AaPp][Mm])$`)

// Time is an hour/minute pair on a 24-hour clock. Hour is 0–23 straight
// from Parse and may reach 24–29 after WithReference detects a midnight
// crossing. It is a sort key and conversion intermediate, never persisted.
type Time struct {
	Hour   int
	Minute int
}

// Parse converts a 12-hour label into a Time. ok is false both for the
// "no setup time defined" placeholder and for labels that do not match the
// report's time format; use IsNoSetupTime to tell the two apart.
func Parse(label string) (Time, bool) {
	if IsNoSetupTime(label) {
		return Time{}, false
	}
	m := labelRE.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return Time{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return Time{}, false
	}
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return Time{Hour: hour, Minute: minute}, true
}

// IsNoSetupTime reports whether the label is the report's "no setup time
// defined" placeholder (case-insensitive substring, matching how the
// reports render it).
func IsNoSetupTime(label string) bool {
	return strings.Contains(strings.ToLower(label), NoSetupTimeLabel)
}

// WithReference applies the midnight-crossing heuristic: given the hour of
// a preceding time (0–23), a small-hours Time is shifted 24 hours into
// next-day notation. All other times pass through unchanged.
func (t Time) WithReference(referenceHour int) Time {
	if referenceHour >= eveningHour && t.Hour <= earlyMorningHour {
		t.Hour += 24
	}
	return t
}

// Minutes returns the time as minutes since midnight, the pipeline's
// chronological sort key.
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t sorts strictly earlier than o.
func (t Time) Before(o Time) bool {
	return t.Minutes() < o.Minutes()
}

// String renders zero-padded HH:MM. The hour may exceed 23 after a
// midnight crossing.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// To24Hour parses a 12-hour label and renders it in 24-hour notation,
// using referenceHour for midnight-crossing detection. ok is false when
// the label does not parse.
func To24Hour(label string, referenceHour int) (string, bool) {
	t, ok := Parse(label)
	if !ok {
		return "", false
	}
	return t.WithReference(referenceHour).String(), true
}
