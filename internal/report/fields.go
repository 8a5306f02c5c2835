package report

import (
	"regexp"
	"strings"

	"github.com/facilityops/setupsched/internal/clock"
)

// Extraction rules, compiled once. Each returns an absent value on a
// miss; deciding what a miss means is the assembler's job.
var (
	setupTimeRE   = regexp.MustCompile(`(?m)^(\d{1,2}:\d{2} [AP]M) Setup Starts:`)
	preEventRE    = regexp.MustCompile(`Pre-Event:\s+(\d{1,2}:\d{2} [AP]M)`)
	nameTimedRE   = regexp.MustCompile(`Setup Starts:\s*\d{1,2}:\d{2} [AP]M\s+(.+?)\s+Requestor:`)
	nameNoSetupRE = regexp.MustCompile(`Setup Starts:\s*no setup time defined\s+(.+?)\s+Requestor:`)
	refCodeRE     = regexp.MustCompile(`\s*\d{4}-[A-Z0-9]+\s*$`)
	eventWindowRE = regexp.MustCompile(`Event:\s+(\d{1,2}:\d{2} [AP]M)\s+-\s+(\d{1,2}:\d{2} [AP]M)`)
	locationRE    = regexp.MustCompile(`Location Layout Instructions\s*\n([^\n]+)`)
)

// ExtractSetupTime returns the block's setup time. When the marker reads
// "Setup Starts: no setup time defined" the timed marker is ignored and
// the Pre-Event time is used instead.
func ExtractSetupTime(block string) (string, bool) {
	if m := setupTimeRE.FindStringSubmatch(block); m != nil {
		if !strings.Contains(block, SetupMarker+" "+clock.NoSetupTimeLabel) {
			return m[1], true
		}
	}
	if m := preEventRE.FindStringSubmatch(block); m != nil {
		return m[1], true
	}
	return "", false
}

// ExtractName returns the event name found between the "Setup Starts:"
// marker and "Requestor:", with any trailing reference code (a token like
// "2025-AANQFM") stripped.
func ExtractName(block string) (string, bool) {
	re := nameTimedRE
	if strings.Contains(block, clock.NoSetupTimeLabel) {
		re = nameNoSetupRE
	}
	m := re.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	name = strings.TrimSpace(refCodeRE.ReplaceAllString(name, ""))
	if name == "" {
		return "", false
	}
	return name, true
}

// ExtractWindow returns the event's scheduled start and end times from
// the "Event: <start> - <end>" line. The end time is what the schedule
// uses as the closing time.
func ExtractWindow(block string) (start, end string, ok bool) {
	m := eventWindowRE.FindStringSubmatch(block)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ExtractRawLocation returns the line following the "Location Layout
// Instructions" header, verbatim apart from surrounding whitespace.
func ExtractRawLocation(block string) (string, bool) {
	m := locationRE.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	loc := strings.TrimSpace(m[1])
	if loc == "" {
		return "", false
	}
	return loc, true
}
