package report

import (
	"strings"
	"testing"
)

const twoEventDoc = `Daily Setup Report
Wednesday, Jan 07 2026
Page 1 of 3
7:30 AM Setup Starts: 7:30 AM Book Club January Meeting Requestor: John Doe
Pre-Event: 7:30 AM
Event: 8:00 AM - 10:00 AM
Location Layout Instructions
UC 1227 Conference
11:00 AM Setup Starts: 11:00 AM Staff Lunch Requestor: Jane Smith
Event: 12:00 PM - 1:00 PM
Location Layout Instructions
UC 1225 Cluster
`

func TestSegment(t *testing.T) {
	blocks := Segment(twoEventDoc)
	if len(blocks) != 2 {
		t.Fatalf("Segment produced %d blocks, want 2", len(blocks))
	}
	if !strings.HasPrefix(blocks[0], "7:30 AM Setup Starts:") {
		t.Errorf("first block starts with %q", blocks[0][:40])
	}
	if !strings.HasPrefix(blocks[1], "11:00 AM Setup Starts:") {
		t.Errorf("second block starts with %q", blocks[1][:40])
	}
	if strings.Contains(blocks[0], "Daily Setup Report") {
		t.Error("front-matter leaked into the first block")
	}
	if !strings.Contains(blocks[0], "UC 1227 Conference") {
		t.Error("first block lost its location line")
	}
	if strings.Contains(blocks[0], "Staff Lunch") {
		t.Error("first block bleeds into the second event")
	}
}

func TestSegment_DocumentOrderPreserved(t *testing.T) {
	blocks := Segment(twoEventDoc)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if !strings.Contains(blocks[0], "Book Club") || !strings.Contains(blocks[1], "Staff Lunch") {
		t.Error("blocks out of document order")
	}
}

func TestSegment_Empty(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "empty document", text: ""},
		{name: "no markers", text: "Daily Setup Report\nNothing scheduled today.\n"},
		{name: "marker not line-anchored", text: "note: 7:30 AM Setup Starts: inline mention\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if blocks := Segment(tc.text); len(blocks) != 0 {
				t.Errorf("Segment(%q) = %d blocks, want 0", tc.text, len(blocks))
			}
		})
	}
}
