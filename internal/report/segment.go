// Package report segments raw setup-report text into per-event blocks and
// extracts the typed fields each block carries. Extraction is pure pattern
// matching; a field that does not match is simply absent, never an error.
package report

import (
	"regexp"
	"strings"
)

// SetupMarker delimits event blocks in the report text.
const SetupMarker = "Setup Starts:"

// blockStartRE anchors on the timed marker line that opens every event.
var blockStartRE = regexp.MustCompile(`(?m)^\d{1,2}:\d{2} [AP]M Setup Starts:`)

// Segment splits the report text into candidate event blocks, one split
// immediately before each timed "Setup Starts:" marker line. Front-matter
// before the first marker is discarded, as is any span that does not
// contain the marker at all. Document order is preserved. An empty result
// is valid and means an empty schedule, not an error.
func Segment(text string) []string {
	starts := blockStartRE.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return nil
	}
	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		span := text[loc[0]:end]
		if !strings.Contains(span, SetupMarker) {
			continue
		}
		blocks = append(blocks, span)
	}
	return blocks
}
