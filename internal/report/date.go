package report

import (
	"regexp"
	"strings"
	"time"
)

// reportDateRE matches the report header date, e.g. "Wednesday, Jan 07 2026".
var reportDateRE = regexp.MustCompile(`(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday),\s+([A-Za-z]{3})\s+(\d{1,2})\s+(\d{4})`)

// DateLayout renders a report date as MM-DD-YY, the basename convention
// for generated schedules.
const DateLayout = "01-02-06"

// ExtractDate finds the report's header date in the document text.
// A missing or malformed date is not an error; callers fall back to a
// caller-chosen basename.
func ExtractDate(text string) (time.Time, bool) {
	m := reportDateRE.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	// Month abbreviations in the header are not reliably capitalized.
	month := strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:])
	t, err := time.Parse("Jan 2 2006", month+" "+m[2]+" "+m[3])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
