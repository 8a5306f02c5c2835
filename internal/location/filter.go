package location

import "strings"

// Filter decides whether a normalized location belongs on the schedule.
// Exclusions are known placeholder/default bookings and are checked
// before the allow list: a location matching both is rejected.
type Filter struct {
	allowPrefixes []string
	denyLowered   []string
}

// NewFilter builds a Filter from an allow-list of facility-name prefixes
// (matched case-sensitively at the start of the location) and a deny list
// of placeholder names (matched as case-insensitive substrings).
func NewFilter(allowPrefixes, excluded []string) *Filter {
	deny := make([]string, 0, len(excluded))
	for _, e := range excluded {
		deny = append(deny, strings.ToLower(e))
	}
	return &Filter{allowPrefixes: allowPrefixes, denyLowered: deny}
}

// Allows reports whether the location passes the filter. Deny wins over
// allow; a location matching no allow prefix is rejected.
func (f *Filter) Allows(loc string) bool {
	lowered := strings.ToLower(loc)
	for _, deny := range f.denyLowered {
		if strings.Contains(lowered, deny) {
			return false
		}
	}
	for _, prefix := range f.allowPrefixes {
		if strings.HasPrefix(loc, prefix) {
			return true
		}
	}
	return false
}
