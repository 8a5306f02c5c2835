// Package location cleans raw location strings extracted from setup
// reports and decides which locations belong on the final schedule.
// Both the cleanup rules and the allow/deny lists are injected as
// configuration so alternate facilities can substitute their own.
package location

import (
	"fmt"
	"regexp"
	"strings"
)

// Normalizer applies an ordered cascade of truncation rules to a raw
// location line. Each rule removes its first match through end-of-string;
// later rules see the output of earlier ones, so rule order is part of
// the contract.
type Normalizer struct {
	rules []*regexp.Regexp
}

// NewNormalizer compiles the cleanup patterns, preserving order. Patterns
// are matched case-insensitively.
func NewNormalizer(patterns []string) (*Normalizer, error) {
	rules := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("cleanup pattern %q: %w", p, err)
		}
		rules = append(rules, re)
	}
	return &Normalizer{rules: rules}, nil
}

// Clean runs the cascade and trims the result. ok is false when the
// location cleans down to nothing, which callers treat as "no valid
// location" rather than an error.
func (n *Normalizer) Clean(raw string) (string, bool) {
	loc := strings.TrimSpace(raw)
	for _, re := range n.rules {
		loc = strings.TrimSpace(re.ReplaceAllString(loc, ""))
	}
	if loc == "" {
		return "", false
	}
	return loc, true
}
