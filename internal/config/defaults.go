package config

// Built-in rule tables for the facility the reports come from. A config
// file may override any of these lists wholesale; they are defaults, not
// merged baselines.

// DefaultAllowedPrefixes marks locations as in-scope for scheduling.
// Prefix matching is case-sensitive.
func DefaultAllowedPrefixes() []string {
	return []string{
		"UC ",
		"RUC ",
		"FCS Michigan",
		"FCS 180",
		"FCS Dining Rm D",
	}
}

// DefaultExcludedLocations are known placeholder/default bookings that
// must never appear on a schedule, even when they match an allowed prefix.
func DefaultExcludedLocations() []string {
	return []string{
		"UC Table-Bake/Day Sale",
		"UC Table-Info",
		"UC Lounge (default)",
		"UC Table-Promo1 (default)",
		"UC Table-Promo2 (default)",
	}
}

// DefaultCleanupPatterns strip trailing free-text annotations from raw
// location lines. Order matters: each pattern sees the output of the one
// before it. Patterns are compiled case-insensitively by the normalizer.
func DefaultCleanupPatterns() []string {
	return []string{
		`\s+See\s+.*$`,               // "See Diagram", "See Set Up Notes"
		`\s+No\s+.*$`,                // "No food", "No AV needed"
		`\s+Set up.*$`,               // setup instructions
		`\s+OSL\s+.*$`,               // OSL-specific text
		`\s+Check.*$`,                // "Check in with..."
		`\s+This is.*$`,              // "This is a back-to-back..."
		`\s+Event is.*$`,             // "Event is not catered"
		`\s+no catering.*$`,          // "no catering at this event"
		`\s+\([^)]*default[^)]*\)$`,  // "(default)" markers
		// Room-descriptor rules only fire when annotation text follows the
		// keyword: a bare "Conference" or "Cluster" at end-of-string is part
		// of the room name, not an annotation.
		`\s+Banquet Rounds\s+.*$`, // room setup descriptions
		`\s+Boardroom\s+.*$`,      // room setup descriptions
		`\s+Cluster\s+.*$`,        // room type descriptions
		`\s+Conference\s+.*$`,     // room type descriptions
		`\s+Classroom\s+.*$`,      // room type descriptions
	}
}
