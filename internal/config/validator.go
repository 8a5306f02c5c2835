package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Validate checks the config for:
//   - Required fields
//   - Cleanup patterns that fail to compile
//   - Blank entries in the filter lists
//
// All problems are reported in one error so a bad file can be fixed in
// a single pass.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}
	if cfg.Engine.ReportWorkers < 0 {
		errs = append(errs, "engine.report_workers must not be negative")
	}
	if cfg.Engine.QueueDepth < 0 {
		errs = append(errs, "engine.queue_depth must not be negative")
	}

	if len(cfg.Filters.AllowedPrefixes) == 0 {
		errs = append(errs, "filters.allowed_prefixes must not be empty")
	}
	for i, p := range cfg.Filters.AllowedPrefixes {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Sprintf("filters.allowed_prefixes[%d]: blank prefix", i))
		}
	}
	for i, e := range cfg.Filters.ExcludedLocations {
		if strings.TrimSpace(e) == "" {
			errs = append(errs, fmt.Sprintf("filters.excluded_locations[%d]: blank entry", i))
		}
	}
	for i, p := range cfg.Filters.CleanupPatterns {
		if _, err := regexp.Compile("(?i)" + p); err != nil {
			errs = append(errs, fmt.Sprintf("filters.cleanup_patterns[%d]: %v", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
