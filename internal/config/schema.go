package config

// Config is the top-level YAML structure.
type Config struct {
	Version string     `yaml:"version"`
	Engine  EngineConf `yaml:"engine"`
	Filters FilterConf `yaml:"filters"`
}

// EngineConf holds tunable concurrency settings for document processing.
type EngineConf struct {
	ReportWorkers    int `yaml:"report_workers"`
	QueueDepth       int `yaml:"queue_depth"`
	ReportTimeoutMs  int `yaml:"report_timeout_ms"`
	MaxStoredResults int `yaml:"max_stored_results"`
}

// FilterConf carries the location rule tables. The cleanup patterns are an
// ordered cascade and are applied exactly as listed; omitting the whole
// section falls back to the built-in facility defaults.
type FilterConf struct {
	AllowedPrefixes   []string `yaml:"allowed_prefixes"`
	ExcludedLocations []string `yaml:"excluded_locations"`
	CleanupPatterns   []string `yaml:"cleanup_patterns"`
}
