package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/facilityops/setupsched/internal/metrics"
	"github.com/facilityops/setupsched/internal/schedule"
)

// Stage identifies which pipeline rule rejected a block, event, or row.
type Stage string

const (
	StageSetupTime      Stage = "setup_time"
	StageName           Stage = "event_name"
	StageWindow         Stage = "event_window"
	StageLocation       Stage = "location"
	StageLocationFilter Stage = "location_filter"
	StageSortTime       Stage = "sort_time"
	StageGanttTime      Stage = "gantt_time"
)

// Severity splits drops into expected filtering (benign) and conditions
// that suggest a malformed document (unexpected). Neither ever aborts a
// batch.
type Severity string

const (
	SeverityBenign     Severity = "benign"
	SeverityUnexpected Severity = "unexpected"
)

// Drop is the diagnostic record for one rejected block, event, or row.
type Drop struct {
	Stage     Stage    `json:"stage"`
	Severity  Severity `json:"severity"`
	EventName string   `json:"event_name,omitempty"`
	Reason    string   `json:"reason"`
	Detail    string   `json:"detail,omitempty"`
}

// Summary carries the per-run counters reported in logs and responses.
type Summary struct {
	BlocksFound     int   `json:"blocks_found"`
	EventCount      int   `json:"event_count"`
	RowCount        int   `json:"row_count"`
	InvalidTimeRows int   `json:"invalid_time_rows"`
	GanttRowCount   int   `json:"gantt_row_count"`
	DurationMs      int64 `json:"duration_ms"`
}

// Result is everything produced by one pipeline run over one document.
type Result struct {
	ID        string              `json:"id,omitempty"`
	Name      string              `json:"name,omitempty"`
	Date      time.Time           `json:"-"`
	DateLabel string              `json:"report_date,omitempty"`
	Events    []schedule.Event    `json:"events"`
	Rows      []schedule.Row      `json:"rows"`
	GanttRows []schedule.GanttRow `json:"gantt_rows"`
	Drops     []Drop              `json:"drops,omitempty"`
	Summary   Summary             `json:"summary"`
}

// Basename suggests an output-file stem: the report date when present,
// otherwise the document's own name.
func (r *Result) Basename() string {
	if r.DateLabel != "" {
		return r.DateLabel
	}
	return r.Name
}

func (r *Result) recordDrop(d Drop) {
	r.Drops = append(r.Drops, d)
	metrics.Drops.WithLabelValues(string(d.Stage)).Inc()

	level := slog.LevelDebug
	if d.Severity == SeverityUnexpected {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "dropped during processing",
		"stage", d.Stage,
		"reason", d.Reason,
		"event", d.EventName,
		"detail", d.Detail,
	)
}
