// Package pipeline runs one report document through segmentation,
// extraction, normalization, filtering, and row building. A Pipeline is
// immutable after construction; hot-reload builds a new one and swaps it
// in atomically, so a single instance is safe to use from any number of
// goroutines over independent documents.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/facilityops/setupsched/internal/config"
	"github.com/facilityops/setupsched/internal/location"
	"github.com/facilityops/setupsched/internal/metrics"
	"github.com/facilityops/setupsched/internal/report"
	"github.com/facilityops/setupsched/internal/schedule"
)

// Pipeline holds the compiled rule tables for one configuration snapshot.
type Pipeline struct {
	norm   *location.Normalizer
	filter *location.Filter
}

// New compiles the filter configuration into a Pipeline.
func New(filters config.FilterConf) (*Pipeline, error) {
	norm, err := location.NewNormalizer(filters.CleanupPatterns)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}
	return &Pipeline{
		norm:   norm,
		filter: location.NewFilter(filters.AllowedPrefixes, filters.ExcludedLocations),
	}, nil
}

// Process runs the full pipeline over one document's extracted text.
// It never fails: malformed blocks become Drop diagnostics, and an empty
// or unusable document yields an empty (valid) result.
func (p *Pipeline) Process(text string) *Result {
	start := time.Now()
	res := &Result{}

	if date, ok := report.ExtractDate(text); ok {
		res.Date = date
		res.DateLabel = date.Format(report.DateLayout)
	} else {
		slog.Warn("report date not found in document")
	}

	blocks := report.Segment(text)
	res.Summary.BlocksFound = len(blocks)
	metrics.BlocksSegmented.Add(float64(len(blocks)))

	for _, block := range blocks {
		ev, drop := p.assemble(block)
		if drop != nil {
			res.recordDrop(*drop)
			continue
		}
		res.Events = append(res.Events, ev)
	}
	metrics.EventsAssembled.Add(float64(len(res.Events)))

	rows := schedule.BuildRows(res.Events)
	sorted, unsortable := schedule.SortChronologically(rows)
	res.Rows = sorted
	for _, r := range unsortable {
		res.recordDrop(Drop{
			Stage:     StageSortTime,
			Severity:  SeverityUnexpected,
			EventName: r.EventName,
			Reason:    "unparseable time on schedule row",
			Detail:    fmt.Sprintf("activity=%s time=%q", r.Activity, r.Time),
		})
	}
	res.Summary.InvalidTimeRows = len(unsortable)

	gantt, ganttDrops := schedule.BuildGanttRows(res.Events)
	res.GanttRows = gantt
	for _, d := range ganttDrops {
		res.recordDrop(Drop{
			Stage:     StageGanttTime,
			Severity:  SeverityUnexpected,
			EventName: d.Event.Name,
			Reason:    d.Reason,
			Detail:    fmt.Sprintf("setup=%q closing=%q", d.Event.SetupTime, d.Event.ClosingTime),
		})
	}

	res.Summary.EventCount = len(res.Events)
	res.Summary.RowCount = len(res.Rows)
	res.Summary.GanttRowCount = len(res.GanttRows)
	res.Summary.DurationMs = time.Since(start).Milliseconds()

	metrics.ReportsProcessed.Inc()
	metrics.ProcessingDuration.Observe(float64(res.Summary.DurationMs))
	slog.Info("report processed",
		"blocks", res.Summary.BlocksFound,
		"events", res.Summary.EventCount,
		"rows", res.Summary.RowCount,
		"drops", len(res.Drops),
		"duration_ms", res.Summary.DurationMs,
	)
	return res
}

// assemble runs the four extraction rules in order, then normalization and
// filtering, short-circuiting to a Drop the moment a required step fails.
func (p *Pipeline) assemble(block string) (schedule.Event, *Drop) {
	setupTime, ok := report.ExtractSetupTime(block)
	if !ok {
		return schedule.Event{}, &Drop{
			Stage:    StageSetupTime,
			Severity: SeverityBenign,
			Reason:   "no setup time found",
		}
	}

	name, ok := report.ExtractName(block)
	if !ok {
		return schedule.Event{}, &Drop{
			Stage:    StageName,
			Severity: SeverityBenign,
			Reason:   "no event name found",
		}
	}

	_, end, ok := report.ExtractWindow(block)
	if !ok {
		return schedule.Event{}, &Drop{
			Stage:     StageWindow,
			Severity:  SeverityBenign,
			EventName: name,
			Reason:    "no event time window found",
		}
	}

	raw, ok := report.ExtractRawLocation(block)
	if !ok {
		return schedule.Event{}, &Drop{
			Stage:     StageLocation,
			Severity:  SeverityBenign,
			EventName: name,
			Reason:    "no location found",
		}
	}

	loc, ok := p.norm.Clean(raw)
	if !ok {
		return schedule.Event{}, &Drop{
			Stage:     StageLocation,
			Severity:  SeverityBenign,
			EventName: name,
			Reason:    "location cleaned to empty",
			Detail:    fmt.Sprintf("raw=%q", raw),
		}
	}

	if !p.filter.Allows(loc) {
		return schedule.Event{}, &Drop{
			Stage:     StageLocationFilter,
			Severity:  SeverityBenign,
			EventName: name,
			Reason:    "location does not match filter criteria",
			Detail:    fmt.Sprintf("location=%q", loc),
		}
	}

	return schedule.Event{
		Name:        name,
		Location:    loc,
		SetupTime:   setupTime,
		ClosingTime: end,
	}, nil
}
