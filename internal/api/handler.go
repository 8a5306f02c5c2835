package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/facilityops/setupsched/internal/config"
	"github.com/facilityops/setupsched/internal/engine"
	"github.com/facilityops/setupsched/internal/export"
	"github.com/facilityops/setupsched/internal/metrics"
	"github.com/facilityops/setupsched/internal/pipeline"
)

const maxBatchSize = 100

// reportRequest is one submitted document: a flattened text blob from an
// upstream text extractor, plus an optional display name.
type reportRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Handler holds all HTTP handler dependencies.
type Handler struct {
	eng    *engine.Engine
	loader *config.Loader
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(eng *engine.Engine, loader *config.Loader) http.Handler {
	h := &Handler{eng: eng, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/reports", h.processReport)
	h.mux.HandleFunc("POST /v1/reports/batch", h.processBatch)
	h.mux.HandleFunc("GET /v1/reports/{id}", h.getResult)
	h.mux.HandleFunc("GET /v1/reports/{id}/schedule.csv", h.getScheduleCSV)
	h.mux.HandleFunc("GET /v1/reports/{id}/gantt.csv", h.getGanttCSV)
	h.mux.HandleFunc("GET /v1/reports/{id}/calendar.ics", h.getCalendar)
	h.mux.HandleFunc("GET /v1/rules", h.listRules)
	h.mux.HandleFunc("POST /v1/rules/reload", h.reloadRules)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/reports — synchronous single-document processing.
func (h *Handler) processReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "report text is required")
		return
	}

	res, err := h.eng.ProcessSync(r.Context(), req.Name, req.Text)
	if err != nil {
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/reports/batch — async batch processing (up to 100 documents).
func (h *Handler) processBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []reportRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one report")
		return
	}
	if len(reqs) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(reqs), maxBatchSize))
		return
	}

	ids := make([]string, 0, len(reqs))
	rejected := 0
	for _, req := range reqs {
		if req.Text == "" {
			rejected++
			continue
		}
		id, ok := h.eng.ProcessAsync(req.Name, req.Text)
		if !ok {
			rejected++
			continue
		}
		ids = append(ids, id)
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"total":      len(reqs),
		"queued":     len(ids),
		"rejected":   rejected,
		"report_ids": ids,
	})
}

// GET /v1/reports/{id} — fetch a stored result.
func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	res, ok := h.result(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /v1/reports/{id}/schedule.csv — activity schedule rendering.
func (h *Handler) getScheduleCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.result(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", res.Basename()+"_schedule.csv"))
	_ = export.ScheduleCSV(w, res)
}

// GET /v1/reports/{id}/gantt.csv — headerless three-column rendering.
func (h *Handler) getGanttCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.result(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", res.Basename()+"_matlab.csv"))
	_ = export.GanttCSV(w, res)
}

// GET /v1/reports/{id}/calendar.ics — ICS feed of the day's events.
func (h *Handler) getCalendar(w http.ResponseWriter, r *http.Request) {
	res, ok := h.result(w, r)
	if !ok {
		return
	}
	body, err := export.Calendar(res)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/calendar")
	_, _ = w.Write([]byte(body))
}

func (h *Handler) result(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	id := r.PathValue("id")
	res, ok := h.eng.Result(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no result for report %q", id))
		return nil, false
	}
	return res, true
}

// GET /v1/rules — view the loaded filter configuration.
func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version": cfg.Version,
		"filters": cfg.Filters,
	})
}

// POST /v1/rules/reload — hot-reload the filter config from disk.
func (h *Handler) reloadRules(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := config.Validate(cfg); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	p, err := pipeline.New(cfg.Filters)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.eng.SwapPipeline(p)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":         true,
		"allowed_prefixes": len(cfg.Filters.AllowedPrefixes),
		"cleanup_patterns": len(cfg.Filters.CleanupPatterns),
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — 503 if report queue >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.eng.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}
