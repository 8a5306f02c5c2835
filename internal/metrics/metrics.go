package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "setupsched_reports_enqueued_total",
		Help: "Total number of report documents placed on the processing queue.",
	})

	ReportsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "setupsched_reports_processed_total",
		Help: "Total number of report documents fully processed.",
	})

	ReportsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "setupsched_reports_rejected_total",
		Help: "Total number of report documents rejected due to a full queue.",
	})

	BlocksSegmented = promauto.NewCounter(prometheus.CounterOpts{
		Name: "setupsched_blocks_segmented_total",
		Help: "Total number of candidate event blocks produced by segmentation.",
	})

	EventsAssembled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "setupsched_events_assembled_total",
		Help: "Total number of blocks that survived extraction and filtering.",
	})

	Drops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "setupsched_drops_total",
		Help: "Total number of blocks, events, and rows dropped, labelled by pipeline stage.",
	}, []string{"stage"})

	ProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "setupsched_report_processing_duration_ms",
		Help:    "End-to-end report processing latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "setupsched_queue_utilization_ratio",
		Help: "Current report queue utilization (0–1).",
	})
)
