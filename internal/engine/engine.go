// Package engine runs report documents through the processing pipeline on
// a bounded worker pool. The pipeline snapshot is swapped atomically on
// config hot-reload; in-flight documents finish on the snapshot they
// started with.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/setupsched/internal/config"
	"github.com/facilityops/setupsched/internal/metrics"
	"github.com/facilityops/setupsched/internal/pipeline"
)

// Engine processes report documents concurrently, one pipeline invocation
// per worker.
type Engine struct {
	pipe  atomic.Pointer[pipeline.Pipeline]
	pool  *workerPool[*reportWork]
	store *resultStore
	conf  *config.EngineConf
}

type reportWork struct {
	id      string
	name    string
	text    string
	resultC chan *pipeline.Result
}

// New creates an Engine using conf and starts the worker pool.
func New(ctx context.Context, p *pipeline.Pipeline, conf config.EngineConf) *Engine {
	e := &Engine{
		store: newResultStore(conf.MaxStoredResults),
		conf:  &conf,
	}
	e.pipe.Store(p)

	e.pool = newWorkerPool(ctx, conf.ReportWorkers, conf.QueueDepth,
		func(ctx context.Context, w *reportWork) {
			res := e.run(w)
			e.store.Put(w.id, res)
			if w.resultC != nil {
				w.resultC <- res
			}
		})

	return e
}

// SwapPipeline atomically replaces the pipeline (used on hot-reload).
func (e *Engine) SwapPipeline(p *pipeline.Pipeline) {
	e.pipe.Store(p)
}

// ProcessSync processes one document and returns the result, or an error
// when the queue is full or the configured timeout elapses first.
func (e *Engine) ProcessSync(ctx context.Context, name, text string) (*pipeline.Result, error) {
	resultC := make(chan *pipeline.Result, 1)
	w := &reportWork{id: uuid.New().String(), name: name, text: text, resultC: resultC}

	if !e.pool.Submit(w) {
		metrics.ReportsRejected.Inc()
		return nil, fmt.Errorf("report queue full (capacity %d)", e.conf.QueueDepth)
	}
	metrics.ReportsEnqueued.Inc()

	timeout := time.Duration(e.conf.ReportTimeoutMs) * time.Millisecond
	select {
	case res := <-resultC:
		return res, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("report processing timeout after %v", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ProcessAsync enqueues a document for background processing and returns
// its id for later retrieval. ok is false when the queue is full.
func (e *Engine) ProcessAsync(name, text string) (id string, ok bool) {
	w := &reportWork{id: uuid.New().String(), name: name, text: text}
	if !e.pool.Submit(w) {
		metrics.ReportsRejected.Inc()
		return "", false
	}
	metrics.ReportsEnqueued.Inc()
	return w.id, true
}

// Result fetches a stored result by id.
func (e *Engine) Result(id string) (*pipeline.Result, bool) {
	return e.store.Get(id)
}

// QueueUtilization returns queue used / capacity in [0, 1].
func (e *Engine) QueueUtilization() float64 {
	if e.pool.QueueCap() == 0 {
		return 0
	}
	return float64(e.pool.QueueLen()) / float64(e.pool.QueueCap())
}

// Shutdown drains the pool gracefully.
func (e *Engine) Shutdown() {
	e.pool.Drain()
}

func (e *Engine) run(w *reportWork) *pipeline.Result {
	res := e.pipe.Load().Process(w.text)
	res.ID = w.id
	res.Name = w.name
	return res
}
