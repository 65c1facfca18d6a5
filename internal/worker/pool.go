// Package worker implements the buffered worker pool for match-result
// ingestion. It decouples HTTP request handling from store writes:
// backpressure is handled by load shedding, results are recorded in batches,
// and shutdown flushes whatever is still queued.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/fgclab/arena-api/internal/models"
)

// Prometheus metrics
var (
	matchesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_matches_ingested_total",
		Help: "Total number of match results accepted into the queue",
	})

	matchesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_matches_recorded_total",
		Help: "Total number of match results written to the store",
	})

	matchesLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_matches_load_shed_total",
		Help: "Total number of match results dropped because the queue was full",
	})

	ingestQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arena_ingest_queue_depth",
		Help: "Current depth of the ingest queue",
	})

	batchRecordDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arena_batch_record_duration_seconds",
		Help:    "Duration of batch writes to the store",
		Buckets: prometheus.DefBuckets,
	})
)

// Recorder is the store-side write interface.
type Recorder interface {
	AppendMatches(batch []models.MatchRecord)
}

// Invalidator is notified after each recorded batch so derived views
// (the leaderboard cache) can drop stale data.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Job is one queued match result.
type Job struct {
	Match    models.MatchRecord
	Enqueued time.Time
}

// PoolConfig configures the ingest pool.
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Recorder      Recorder
	Invalidator   Invalidator
	Logger        *zap.Logger
}

// Pool manages the ingest workers.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates an ingest pool. Zero config values fall back to defaults.
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		ctx:      ctx,
		cancel:   cancel,
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.logger.Infow("Ingest pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Enqueue queues a match result for recording, returning a receipt ID.
// When the queue is full the result is shed and ok is false.
func (p *Pool) Enqueue(m models.MatchRecord) (receipt string, ok bool) {
	m.ReceiptID = uuid.NewString()
	job := Job{Match: m, Enqueued: time.Now()}

	select {
	case p.jobQueue <- job:
		matchesIngested.Inc()
		ingestQueueDepth.Set(float64(len(p.jobQueue)))
		return m.ReceiptID, true
	default:
		matchesLoadShed.Inc()
		p.logger.Warnw("Ingest queue full, shedding match result",
			"playerA", m.PlayerA, "playerB", m.PlayerB)
		return "", false
	}
}

// QueueDepth reports the number of queued, unrecorded results.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// Shutdown stops the workers and waits for queued results to be flushed,
// or for ctx to expire.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.cancel()
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Infow("Ingest pool drained")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]models.MatchRecord, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		start := time.Now()
		p.config.Recorder.AppendMatches(batch)
		batchRecordDuration.Observe(time.Since(start).Seconds())
		matchesRecorded.Add(float64(len(batch)))

		if p.config.Invalidator != nil {
			// Shutdown cancels p.ctx before the final flush, so
			// invalidation gets its own context.
			p.config.Invalidator.Invalidate(context.Background())
		}

		p.logger.Debugw("Recorded match batch", "worker", id, "size", len(batch))
		batch = batch[:0]
	}

	for {
		select {
		case job := <-p.jobQueue:
			batch = append(batch, job.Match)
			ingestQueueDepth.Set(float64(len(p.jobQueue)))
			if len(batch) >= p.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-p.ctx.Done():
			// Drain whatever is left, then do a final flush.
			for {
				select {
				case job := <-p.jobQueue:
					batch = append(batch, job.Match)
					if len(batch) >= p.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}
