// Package worker implements the buffered worker pool that runs per-player
// aggregations during a pass over the directory.
// - Fixed number of long-lived workers shared by concurrent passes
// - Load shedding to the caller's goroutine when the queue is full
// - Graceful shutdown that drains queued jobs

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

// Prometheus metrics
var (
	jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mcstats_worker_jobs_total",
		Help: "Per-player aggregations run, by where they ran (pool or inline)",
	}, []string{"path"})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mcstats_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})
)

// Job is one per-player aggregation. Results are written to results[Index],
// so jobs of one pass never share a slot.
type Job struct {
	Ctx       context.Context
	Index     int
	Identity  models.PlayerIdentity
	Aggregate logic.AggregateFunc
	results   []models.PlayerAggregate
	done      *sync.WaitGroup
}

func (j Job) run() {
	j.results[j.Index] = j.Aggregate(j.Ctx, j.Identity)
	j.done.Done()
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Logger      *zap.Logger
}

// Pool manages a pool of workers and implements logic.Collector
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	mu       sync.RWMutex // guards stopped and sends on jobQueue
	stopped  bool
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 8
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1024
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop gracefully shuts down the worker pool. Queued jobs still run.
// Stopping twice, or stopping a pool that was never started, is a no-op
// beyond refusing further jobs.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.logger.Info("Stopping worker pool...")
	if p.cancel != nil {
		p.cancel()
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Collect runs aggregate for every identity on the pool and returns the
// results in input order. Jobs that cannot be queued run on the caller.
func (p *Pool) Collect(ctx context.Context, identities []models.PlayerIdentity, aggregate logic.AggregateFunc) []models.PlayerAggregate {
	results := make([]models.PlayerAggregate, len(identities))
	var done sync.WaitGroup
	done.Add(len(identities))

	shed := 0
	for i, identity := range identities {
		job := Job{
			Ctx:       ctx,
			Index:     i,
			Identity:  identity,
			Aggregate: aggregate,
			results:   results,
			done:      &done,
		}
		if !p.Enqueue(job) {
			shed++
			jobsProcessed.WithLabelValues("inline").Inc()
			job.run()
		}
	}
	done.Wait()

	if shed > 0 {
		p.logger.Debugw("Ran aggregations inline", "count", shed, "players", len(identities))
	}
	return results
}

// Enqueue adds a job to the queue without blocking. It returns false when the
// queue is full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped || p.ctx == nil || p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		job.run()
		jobsProcessed.WithLabelValues("pool").Inc()
	}
	p.logger.Debugw("Worker stopped", "worker", id)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
