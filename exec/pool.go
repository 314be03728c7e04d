// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exec

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrQueueFull is reported when a pool's task queue cannot accept more work.
var ErrQueueFull = errors.New("exec: task queue full")

// PoolConfig configures a worker pool.
type PoolConfig struct {
	// Workers is the number of concurrent worker goroutines.
	Workers int
	// QueueDepth bounds the number of accepted-but-unstarted tasks.
	QueueDepth int
	// Limiter, when non-nil, gates task starts. A worker waits for a token
	// before running each task; if the task's context is cancelled during
	// the wait, the task still runs with the cancelled context so its
	// continuation fires.
	Limiter *rate.Limiter
}

// DefaultPoolConfig returns sensible defaults: one worker, a queue of 64,
// no rate limit.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Workers:    1,
		QueueDepth: 64,
	}
}

type poolTask struct {
	id  uuid.UUID
	ctx context.Context
	run func(context.Context)
}

// Pool is a fixed-size worker pool submitter.
//
// Tasks are queued on Submit and executed by Workers goroutines in FIFO
// order per worker. Shutdown is graceful: the queue is closed, accepted
// tasks drain, then Shutdown returns. Submitting after Shutdown reports
// [ErrClosed]; a rejected task never runs.
type Pool struct {
	cfg    PoolConfig
	logger *zap.SugaredLogger

	tasks chan poolTask
	wg    sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewPool creates a worker pool. A nil logger disables logging.
// Callers must Start the pool before submitting.
func NewPool(cfg PoolConfig, logger *zap.SugaredLogger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = 64
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Pool{
		cfg:    cfg,
		logger: logger,
		tasks:  make(chan poolTask, cfg.QueueDepth),
	}
}

// Start launches the worker goroutines. Starting twice is an error.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return errors.New("exec: pool already started")
	}
	p.started = true
	p.logger.Debugw("pool starting", "workers", p.cfg.Workers, "queue_depth", p.cfg.QueueDepth)
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return nil
}

// Submit enqueues a task. It reports [ErrClosed] after Shutdown and
// [ErrQueueFull] when the queue is at capacity; a rejected task never runs.
func (p *Pool) Submit(ctx context.Context, task func(context.Context)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	if !p.started {
		return errors.New("exec: pool not started")
	}
	t := poolTask{id: uuid.New(), ctx: ctx, run: task}
	select {
	case p.tasks <- t:
		p.logger.Debugw("task queued", "task_id", t.id)
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting tasks, drains the queue, and waits for the
// workers to exit. It is safe to call once; subsequent calls report
// [ErrClosed].
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.closed = true
	if p.started {
		close(p.tasks)
	}
	p.mu.Unlock()
	p.wg.Wait()
	p.logger.Debugw("pool stopped")
	return nil
}

func (p *Pool) worker(n int) {
	defer p.wg.Done()
	for t := range p.tasks {
		if lim := p.cfg.Limiter; lim != nil {
			// Wait fails only when t.ctx is done; run anyway so the
			// task can observe the cancellation and complete its chain.
			_ = lim.Wait(t.ctx)
		}
		start := time.Now()
		t.run(t.ctx)
		p.logger.Debugw("task done", "worker", n, "task_id", t.id, "elapsed", time.Since(start))
	}
}
