package tpool

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

// Job is a fire-and-forget unit of work. It is invoked exactly once, on
// some worker's goroutine, and returns nothing to the submitter.
type Job func()

// Pool is a fixed-size worker pool. Its worker count is set at
// construction and does not change for the pool's lifetime.
type Pool struct {
	queue   *jobQueue
	workers []*worker
	logger  *slog.Logger
	once    sync.Once
}

// New returns a pool with size workers, each bound to an id in 0..size.
// The pool can be configured by passing in a number of options. Available
// options include WithLogger(l *slog.Logger). It returns ErrPoolSize if
// size is less than 1, in which case no workers are spawned.
// Close() should be called on the returned pool when done.
func New(size int, options ...Option) (*Pool, error) {
	if size < minPoolSize {
		return nil, ErrPoolSize
	}

	p := &Pool{queue: newJobQueue(), logger: slog.New(discardSlogHandler{})}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}

	p.workers = make([]*worker, 0, size)
	for id := 0; id < size; id++ {
		p.workers = append(p.workers, newWorker(id, p.queue, p.logger))
	}
	p.logger.Info("pool started", slog.Int("workers_count", size))

	return p, nil
}

// Execute submits job to the pool. The queue is unbounded, so Execute
// returns once the job is enqueued and never blocks waiting for an idle
// worker. Submitting to a closed pool returns an error satisfying
// errors.Is(err, ErrPoolClosed).
func (p *Pool) Execute(job Job) error {
	if err := p.queue.push(job); err != nil {
		return errors.Wrap(err, "ERROR: could not enqueue job")
	}

	return nil
}

// Size returns the number of workers the pool was built with.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Pending returns the number of jobs enqueued but not yet handed to a
// worker.
func (p *Pool) Pending() int {
	return p.queue.pending()
}

// Close shuts the pool down: it closes the producer side of the queue,
// then joins each worker in id order, blocking until every job submitted
// before Close has run and every worker goroutine has exited. Close is
// idempotent and safe to call from multiple goroutines. The producer must
// be closed before any join, otherwise workers would block forever on a
// queue that never closes.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.logger.Info("pool shutting down", slog.Int("workers_count", len(p.workers)))
		p.queue.close()

		for _, w := range p.workers {
			w.join()
		}
		p.logger.Info("pool shutdown completed")
	})
}
