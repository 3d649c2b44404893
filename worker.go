package tpool

import "log/slog"

// worker owns one goroutine that loops dequeuing and executing jobs until
// the queue is closed and drained. done is closed when the goroutine
// exits, so join can be called any number of times.
type worker struct {
	id     int
	done   chan struct{}
	logger *slog.Logger
}

func newWorker(id int, queue *jobQueue, logger *slog.Logger) *worker {
	w := &worker{id: id, done: make(chan struct{}), logger: logger}
	go w.run(queue)

	return w
}

func (w *worker) run(queue *jobQueue) {
	defer close(w.done)

	for {
		job, ok := queue.pop()
		if !ok {
			w.logger.Debug("worker shutting down, queue closed and drained", slog.Int("worker_id", w.id))
			return
		}

		w.execute(job)
	}
}

// execute contains a panicking job so the worker keeps serving instead of
// silently reducing pool capacity.
func (w *worker) execute(job Job) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("job panicked", slog.Int("worker_id", w.id), slog.Any("panic", r))
		}
	}()

	job()
}

// join blocks until the worker's goroutine has exited.
func (w *worker) join() {
	<-w.done
}
