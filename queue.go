package tpool

import "sync"

// jobQueue is the FIFO channel between the pool and its workers. Pushes
// never block; pops block until a job is available or the queue has been
// closed and drained. A popped job is removed, so exactly one worker ever
// receives it.
type jobQueue struct {
	mu     sync.Mutex
	ready  *sync.Cond
	jobs   []Job
	closed bool
}

func newJobQueue() *jobQueue {
	q := &jobQueue{}
	q.ready = sync.NewCond(&q.mu)
	return q
}

func (q *jobQueue) push(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrPoolClosed
	}

	q.jobs = append(q.jobs, job)
	q.ready.Signal()

	return nil
}

// pop reports false only once the queue is closed and every buffered job
// has been handed out. The lock is held for the dequeue attempt only,
// never while a job runs.
func (q *jobQueue) pop() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.jobs) == 0 && !q.closed {
		q.ready.Wait()
	}

	if len(q.jobs) == 0 {
		return nil, false
	}

	job := q.jobs[0]
	q.jobs[0] = nil
	q.jobs = q.jobs[1:]

	return job, true
}

func (q *jobQueue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.jobs)
}

// close marks the producer side gone. Buffered jobs stay deliverable;
// blocked workers are woken so they can drain and exit.
func (q *jobQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	q.ready.Broadcast()
}
