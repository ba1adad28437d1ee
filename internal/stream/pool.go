package stream

import (
	"context"
	"sync"
)

// Pool runs chunk generation and meshing tasks on a fixed set of worker
// goroutines. Tasks are plain closures; results travel back to the manager
// over its own buffered channels, so the pool stays oblivious to job kinds.
type Pool struct {
	jobs    chan func()
	workers int
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewPool starts workers goroutines consuming from a queue of queueSize.
func NewPool(workers, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:    make(chan func(), queueSize),
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.jobs:
			task()
		case <-p.ctx.Done():
			return
		}
	}
}

// Submit queues a task without blocking. Returns false when the queue is
// full; the caller retries on a later frame.
func (p *Pool) Submit(task func()) bool {
	select {
	case p.jobs <- task:
		return true
	default:
		return false
	}
}

// Shutdown stops the workers and waits for in-flight tasks to finish.
// Queued tasks that no worker picked up are dropped.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLen returns the number of tasks waiting for a worker.
func (p *Pool) QueueLen() int {
	return len(p.jobs)
}
