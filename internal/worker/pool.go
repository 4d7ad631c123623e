package worker

import (
	"sync"

	"github.com/sanskrutigadekar/rating-platform/internal/metrics"
)

type task func()

// Pool runs fire-and-forget jobs (audit writes) off the request path.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
	stop sync.Once
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
				metrics.AuditQueueDepth.Dec()
			}
		}()
	}
	return p
}

// Submit enqueues a job, dropping it if the queue is full so a slow audit
// sink can never block a request.
func (p *Pool) Submit(f task) {
	select {
	case p.jobs <- f:
		metrics.AuditQueueDepth.Inc()
	default:
	}
}

// Stop drains queued jobs and waits for the workers. Safe to call twice.
func (p *Pool) Stop() {
	p.stop.Do(func() { close(p.jobs) })
	p.wg.Wait()
}
