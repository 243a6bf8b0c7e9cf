package worker

import (
	"context"
	"sync"
)

// Job is a unit of publish work
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job
type Result interface {
	Err() error
}

// Pool runs jobs with bounded concurrency. Failing jobs never stop the
// rest of the batch; every job yields a result.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker count
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes all jobs and returns their results in completion order.
// Jobs still queued when ctx is cancelled are dropped.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	if len(jobs) == 0 {
		return []Result{}
	}

	queue := make(chan Job)
	results := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				results <- job.Execute(ctx)
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return
			case queue <- job:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]Result, 0, len(jobs))
	for r := range results {
		collected = append(collected, r)
	}
	return collected
}
