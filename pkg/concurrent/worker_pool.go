package concurrent

import (
	"context"
	"sync"

	"github.com/lintang-b-s/cyclenav/pkg/util"
)

type JobFunc[T any, R any] func(ctx context.Context, job T) R

// WorkerPool runs a JobFunc over queued jobs with a fixed number of goroutines. results are delivered in
// completion order, so the results channel must be drained (or be large enough) for workers not to block.
type WorkerPool[T any, R any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan R
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, R any](numWorkers, jobQueueSize int) (*WorkerPool[T, R], error) {
	if numWorkers <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "worker pool needs at least 1 worker, got %d",
			numWorkers)
	}
	if jobQueueSize < 0 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidArgument, "negative job queue size %d", jobQueueSize)
	}
	return &WorkerPool[T, R]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan R, jobQueueSize),
	}, nil
}

func (wp *WorkerPool[T, R]) worker(ctx context.Context, jobFunc JobFunc[T, R]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		if util.StopConcurrentOperation(ctx) {
			// skip the remaining jobs.
			continue
		}
		wp.results <- jobFunc(ctx, job)
	}
}

// Start launches the workers. once ctx is done the remaining jobs are dropped without being run.
func (wp *WorkerPool[T, R]) Start(ctx context.Context, jobFunc JobFunc[T, R]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, jobFunc)
	}
}

// Wait blocks until every worker returned, which requires Close to have been called, then closes the results.
func (wp *WorkerPool[T, R]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, R]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, R]) CollectResults() <-chan R {
	return wp.results
}

// Close signals that no more jobs will be added.
func (wp *WorkerPool[T, R]) Close() {
	close(wp.jobQueue)
}

// Run feeds jobs to a pool of numWorkers goroutines and returns the results in completion order.
func Run[T any, R any](ctx context.Context, numWorkers int, jobs []T, jobFunc JobFunc[T, R]) ([]R, error) {
	wp, err := NewWorkerPool[T, R](numWorkers, len(jobs))
	if err != nil {
		return nil, err
	}
	for _, job := range jobs {
		wp.AddJob(job)
	}
	wp.Close()
	wp.Start(ctx, jobFunc)
	wp.Wait()

	results := make([]R, 0, len(jobs))
	for r := range wp.CollectResults() {
		results = append(results, r)
	}
	if err := ctx.Err(); err != nil {
		return results, util.WrapErrorf(err, util.ErrResource, "worker pool cancelled after %d of %d jobs",
			len(results), len(jobs))
	}
	return results, nil
}
