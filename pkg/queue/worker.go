package queue

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/executor.go -pkg mocks -skip-ensure -fmt goimports . Executor

// Executor runs a single crawl for a target
type Executor interface {
	Execute(ctx context.Context, targetID string) error
}

// Workers consumes tasks from a queue with a pool of goroutines
type Workers struct {
	queue    *Queue
	executor Executor
	count    int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorkers creates a pool of count workers, minimum one
func NewWorkers(queue *Queue, executor Executor, count int) *Workers {
	if count < 1 {
		count = 1
	}
	return &Workers{queue: queue, executor: executor, count: count}
}

// Start launches the worker goroutines. Non-blocking, Stop shuts them down.
func (w *Workers) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	for i := 0; i < w.count; i++ {
		w.wg.Add(1)
		go func(id int) {
			defer w.wg.Done()
			w.run(ctx, id)
		}(i)
	}
	lgr.Printf("[INFO] started %d queue workers", w.count)
}

// Stop signals the workers and waits for in-flight tasks to finish
func (w *Workers) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	lgr.Printf("[INFO] queue workers stopped")
}

func (w *Workers) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		task, err := w.queue.Fetch(ctx, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			lgr.Printf("[WARN] worker %d failed to fetch task: %v", id, err)
			time.Sleep(time.Second) // don't spin on a broken connection
			continue
		}
		if task == nil {
			continue
		}

		lgr.Printf("[DEBUG] worker %d picked target %s, queued %v ago",
			id, task.TargetID, time.Since(task.EnqueuedAt).Round(time.Millisecond))
		if err := w.executor.Execute(ctx, task.TargetID); err != nil {
			lgr.Printf("[WARN] worker %d: crawl of target %s failed: %v", id, task.TargetID, err)
		}
	}
}
