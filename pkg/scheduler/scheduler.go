// Package scheduler drives periodic crawling: on every tick it scans for
// active targets whose interval elapsed and hands each one off, either to the
// task queue or straight to the executor. A distributed tick lock keeps
// multiple instances from scanning at the same time.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/pagewatch/pagewatch/pkg/db"
	"github.com/pagewatch/pagewatch/pkg/queue"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/ticklock.go -pkg mocks -skip-ensure -fmt goimports . TickLock
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher
//go:generate moq -out mocks/executor.go -pkg mocks -skip-ensure -fmt goimports . Executor

// Database interface for scheduler operations
type Database interface {
	ListActiveTargets(ctx context.Context) ([]db.Target, error)
	MarkTargetChecked(ctx context.Context, id string) error
}

// TickLock guards the due-target scan across instances
type TickLock interface {
	TryAcquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// Publisher enqueues crawl tasks for the worker pool
type Publisher interface {
	Publish(ctx context.Context, task queue.Task) error
}

// Executor runs a crawl inline when no queue is configured
type Executor interface {
	Execute(ctx context.Context, targetID string) error
}

// Config holds scheduler configuration
type Config struct {
	Tick time.Duration // scan period, default 1m
}

// Scheduler scans for due targets on a fixed tick
type Scheduler struct {
	db        Database
	lock      TickLock
	publisher Publisher
	executor  Executor
	tick      time.Duration
	wg        sync.WaitGroup
	cancel    context.CancelFunc
}

// New creates a scheduler. Exactly one of publisher and executor is used per
// handoff: publisher when set, executor otherwise.
func New(database Database, tickLock TickLock, publisher Publisher, executor Executor, cfg Config) *Scheduler {
	if cfg.Tick == 0 {
		cfg.Tick = time.Minute
	}
	return &Scheduler{
		db:        database,
		lock:      tickLock,
		publisher: publisher,
		executor:  executor,
		tick:      cfg.Tick,
	}
}

// Start begins the tick loop, the first scan runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		s.scan(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.scan(ctx)
			}
		}
	}()

	mode := "direct"
	if s.publisher != nil {
		mode = "queue"
	}
	lgr.Printf("[INFO] scheduler started, tick %v, %s mode", s.tick, mode)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// scan finds due targets and hands each one off. The whole scan is skipped
// when another instance holds the tick lock.
func (s *Scheduler) scan(ctx context.Context) {
	acquired, err := s.lock.TryAcquire(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to acquire tick lock: %v", err)
		return
	}
	if !acquired {
		lgr.Printf("[DEBUG] tick lock held by another instance, skipping scan")
		return
	}
	defer func() {
		if err := s.lock.Release(ctx); err != nil {
			lgr.Printf("[WARN] failed to release tick lock: %v", err)
		}
	}()

	targets, err := s.db.ListActiveTargets(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list active targets: %v", err)
		return
	}

	now := time.Now()
	due := 0
	for _, t := range targets {
		if !t.Due(now) {
			continue
		}
		due++
		s.handoff(ctx, t, now)
	}

	if due > 0 {
		lgr.Printf("[INFO] scan dispatched %d of %d active targets", due, len(targets))
	}
}

// handoff enqueues or executes one due target. In queue mode the target is
// marked checked at publish time so it does not come up due again before a
// worker gets to it.
func (s *Scheduler) handoff(ctx context.Context, t db.Target, now time.Time) {
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, queue.Task{TargetID: t.ID, EnqueuedAt: now}); err != nil {
			lgr.Printf("[ERROR] failed to enqueue target %s (%s): %v", t.ID, t.URL, err)
			return
		}
		if err := s.db.MarkTargetChecked(ctx, t.ID); err != nil {
			lgr.Printf("[ERROR] failed to mark target %s checked: %v", t.ID, err)
		}
		return
	}

	if err := s.executor.Execute(ctx, t.ID); err != nil {
		lgr.Printf("[WARN] crawl of target %s (%s) failed: %v", t.ID, t.URL, err)
	}
}
