package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagewatch/pagewatch/pkg/db"
	"github.com/pagewatch/pagewatch/pkg/queue"
	"github.com/pagewatch/pagewatch/pkg/scheduler/mocks"
)

func activeTarget(id string, lastChecked time.Time) db.Target {
	t := db.Target{
		ID:              id,
		URL:             "https://example.com/" + id,
		Selector:        "#price",
		CheckIntervalMs: 60000,
		Status:          db.StatusActive,
	}
	if !lastChecked.IsZero() {
		t.LastCheckedAt = sql.NullTime{Time: lastChecked, Valid: true}
	}
	return t
}

func openTickLock() *mocks.TickLockMock {
	return &mocks.TickLockMock{
		TryAcquireFunc: func(ctx context.Context) (bool, error) { return true, nil },
		ReleaseFunc:    func(ctx context.Context) error { return nil },
	}
}

func TestScheduler_ScanPublishesDueTargets(t *testing.T) {
	now := time.Now()
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) {
			return []db.Target{
				activeTarget("due-never", time.Time{}),
				activeTarget("due-elapsed", now.Add(-61*time.Second)),
				activeTarget("not-due", now.Add(-30*time.Second)),
			}, nil
		},
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}
	publisher := &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, task queue.Task) error { return nil },
	}

	s := New(database, openTickLock(), publisher, nil, Config{})
	s.scan(context.Background())

	published := publisher.PublishCalls()
	require.Len(t, published, 2)
	assert.Equal(t, "due-never", published[0].Task.TargetID)
	assert.Equal(t, "due-elapsed", published[1].Task.TargetID)

	marked := database.MarkTargetCheckedCalls()
	require.Len(t, marked, 2, "published targets marked checked at handoff")
}

func TestScheduler_DirectModeExecutes(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) {
			return []db.Target{activeTarget("t1", time.Time{})}, nil
		},
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}
	executor := &mocks.ExecutorMock{
		ExecuteFunc: func(ctx context.Context, targetID string) error { return nil },
	}

	s := New(database, openTickLock(), nil, executor, Config{})
	s.scan(context.Background())

	calls := executor.ExecuteCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "t1", calls[0].TargetID)
	assert.Empty(t, database.MarkTargetCheckedCalls(), "executor records its own check timestamp")
}

func TestScheduler_LockMissSkipsScan(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) {
			return []db.Target{activeTarget("t1", time.Time{})}, nil
		},
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}
	tickLock := &mocks.TickLockMock{
		TryAcquireFunc: func(ctx context.Context) (bool, error) { return false, nil },
		ReleaseFunc:    func(ctx context.Context) error { return nil },
	}
	publisher := &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, task queue.Task) error { return nil },
	}

	s := New(database, tickLock, publisher, nil, Config{})
	s.scan(context.Background())

	assert.Empty(t, database.ListActiveTargetsCalls(), "no scan under another instance's lock")
	assert.Empty(t, publisher.PublishCalls())
	assert.Empty(t, tickLock.ReleaseCalls(), "nothing to release")
}

func TestScheduler_LockReleasedAfterScan(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) { return nil, nil },
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}
	tickLock := openTickLock()

	s := New(database, tickLock, nil, &mocks.ExecutorMock{}, Config{})
	s.scan(context.Background())

	assert.Len(t, tickLock.ReleaseCalls(), 1)
}

func TestScheduler_PublishErrorContinues(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) {
			return []db.Target{
				activeTarget("t1", time.Time{}),
				activeTarget("t2", time.Time{}),
			}, nil
		},
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}
	publisher := &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, task queue.Task) error {
			if task.TargetID == "t1" {
				return errors.New("redis down")
			}
			return nil
		},
	}

	s := New(database, openTickLock(), publisher, nil, Config{})
	s.scan(context.Background())

	assert.Len(t, publisher.PublishCalls(), 2, "one failure does not stop the scan")

	marked := database.MarkTargetCheckedCalls()
	require.Len(t, marked, 1, "failed publish leaves target due")
	assert.Equal(t, "t2", marked[0].ID)
}

func TestScheduler_ExecuteErrorContinues(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) {
			return []db.Target{
				activeTarget("t1", time.Time{}),
				activeTarget("t2", time.Time{}),
			}, nil
		},
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}
	executor := &mocks.ExecutorMock{
		ExecuteFunc: func(ctx context.Context, targetID string) error {
			if targetID == "t1" {
				return errors.New("crawl failed")
			}
			return nil
		},
	}

	s := New(database, openTickLock(), nil, executor, Config{})
	s.scan(context.Background())

	assert.Len(t, executor.ExecuteCalls(), 2)
}

func TestScheduler_ListErrorReleasesLock(t *testing.T) {
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) {
			return nil, errors.New("db gone")
		},
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}
	tickLock := openTickLock()

	s := New(database, tickLock, nil, &mocks.ExecutorMock{}, Config{})
	s.scan(context.Background())

	assert.Len(t, tickLock.ReleaseCalls(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	scanned := make(chan struct{}, 1)
	database := &mocks.DatabaseMock{
		ListActiveTargetsFunc: func(ctx context.Context) ([]db.Target, error) {
			select {
			case scanned <- struct{}{}:
			default:
			}
			return nil, nil
		},
		MarkTargetCheckedFunc: func(ctx context.Context, id string) error { return nil },
	}

	s := New(database, openTickLock(), nil, &mocks.ExecutorMock{}, Config{Tick: time.Hour})
	s.Start(context.Background())

	select {
	case <-scanned:
	case <-time.After(2 * time.Second):
		t.Fatal("first scan did not run immediately")
	}

	s.Stop()
}
