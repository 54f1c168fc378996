// Package queue hands crawl tasks from the scheduler to workers through a
// Redis list. Delivery is at-least-once: a worker that dies mid-task loses
// nothing durable, the target simply comes up due again on a later tick.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis list the scheduler publishes to
const DefaultKey = "pagewatch:tasks"

// Task is the unit of handoff: just the target id, the worker loads the
// rest from the store so a stale payload cannot carry outdated config
type Task struct {
	TargetID   string    `json:"target_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Queue is a Redis-list backed task queue
type Queue struct {
	client *redis.Client
	key    string
}

// New creates a queue on the given Redis list key
func New(client *redis.Client, key string) *Queue {
	if key == "" {
		key = DefaultKey
	}
	return &Queue{client: client, key: key}
}

// Publish enqueues one task
func (q *Queue) Publish(ctx context.Context, task Task) error {
	if task.TargetID == "" {
		return errors.New("task target id is empty")
	}
	if task.EnqueuedAt.IsZero() {
		task.EnqueuedAt = time.Now()
	}

	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}

	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("publish task for target %s: %w", task.TargetID, err)
	}
	return nil
}

// Fetch blocks up to timeout for the next task. Returns (nil, nil) when the
// wait times out with nothing queued.
func (q *Queue) Fetch(ctx context.Context, timeout time.Duration) (*Task, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch task: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected brpop reply of %d elements", len(res))
	}

	var task Task
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		return nil, fmt.Errorf("unmarshal task: %w", err)
	}
	return &task, nil
}

// Len returns the number of queued tasks
func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("queue length: %w", err)
	}
	return n, nil
}
