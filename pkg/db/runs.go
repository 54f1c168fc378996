package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// CreateRun appends one crawl run audit record. Runs are never mutated.
func (db *DB) CreateRun(ctx context.Context, run *CrawlRun) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	if run.CrawledAt.IsZero() {
		run.CrawledAt = time.Now()
	}

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO crawl_runs (target_id, crawled_at, crawled_value, success, error_message, notification_sent)
			VALUES (:target_id, :crawled_at, :crawled_value, :success, :error_message, :notification_sent)
		`
		res, err := db.conn.NamedExecContext(ctx, query, run)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert crawl run: %w", err)}
		}
		if id, idErr := res.LastInsertId(); idErr == nil {
			run.ID = id
		}
		return nil
	})
}

// ListRuns retrieves the most recent runs for a target, newest first
func (db *DB) ListRuns(ctx context.Context, targetID string, limit int) ([]CrawlRun, error) {
	if limit <= 0 {
		limit = 5
	}
	var runs []CrawlRun
	err := db.conn.SelectContext(ctx, &runs,
		`SELECT * FROM crawl_runs WHERE target_id = ? ORDER BY crawled_at DESC, id DESC LIMIT ?`, targetID, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
