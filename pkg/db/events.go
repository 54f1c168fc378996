package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// RecordEvent appends one statistics event
func (db *DB) RecordEvent(ctx context.Context, ev Event) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO events (event_timestamp, event_type, target, duration_ms, success, details)
			VALUES (:event_timestamp, :event_type, :target, :duration_ms, :success, :details)
		`
		if _, err := db.conn.NamedExecContext(ctx, query, ev); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert event: %w", err)}
		}
		return nil
	})
}

// OverallStats aggregates crawl attempt counts and success rate
type OverallStats struct {
	TotalAttempts int64   `db:"total_attempts" json:"total_attempts"`
	SuccessCount  int64   `db:"success_count" json:"success_count"`
	FailureCount  int64   `db:"failure_count" json:"failure_count"`
	SuccessRate   float64 `db:"-" json:"success_rate"`
}

// GetOverallStats returns aggregate crawl attempt statistics
func (db *DB) GetOverallStats(ctx context.Context) (*OverallStats, error) {
	var stats OverallStats
	query := `
		SELECT COUNT(*) AS total_attempts,
		       COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0) AS success_count,
		       COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0) AS failure_count
		FROM events WHERE event_type = ?
	`
	if err := db.conn.GetContext(ctx, &stats, query, EventCrawlAttempt); err != nil {
		return nil, fmt.Errorf("overall stats: %w", err)
	}
	if stats.TotalAttempts > 0 {
		stats.SuccessRate = float64(stats.SuccessCount) / float64(stats.TotalAttempts) * 100
	}
	return &stats, nil
}

// EventTypeSummary aggregates attempts per event type
type EventTypeSummary struct {
	EventType     string  `db:"event_type" json:"event_type"`
	TotalAttempts int64   `db:"total_attempts" json:"total_attempts"`
	SuccessCount  int64   `db:"success_count" json:"success_count"`
	FailureCount  int64   `db:"failure_count" json:"failure_count"`
	SuccessRate   float64 `db:"-" json:"success_rate"`
}

// GetEventTypeSummaries returns per-event-type aggregate statistics
func (db *DB) GetEventTypeSummaries(ctx context.Context) ([]EventTypeSummary, error) {
	var summaries []EventTypeSummary
	query := `
		SELECT event_type,
		       COUNT(*) AS total_attempts,
		       COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0) AS success_count,
		       COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0) AS failure_count
		FROM events GROUP BY event_type ORDER BY event_type
	`
	if err := db.conn.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("event type summaries: %w", err)
	}
	for i := range summaries {
		if summaries[i].TotalAttempts > 0 {
			summaries[i].SuccessRate = float64(summaries[i].SuccessCount) / float64(summaries[i].TotalAttempts) * 100
		}
	}
	return summaries, nil
}

// RecentError is a failed event row for the dashboard's error feed
type RecentError struct {
	Timestamp time.Time      `db:"event_timestamp" json:"timestamp"`
	EventType string         `db:"event_type" json:"event_type"`
	Target    sql.NullString `db:"target" json:"-"`
	Details   sql.NullString `db:"details" json:"-"`
}

// GetRecentErrors returns the latest failed events, newest first
func (db *DB) GetRecentErrors(ctx context.Context, limit int) ([]RecentError, error) {
	if limit <= 0 {
		limit = 10
	}
	var errs []RecentError
	query := `
		SELECT event_timestamp, event_type, target, details
		FROM events WHERE success = 0
		ORDER BY event_timestamp DESC, id DESC LIMIT ?
	`
	if err := db.conn.SelectContext(ctx, &errs, query, limit); err != nil {
		return nil, fmt.Errorf("recent errors: %w", err)
	}
	return errs, nil
}

// URLStats aggregates crawl attempts per target url
type URLStats struct {
	URL           string          `db:"target" json:"url"`
	TotalAttempts int64           `db:"total_attempts" json:"total_attempts"`
	SuccessCount  int64           `db:"success_count" json:"success_count"`
	FailureCount  int64           `db:"failure_count" json:"failure_count"`
	SuccessRate   float64         `db:"-" json:"success_rate"`
	AvgSuccessMs  sql.NullFloat64 `db:"avg_success_ms" json:"-"`

	// aggregate timestamps come back as text, the driver only converts
	// declared timestamp columns
	LastFailureAt sql.NullString `db:"last_failure_at" json:"-"`
	LastAttemptAt sql.NullString `db:"last_attempt_at" json:"-"`
}

// GetURLStats returns per-url crawl statistics
func (db *DB) GetURLStats(ctx context.Context) ([]URLStats, error) {
	var stats []URLStats
	query := `
		SELECT target,
		       COUNT(*) AS total_attempts,
		       COALESCE(SUM(CASE WHEN success THEN 1 ELSE 0 END), 0) AS success_count,
		       COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0) AS failure_count,
		       AVG(CASE WHEN success THEN duration_ms END) AS avg_success_ms,
		       MAX(CASE WHEN success = 0 THEN event_timestamp END) AS last_failure_at,
		       MAX(event_timestamp) AS last_attempt_at
		FROM events WHERE event_type = ? AND target IS NOT NULL
		GROUP BY target ORDER BY target
	`
	if err := db.conn.SelectContext(ctx, &stats, query, EventCrawlAttempt); err != nil {
		return nil, fmt.Errorf("url stats: %w", err)
	}
	for i := range stats {
		if stats[i].TotalAttempts > 0 {
			stats[i].SuccessRate = float64(stats[i].SuccessCount) / float64(stats[i].TotalAttempts) * 100
		}
	}
	return stats, nil
}
