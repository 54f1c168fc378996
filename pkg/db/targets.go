package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
)

// hard cap on the stored last_value, matches the schema's intent of keeping
// the audit trail bounded even if a caller passes an untruncated value
const maxStoredValueLen = 1000

// CreateTarget validates and persists a new target. The id is assigned here
// if not set by the caller.
func (db *DB) CreateTarget(ctx context.Context, target *Target) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	if target.ID == "" {
		target.ID = uuid.New().String()
	}
	if target.Status == "" {
		target.Status = StatusPending
	}
	now := time.Now()
	target.CreatedAt = now
	target.UpdatedAt = now

	query := `
		INSERT INTO targets (id, url, selector, check_interval_ms, alert_keyword, alert_on_change,
		                     notify_type, email, slack_channel, status, created_at, updated_at)
		VALUES (:id, :url, :selector, :check_interval_ms, :alert_keyword, :alert_on_change,
		        :notify_type, :email, :slack_channel, :status, :created_at, :updated_at)
	`
	if _, err := db.conn.NamedExecContext(ctx, query, target); err != nil {
		return fmt.Errorf("insert target: %w", err)
	}
	return nil
}

// GetTarget retrieves a target by id
func (db *DB) GetTarget(ctx context.Context, id string) (*Target, error) {
	var target Target
	err := db.conn.GetContext(ctx, &target, `SELECT * FROM targets WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("target %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get target: %w", err)
	}
	return &target, nil
}

// ListTargets retrieves all targets, newest first
func (db *DB) ListTargets(ctx context.Context) ([]Target, error) {
	var targets []Target
	err := db.conn.SelectContext(ctx, &targets, `SELECT * FROM targets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	return targets, nil
}

// ListActiveTargets retrieves targets eligible for scheduling
func (db *DB) ListActiveTargets(ctx context.Context) ([]Target, error) {
	var targets []Target
	err := db.conn.SelectContext(ctx, &targets, `SELECT * FROM targets WHERE status = ? ORDER BY created_at`, StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active targets: %w", err)
	}
	return targets, nil
}

// UpdateTarget validates and persists changes to the target's definition.
// State fields (status, last value, timestamps) are not touched.
func (db *DB) UpdateTarget(ctx context.Context, target *Target) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	query := `
		UPDATE targets
		SET url = ?, selector = ?, check_interval_ms = ?, alert_keyword = ?, alert_on_change = ?,
		    notify_type = ?, email = ?, slack_channel = ?, updated_at = datetime('now')
		WHERE id = ?
	`
	res, err := db.conn.ExecContext(ctx, query, target.URL, target.Selector, target.CheckIntervalMs,
		target.AlertKeyword, target.AlertOnChange, target.NotifyType, target.Email, target.SlackChannel, target.ID)
	if err != nil {
		return fmt.Errorf("update target: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update target rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("target %s: %w", target.ID, ErrNotFound)
	}
	return nil
}

// DeleteTarget removes a target; its crawl runs are removed by cascade
func (db *DB) DeleteTarget(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM targets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete target: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete target rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("target %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetTargetStatus switches a target between lifecycle states (operator action)
func (db *DB) SetTargetStatus(ctx context.Context, id string, status Status) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE targets SET status = ?, updated_at = datetime('now') WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("set target status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set target status rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("target %s: %w", id, ErrNotFound)
	}
	return nil
}

// MarkTargetChecked stamps last_checked_at at task handoff time, so the next
// scheduler tick does not re-publish a target whose task is still queued
func (db *DB) MarkTargetChecked(ctx context.Context, id string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := db.conn.ExecContext(ctx,
			`UPDATE targets SET last_checked_at = datetime('now'), updated_at = datetime('now') WHERE id = ?`, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("mark target checked: %w", err)}
		}
		return nil
	})
}

// UpdateTargetCrawled records a successful crawl: status back to active, new
// last value, check timestamp, and the change timestamp only when the value
// actually differs from the previous one.
func (db *DB) UpdateTargetCrawled(ctx context.Context, id string, value *string, changed bool) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var stored sql.NullString
	if value != nil {
		stored = sql.NullString{String: truncate(*value, maxStoredValueLen), Valid: true}
	}

	return retrier.Do(ctx, func() error {
		var err error
		if changed {
			_, err = db.conn.ExecContext(ctx, `
				UPDATE targets
				SET status = ?, last_value = ?, last_checked_at = datetime('now'),
				    last_changed_at = datetime('now'), updated_at = datetime('now')
				WHERE id = ?`, StatusActive, stored, id)
		} else {
			_, err = db.conn.ExecContext(ctx, `
				UPDATE targets
				SET status = ?, last_value = ?, last_checked_at = datetime('now'), updated_at = datetime('now')
				WHERE id = ?`, StatusActive, stored, id)
		}
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update target crawled: %w", err)}
		}
		return nil
	})
}

// UpdateTargetError records a failed crawl: status error and the failure
// message stored as the last value surrogate, so operators see it in place
func (db *DB) UpdateTargetError(ctx context.Context, id, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	surrogate := truncate("Error: "+errMsg, maxStoredValueLen)

	return retrier.Do(ctx, func() error {
		_, err := db.conn.ExecContext(ctx, `
			UPDATE targets
			SET status = ?, last_value = ?, last_checked_at = datetime('now'), updated_at = datetime('now')
			WHERE id = ?`, StatusError, surrogate, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update target error: %w", err)}
		}
		return nil
	})
}
