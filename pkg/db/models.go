package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Status represents the lifecycle state of a crawl target
type Status string

// target lifecycle states
const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusError    Status = "error"
)

// NotifyType selects which notification channels are enabled for a target
type NotifyType string

// notification channel sets
const (
	NotifyEmail NotifyType = "email"
	NotifySlack NotifyType = "slack"
	NotifyBoth  NotifyType = "both"
)

// MinCheckInterval is the smallest allowed check interval
const MinCheckInterval = time.Minute

// Target represents a registered page-watch target: what to fetch, how often,
// and where to send alerts
type Target struct {
	ID              string         `db:"id"`
	URL             string         `db:"url"`
	Selector        string         `db:"selector"`
	CheckIntervalMs int64          `db:"check_interval_ms"`
	AlertKeyword    sql.NullString `db:"alert_keyword"`
	AlertOnChange   bool           `db:"alert_on_change"`
	NotifyType      NotifyType     `db:"notify_type"`
	Email           string         `db:"email"`
	SlackChannel    string         `db:"slack_channel"`
	Status          Status         `db:"status"`
	LastValue       sql.NullString `db:"last_value"`
	LastCheckedAt   sql.NullTime   `db:"last_checked_at"`
	LastChangedAt   sql.NullTime   `db:"last_changed_at"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// Interval returns the check interval as a duration
func (t *Target) Interval() time.Duration {
	return time.Duration(t.CheckIntervalMs) * time.Millisecond
}

// EmailEnabled reports whether the email channel is enabled
func (t *Target) EmailEnabled() bool {
	return t.NotifyType == NotifyEmail || t.NotifyType == NotifyBoth
}

// SlackEnabled reports whether the slack channel is enabled
func (t *Target) SlackEnabled() bool {
	return t.NotifyType == NotifySlack || t.NotifyType == NotifyBoth
}

// Keyword returns the alert keyword or empty string when not set
func (t *Target) Keyword() string {
	if !t.AlertKeyword.Valid {
		return ""
	}
	return t.AlertKeyword.String
}

// Due reports whether the target should be crawled at the given time.
// A target that was never checked is due immediately.
func (t *Target) Due(now time.Time) bool {
	if !t.LastCheckedAt.Valid {
		return true
	}
	return now.Sub(t.LastCheckedAt.Time) >= t.Interval()
}

// Validate checks the target definition for internal consistency. Invalid
// targets are rejected before persistence.
func (t *Target) Validate() error {
	if strings.TrimSpace(t.URL) == "" {
		return fmt.Errorf("url is required")
	}
	if strings.TrimSpace(t.Selector) == "" {
		return fmt.Errorf("selector is required")
	}
	if t.Interval() < MinCheckInterval {
		return fmt.Errorf("check interval must be at least %v", MinCheckInterval)
	}
	switch t.NotifyType {
	case NotifyEmail, NotifySlack, NotifyBoth:
	default:
		return fmt.Errorf("unknown notify type %q", t.NotifyType)
	}
	if t.EmailEnabled() && strings.TrimSpace(t.Email) == "" {
		return fmt.Errorf("email destination is required for notify type %q", t.NotifyType)
	}
	if t.SlackEnabled() && strings.TrimSpace(t.SlackChannel) == "" {
		return fmt.Errorf("slack channel is required for notify type %q", t.NotifyType)
	}
	return nil
}

// CrawlRun is an append-only audit record of a single execution attempt
type CrawlRun struct {
	ID               int64          `db:"id"`
	TargetID         string         `db:"target_id"`
	CrawledAt        time.Time      `db:"crawled_at"`
	CrawledValue     sql.NullString `db:"crawled_value"`
	Success          bool           `db:"success"`
	ErrorMessage     sql.NullString `db:"error_message"`
	NotificationSent bool           `db:"notification_sent"`
}

// statistics event types; notification events are derived from channel names
const (
	EventCrawlAttempt = "CRAWL_ATTEMPT"
)

// Event is an append-only statistics record consumed by the dashboard
type Event struct {
	ID         int64          `db:"id"`
	Timestamp  time.Time      `db:"event_timestamp"`
	Type       string         `db:"event_type"`
	Target     sql.NullString `db:"target"`
	DurationMs sql.NullInt64  `db:"duration_ms"`
	Success    bool           `db:"success"`
	Details    sql.NullString `db:"details"`
}
