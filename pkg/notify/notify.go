// Package notify fans a rendered alert out to a target's enabled channels.
// Channels fail independently: one channel's error never prevents another
// channel's attempt, and every attempt lands in the statistics log.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/pagewatch/pagewatch/pkg/db"
)

//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// Sender delivers one message on one channel
type Sender interface {
	Name() string // channel name, used to build the statistics event type
	Send(ctx context.Context, dest, subject, body string) error
}

// Recorder appends statistics events
type Recorder interface {
	RecordEvent(ctx context.Context, ev db.Event) error
}

// Dispatcher fans notifications out over the configured channel senders
type Dispatcher struct {
	email     Sender
	slack     Sender
	events    Recorder
	maxDetail int
}

// NewDispatcher creates a dispatcher. A nil sender means the channel's
// transport is not configured; attempts on it are recorded as failures
// rather than silently skipped.
func NewDispatcher(email, slack Sender, events Recorder, maxDetail int) *Dispatcher {
	if maxDetail <= 0 {
		maxDetail = 200
	}
	return &Dispatcher{email: email, slack: slack, events: events, maxDetail: maxDetail}
}

// Dispatch attempts delivery on every channel the target enables and returns
// true if at least one channel succeeded. The result is audit information
// only; failures are already recorded per channel.
func (d *Dispatcher) Dispatch(ctx context.Context, target *db.Target, subject, body string) bool {
	sent := false

	if target.EmailEnabled() {
		if d.attempt(ctx, "EMAIL", d.email, target.Email, subject, body) {
			sent = true
		}
	}
	if target.SlackEnabled() {
		if d.attempt(ctx, "SLACK", d.slack, target.SlackChannel, subject, body) {
			sent = true
		}
	}

	return sent
}

// attempt tries one channel and records exactly one statistics event for it
func (d *Dispatcher) attempt(ctx context.Context, name string, sender Sender, dest, subject, body string) bool {
	start := time.Now()
	var sendErr error

	switch {
	case sender == nil:
		sendErr = fmt.Errorf("%s sender is not configured", strings.ToLower(name))
	case strings.TrimSpace(dest) == "":
		sendErr = fmt.Errorf("%s destination is blank", strings.ToLower(name))
	default:
		sendErr = sender.Send(ctx, dest, subject, body)
	}

	duration := time.Since(start)
	detail := "subject: " + subject
	if sendErr != nil {
		detail = "error: " + sendErr.Error()
		lgr.Printf("[WARN] %s notification to %q failed: %v", strings.ToLower(name), dest, sendErr)
	} else {
		lgr.Printf("[INFO] %s notification sent to %q", strings.ToLower(name), dest)
	}

	ev := db.Event{
		Type:       name + "_NOTIFICATION_ATTEMPT",
		Target:     nullString(dest),
		DurationMs: nullInt64(duration.Milliseconds()),
		Success:    sendErr == nil,
		Details:    nullString(truncate(detail, d.maxDetail)),
	}
	if err := d.events.RecordEvent(ctx, ev); err != nil {
		lgr.Printf("[WARN] failed to record %s notification event: %v", strings.ToLower(name), err)
	}

	return sendErr == nil
}
