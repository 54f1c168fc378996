package crawler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/pagewatch/pagewatch/pkg/db"
	"github.com/pagewatch/pagewatch/pkg/extract"
	"github.com/pagewatch/pagewatch/pkg/lock"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/events.go -pkg mocks -skip-ensure -fmt goimports . Events
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/locker.go -pkg mocks -skip-ensure -fmt goimports . Locker

// ErrBusy is returned when another crawl of the same target is in flight
var ErrBusy = errors.New("target crawl already in progress")

// Store is the target persistence the executor needs
type Store interface {
	GetTarget(ctx context.Context, id string) (*db.Target, error)
	UpdateTargetCrawled(ctx context.Context, id string, value *string, changed bool) error
	UpdateTargetError(ctx context.Context, id string, errMsg string) error
	CreateRun(ctx context.Context, run *db.CrawlRun) error
}

// Events records audit events
type Events interface {
	RecordEvent(ctx context.Context, ev db.Event) error
}

// Extractor fetches a page and extracts the selected value
type Extractor interface {
	Extract(ctx context.Context, pageURL, selector string) (*string, error)
}

// Notifier delivers change alerts, reporting whether any channel succeeded
type Notifier interface {
	Dispatch(ctx context.Context, target *db.Target, subject, body string) bool
}

// Locker serializes crawls of the same target across instances
type Locker interface {
	TryLock(ctx context.Context, key string) (lock.Unlock, bool, error)
}

// Config limits what the executor stores and how long it fetches
type Config struct {
	FetchTimeout time.Duration // per-crawl fetch budget, default 10s
	MaxValueLen  int           // stored value cap, default 1000
	MaxErrorLen  int           // stored error cap, default 500
	MaxDetailLen int           // event detail cap, default 200
}

// Executor runs one crawl per call: fetch, compare, notify, record
type Executor struct {
	store     Store
	events    Events
	extractor Extractor
	notifier  Notifier
	locker    Locker

	fetchTimeout time.Duration
	maxValueLen  int
	maxErrorLen  int
	maxDetailLen int
}

// NewExecutor creates an executor, applying defaults for zero config fields
func NewExecutor(store Store, events Events, extractor Extractor, notifier Notifier, locker Locker, cfg Config) *Executor {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.MaxValueLen <= 0 {
		cfg.MaxValueLen = 1000
	}
	if cfg.MaxErrorLen <= 0 {
		cfg.MaxErrorLen = 500
	}
	if cfg.MaxDetailLen <= 0 {
		cfg.MaxDetailLen = 200
	}
	return &Executor{
		store:        store,
		events:       events,
		extractor:    extractor,
		notifier:     notifier,
		locker:       locker,
		fetchTimeout: cfg.FetchTimeout,
		maxValueLen:  cfg.MaxValueLen,
		maxErrorLen:  cfg.MaxErrorLen,
		maxDetailLen: cfg.MaxDetailLen,
	}
}

// Execute crawls a single target by id. Exactly one crawl run and one crawl
// attempt event are recorded per call, success or not. Returns ErrBusy when
// another crawl of the same target holds the lock.
func (e *Executor) Execute(ctx context.Context, targetID string) error {
	unlock, ok, err := e.locker.TryLock(ctx, "crawl:"+targetID)
	if err != nil {
		return fmt.Errorf("lock target %s: %w", targetID, err)
	}
	if !ok {
		return ErrBusy
	}
	defer func() {
		if err := unlock(ctx); err != nil {
			lgr.Printf("[WARN] failed to release lock for target %s: %v", targetID, err)
		}
	}()

	target, err := e.store.GetTarget(ctx, targetID)
	if err != nil {
		return fmt.Errorf("load target %s: %w", targetID, err)
	}

	started := time.Now()
	value, crawlErr := e.fetch(ctx, target)
	duration := time.Since(started)

	run := db.CrawlRun{
		TargetID:  target.ID,
		CrawledAt: started,
		Success:   crawlErr == nil,
	}

	if crawlErr != nil {
		msg := truncate(crawlErr.Error(), e.maxErrorLen)
		run.ErrorMessage = nullString(msg)
		if err := e.store.UpdateTargetError(ctx, target.ID, msg); err != nil {
			lgr.Printf("[ERROR] failed to record error state for target %s: %v", target.ID, err)
		}
		e.finish(ctx, target, run, duration, "error: "+msg)
		lgr.Printf("[WARN] crawl of %s (%s) failed after %v: %v", target.ID, target.URL, duration.Round(time.Millisecond), crawlErr)
		return nil
	}

	var prev *string
	if target.LastValue.Valid {
		v := target.LastValue.String
		prev = &v
	}

	decision := Evaluate(prev, value, target.Keyword(), target.AlertOnChange)
	changed := !equalValues(prev, value)

	if value != nil {
		run.CrawledValue = nullString(truncate(*value, e.maxValueLen))
	}

	if decision.Notify {
		subject := fmt.Sprintf("pagewatch: change detected on %s", target.URL)
		run.NotificationSent = e.notifier.Dispatch(ctx, target, subject, e.renderBody(target, value, decision))
	}

	if err := e.store.UpdateTargetCrawled(ctx, target.ID, value, changed); err != nil {
		lgr.Printf("[ERROR] failed to record crawl state for target %s: %v", target.ID, err)
	}

	detail := "no match"
	if value != nil {
		detail = "value: " + *value
	}
	e.finish(ctx, target, run, duration, detail)

	lgr.Printf("[INFO] crawled %s (%s) in %v, changed:%v notify:%v", target.ID, target.URL,
		duration.Round(time.Millisecond), changed, decision.Notify)
	return nil
}

// fetch runs the extraction under the configured timeout and classifies
// failures into stable messages suitable for storage
func (e *Executor) fetch(ctx context.Context, target *db.Target) (*string, error) {
	fctx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	defer cancel()

	value, err := e.extractor.Extract(fctx, target.URL, target.Selector)
	if err != nil {
		switch extract.KindOf(err) {
		case extract.KindTimeout:
			return nil, fmt.Errorf("fetch timed out after %v: %w", e.fetchTimeout, err)
		case extract.KindSelector:
			return nil, fmt.Errorf("invalid selector %q: %w", target.Selector, err)
		default:
			return nil, err
		}
	}
	return value, nil
}

// finish writes the crawl run and the attempt event, best effort
func (e *Executor) finish(ctx context.Context, target *db.Target, run db.CrawlRun, duration time.Duration, detail string) {
	if err := e.store.CreateRun(ctx, &run); err != nil {
		lgr.Printf("[ERROR] failed to save crawl run for target %s: %v", target.ID, err)
	}

	ev := db.Event{
		Timestamp:  run.CrawledAt,
		Type:       db.EventCrawlAttempt,
		Target:     nullString(target.URL),
		DurationMs: nullInt64(duration.Milliseconds()),
		Success:    run.Success,
		Details:    nullString(truncate(detail, e.maxDetailLen)),
	}
	if err := e.events.RecordEvent(ctx, ev); err != nil {
		lgr.Printf("[ERROR] failed to record crawl event for target %s: %v", target.ID, err)
	}
}

func (e *Executor) renderBody(target *db.Target, value *string, decision Decision) string {
	var b strings.Builder
	fmt.Fprintf(&b, "URL: %s\n", target.URL)
	fmt.Fprintf(&b, "Selector: %s\n", target.Selector)
	if value != nil {
		fmt.Fprintf(&b, "Value: %s\n", truncate(*value, e.maxValueLen))
	} else {
		b.WriteString("Value: (no match)\n")
	}
	fmt.Fprintf(&b, "Reason: %s\n", strings.Join(decision.Reasons, ", "))
	fmt.Fprintf(&b, "Checked: %s\n", time.Now().UTC().Format(time.RFC3339))
	return b.String()
}
