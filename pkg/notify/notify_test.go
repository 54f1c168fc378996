package notify

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagewatch/pagewatch/pkg/db"
	"github.com/pagewatch/pagewatch/pkg/notify/mocks"
)

func notifyTarget(nt db.NotifyType) *db.Target {
	return &db.Target{
		ID:           "t1",
		URL:          "https://example.com/price",
		NotifyType:   nt,
		Email:        "ops@example.com",
		SlackChannel: "#alerts",
	}
}

func okSender(name string) *mocks.SenderMock {
	return &mocks.SenderMock{
		NameFunc: func() string { return name },
		SendFunc: func(ctx context.Context, dest, subject, body string) error { return nil },
	}
}

func recorder() *mocks.RecorderMock {
	return &mocks.RecorderMock{
		RecordEventFunc: func(ctx context.Context, ev db.Event) error { return nil },
	}
}

func TestDispatcher_EmailOnly(t *testing.T) {
	email := okSender("EMAIL")
	slack := okSender("SLACK")
	rec := recorder()
	d := NewDispatcher(email, slack, rec, 0)

	sent := d.Dispatch(context.Background(), notifyTarget(db.NotifyEmail), "subj", "body")
	assert.True(t, sent)

	require.Len(t, email.SendCalls(), 1)
	assert.Equal(t, "ops@example.com", email.SendCalls()[0].Dest)
	assert.Empty(t, slack.SendCalls(), "slack channel not enabled")

	evs := rec.RecordEventCalls()
	require.Len(t, evs, 1)
	assert.Equal(t, "EMAIL_NOTIFICATION_ATTEMPT", evs[0].Ev.Type)
	assert.True(t, evs[0].Ev.Success)
	assert.Equal(t, "subject: subj", evs[0].Ev.Details.String)
}

func TestDispatcher_BothChannels(t *testing.T) {
	email := okSender("EMAIL")
	slack := okSender("SLACK")
	rec := recorder()
	d := NewDispatcher(email, slack, rec, 0)

	sent := d.Dispatch(context.Background(), notifyTarget(db.NotifyBoth), "subj", "body")
	assert.True(t, sent)
	assert.Len(t, email.SendCalls(), 1)
	assert.Len(t, slack.SendCalls(), 1)
	assert.Len(t, rec.RecordEventCalls(), 2, "one event per channel")
}

func TestDispatcher_OneChannelFails(t *testing.T) {
	email := &mocks.SenderMock{
		NameFunc: func() string { return "EMAIL" },
		SendFunc: func(ctx context.Context, dest, subject, body string) error {
			return errors.New("smtp connection refused")
		},
	}
	slack := okSender("SLACK")
	rec := recorder()
	d := NewDispatcher(email, slack, rec, 0)

	sent := d.Dispatch(context.Background(), notifyTarget(db.NotifyBoth), "subj", "body")
	assert.True(t, sent, "slack delivery succeeded")
	require.Len(t, slack.SendCalls(), 1, "email failure does not block slack")

	evs := rec.RecordEventCalls()
	require.Len(t, evs, 2)
	assert.False(t, evs[0].Ev.Success)
	assert.Contains(t, evs[0].Ev.Details.String, "error: smtp connection refused")
	assert.True(t, evs[1].Ev.Success)
}

func TestDispatcher_AllChannelsFail(t *testing.T) {
	failing := func(name string) *mocks.SenderMock {
		return &mocks.SenderMock{
			NameFunc: func() string { return name },
			SendFunc: func(ctx context.Context, dest, subject, body string) error { return errors.New("down") },
		}
	}
	rec := recorder()
	d := NewDispatcher(failing("EMAIL"), failing("SLACK"), rec, 0)

	sent := d.Dispatch(context.Background(), notifyTarget(db.NotifyBoth), "subj", "body")
	assert.False(t, sent)
	assert.Len(t, rec.RecordEventCalls(), 2)
}

func TestDispatcher_BlankDestination(t *testing.T) {
	email := okSender("EMAIL")
	rec := recorder()
	d := NewDispatcher(email, nil, rec, 0)

	target := notifyTarget(db.NotifyEmail)
	target.Email = "   "
	sent := d.Dispatch(context.Background(), target, "subj", "body")
	assert.False(t, sent)
	assert.Empty(t, email.SendCalls(), "nothing to send to")

	evs := rec.RecordEventCalls()
	require.Len(t, evs, 1)
	assert.False(t, evs[0].Ev.Success)
	assert.Contains(t, evs[0].Ev.Details.String, "destination is blank")
}

func TestDispatcher_UnconfiguredSender(t *testing.T) {
	rec := recorder()
	d := NewDispatcher(nil, nil, rec, 0)

	sent := d.Dispatch(context.Background(), notifyTarget(db.NotifySlack), "subj", "body")
	assert.False(t, sent)

	evs := rec.RecordEventCalls()
	require.Len(t, evs, 1)
	assert.Equal(t, "SLACK_NOTIFICATION_ATTEMPT", evs[0].Ev.Type)
	assert.False(t, evs[0].Ev.Success)
	assert.Contains(t, evs[0].Ev.Details.String, "not configured")
}

func TestDispatcher_DetailTruncated(t *testing.T) {
	email := okSender("EMAIL")
	rec := recorder()
	d := NewDispatcher(email, nil, rec, 50)

	long := strings.Repeat("s", 300)
	d.Dispatch(context.Background(), notifyTarget(db.NotifyEmail), long, "body")

	evs := rec.RecordEventCalls()
	require.Len(t, evs, 1)
	assert.Len(t, evs[0].Ev.Details.String, 50)
}

func TestDispatcher_EventTargetIsDestination(t *testing.T) {
	slack := okSender("SLACK")
	rec := recorder()
	d := NewDispatcher(nil, slack, rec, 0)

	d.Dispatch(context.Background(), notifyTarget(db.NotifySlack), "subj", "body")

	evs := rec.RecordEventCalls()
	require.Len(t, evs, 1)
	assert.Equal(t, sql.NullString{String: "#alerts", Valid: true}, evs[0].Ev.Target)
}
