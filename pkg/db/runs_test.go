package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_CreateRun(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	target := sampleTarget()
	require.NoError(t, db.CreateTarget(ctx, target))

	run := &CrawlRun{
		TargetID:         target.ID,
		CrawledValue:     sql.NullString{String: "$12.50", Valid: true},
		Success:          true,
		NotificationSent: true,
	}
	require.NoError(t, db.CreateRun(ctx, run))
	assert.NotZero(t, run.ID, "id assigned on insert")
	assert.False(t, run.CrawledAt.IsZero(), "timestamp defaulted")
}

func TestDB_CreateRunFailure(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	target := sampleTarget()
	require.NoError(t, db.CreateTarget(ctx, target))

	run := &CrawlRun{
		TargetID:     target.ID,
		Success:      false,
		ErrorMessage: sql.NullString{String: "fetch timed out after 10s", Valid: true},
	}
	require.NoError(t, db.CreateRun(ctx, run))

	runs, err := db.ListRuns(ctx, target.ID, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].Success)
	assert.Equal(t, "fetch timed out after 10s", runs[0].ErrorMessage.String)
	assert.False(t, runs[0].CrawledValue.Valid)
}

func TestDB_ListRunsLimitAndOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	target := sampleTarget()
	require.NoError(t, db.CreateTarget(ctx, target))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 8; i++ {
		run := &CrawlRun{
			TargetID:  target.ID,
			CrawledAt: base.Add(time.Duration(i) * time.Minute),
			Success:   true,
		}
		require.NoError(t, db.CreateRun(ctx, run))
	}

	// default limit is 5, newest first
	runs, err := db.ListRuns(ctx, target.ID, 0)
	require.NoError(t, err)
	require.Len(t, runs, 5)
	for i := 1; i < len(runs); i++ {
		assert.False(t, runs[i].CrawledAt.After(runs[i-1].CrawledAt), "newest first ordering")
	}

	runs, err = db.ListRuns(ctx, target.ID, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestDB_ListRunsEmptyTarget(t *testing.T) {
	db := setupTestDB(t)

	runs, err := db.ListRuns(context.Background(), "no-such-id", 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
