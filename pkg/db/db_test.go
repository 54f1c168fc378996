package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	}

	db, err := New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(tmpFile.Name())
	})

	return db
}

func sampleTarget() *Target {
	return &Target{
		URL:             "https://example.com/price",
		Selector:        "#price",
		CheckIntervalMs: 60000,
		AlertOnChange:   true,
		NotifyType:      NotifyEmail,
		Email:           "ops@example.com",
	}
}

func TestDB_InitSchema(t *testing.T) {
	db := setupTestDB(t)

	// schema should already be initialized by New()
	var count int
	err := db.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('targets', 'crawl_runs', 'events')
	`)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDB_NewWithConnectionSettings(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "test-conn-*.db")
	require.NoError(t, err)
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	cfg := Config{
		DSN:             "file:" + tmpFile.Name() + "?mode=rwc",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
	}

	db, err := New(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping(context.Background()))
}

func TestDB_ForeignKeysEnabled(t *testing.T) {
	db := setupTestDB(t)

	var enabled int
	err := db.conn.Get(&enabled, "PRAGMA foreign_keys")
	require.NoError(t, err)
	assert.Equal(t, 1, enabled)
}
