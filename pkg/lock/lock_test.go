package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestLock_MutualExclusion(t *testing.T) {
	_, client := redisClient(t)
	ctx := context.Background()

	first := New(client, "test:tick", Config{TTL: time.Minute})
	second := New(client, "test:tick", Config{TTL: time.Minute})

	ok, err := first.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "held lock cannot be taken")

	require.NoError(t, first.Release(ctx))

	ok, err = second.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "released lock is available")
}

func TestLock_TTLExpiry(t *testing.T) {
	mr, client := redisClient(t)
	ctx := context.Background()

	l := New(client, "test:tick", Config{TTL: time.Minute})
	ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(61 * time.Second)

	other := New(client, "test:tick", Config{TTL: time.Minute})
	ok, err = other.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "expired lock is available")

	// original holder lost the lock, release must fail rather than steal
	assert.Error(t, l.Release(ctx))
}

func TestLock_MinHold(t *testing.T) {
	mr, client := redisClient(t)
	ctx := context.Background()

	l := New(client, "test:tick", Config{TTL: 5 * time.Minute, MinHold: 30 * time.Second})
	ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// immediate release keeps the key alive for the remaining min hold
	require.NoError(t, l.Release(ctx))
	assert.True(t, mr.Exists("test:tick"), "key kept until min hold elapses")

	other := New(client, "test:tick", Config{TTL: 5 * time.Minute})
	ok, err = other.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "min hold blocks rapid re-acquisition")

	mr.FastForward(31 * time.Second)

	ok, err = other.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLock_Extend(t *testing.T) {
	mr, client := redisClient(t)
	ctx := context.Background()

	l := New(client, "test:tick", Config{TTL: time.Minute})
	ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, l.Extend(ctx, 5*time.Minute))

	mr.FastForward(2 * time.Minute)
	assert.True(t, mr.Exists("test:tick"), "extended past original TTL")
}

func TestManager_PerKeyExclusion(t *testing.T) {
	_, client := redisClient(t)
	ctx := context.Background()

	m := NewManager(client, "test:lock:", time.Minute)

	unlockA, ok, err := m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	require.True(t, ok)

	// same key blocked, different key free
	_, ok, err = m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	assert.False(t, ok)

	unlockB, ok, err := m.TryLock(ctx, "crawl:b")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, unlockB(ctx))

	require.NoError(t, unlockA(ctx))
	_, ok, err = m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestManager_UnlockOnlyOwnToken(t *testing.T) {
	mr, client := redisClient(t)
	ctx := context.Background()

	m := NewManager(client, "test:lock:", time.Minute)

	unlock, ok, err := m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	require.True(t, ok)

	// lock expires and another worker takes it
	mr.FastForward(2 * time.Minute)
	_, ok, err = m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	require.True(t, ok)

	// stale unlock must not remove the new holder's lock
	require.NoError(t, unlock(ctx))
	assert.True(t, mr.Exists("test:lock:crawl:a"))
}

func TestLocalLock(t *testing.T) {
	ctx := context.Background()
	l := NewLocal()

	ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Release(ctx))
	ok, err = l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalManager(t *testing.T) {
	ctx := context.Background()
	m := NewLocalManager()

	unlock, ok, err := m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = m.TryLock(ctx, "crawl:b")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, unlock(ctx))
	_, ok, err = m.TryLock(ctx, "crawl:a")
	require.NoError(t, err)
	assert.True(t, ok)
}
