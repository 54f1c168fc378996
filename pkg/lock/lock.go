// Package lock provides Redis-backed mutual exclusion: a single named lock
// for the scheduler tick and a keyed manager for per-target exclusion.
// In-process fallbacks cover single-node deployments without Redis.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Unlock releases a held keyed lock
type Unlock func(ctx context.Context) error

// release deletes the key only when it still holds our token, so an expired
// lock re-acquired by another instance is never removed from under it
var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// extendScript bumps the TTL only while the key holds our token
var extendScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("pexpire", KEYS[1], ARGV[2])
	else
		return 0
	end
`)

// Config holds bounds for a named lock
type Config struct {
	TTL     time.Duration // at-most hold time, enforced by key expiry
	MinHold time.Duration // at-least hold time, keeps the key alive after release
}

// Lock is a non-blocking distributed lock on a fixed key
type Lock struct {
	client  *redis.Client
	key     string
	token   string
	ttl     time.Duration
	minHold time.Duration

	acquiredAt time.Time
}

// New creates a named lock. TTL defaults to 5 minutes, MinHold to zero.
func New(client *redis.Client, key string, cfg Config) *Lock {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	return &Lock{
		client:  client,
		key:     key,
		ttl:     cfg.TTL,
		minHold: cfg.MinHold,
	}
}

// TryAcquire attempts to take the lock without blocking. A miss means some
// other instance holds it and the caller should skip its turn.
func (l *Lock) TryAcquire(ctx context.Context) (bool, error) {
	token := uuid.New().String()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", l.key, err)
	}
	if ok {
		l.token = token
		l.acquiredAt = time.Now()
	}
	return ok, nil
}

// Release gives the lock back. When the hold was shorter than MinHold the key
// is left to expire after the remainder instead of being deleted, so rapid
// re-acquisition across instances cannot thrash.
func (l *Lock) Release(ctx context.Context) error {
	if held := time.Since(l.acquiredAt); l.minHold > 0 && held < l.minHold {
		remaining := l.minHold - held
		res, err := extendScript.Run(ctx, l.client, []string{l.key}, l.token, remaining.Milliseconds()).Int()
		if err != nil {
			return fmt.Errorf("hold lock %s: %w", l.key, err)
		}
		if res == 0 {
			return fmt.Errorf("lock %s no longer held", l.key)
		}
		return nil
	}

	res, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Int()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", l.key, err)
	}
	if res == 0 {
		return fmt.Errorf("lock %s no longer held", l.key)
	}
	return nil
}

// Extend prolongs the TTL of a held lock
func (l *Lock) Extend(ctx context.Context, d time.Duration) error {
	res, err := extendScript.Run(ctx, l.client, []string{l.key}, l.token, d.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("extend lock %s: %w", l.key, err)
	}
	if res == 0 {
		return fmt.Errorf("lock %s no longer held", l.key)
	}
	return nil
}

// Manager hands out short-lived locks on arbitrary keys, used for per-target
// execution exclusion
type Manager struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewManager creates a keyed lock manager. The TTL bounds how long a crashed
// worker can keep a target locked.
func NewManager(client *redis.Client, prefix string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Manager{client: client, prefix: prefix, ttl: ttl}
}

// TryLock attempts to take the keyed lock without blocking. On success the
// returned Unlock must be called when the protected work completes.
func (m *Manager) TryLock(ctx context.Context, key string) (Unlock, bool, error) {
	full := m.prefix + key
	token := uuid.New().String()

	ok, err := m.client.SetNX(ctx, full, token, m.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock %s: %w", full, err)
	}
	if !ok {
		return nil, false, nil
	}

	unlock := func(ctx context.Context) error {
		if _, err := releaseScript.Run(ctx, m.client, []string{full}, token).Int(); err != nil {
			return fmt.Errorf("release lock %s: %w", full, err)
		}
		return nil
	}
	return unlock, true, nil
}
