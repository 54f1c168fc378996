package lock

import (
	"context"
	"sync"
)

// LocalLock is the single-instance stand-in for Lock: exclusion within one
// process only, which is all a deployment without Redis needs
type LocalLock struct {
	mu sync.Mutex
}

// NewLocal creates an in-process named lock
func NewLocal() *LocalLock {
	return &LocalLock{}
}

// TryAcquire takes the lock unless it is already held
func (l *LocalLock) TryAcquire(_ context.Context) (bool, error) {
	return l.mu.TryLock(), nil
}

// Release gives the lock back
func (l *LocalLock) Release(_ context.Context) error {
	l.mu.Unlock()
	return nil
}

// LocalManager is the in-process counterpart of Manager
type LocalManager struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalManager creates an in-process keyed lock manager
func NewLocalManager() *LocalManager {
	return &LocalManager{held: make(map[string]struct{})}
}

// TryLock takes the keyed lock unless it is already held
func (m *LocalManager) TryLock(_ context.Context, key string) (Unlock, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.held[key]; ok {
		return nil, false, nil
	}
	m.held[key] = struct{}{}

	unlock := func(context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.held, key)
		return nil
	}
	return unlock, true, nil
}
