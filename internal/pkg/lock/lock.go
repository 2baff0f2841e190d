package lock

import (
	"context"
	"sync"
	"time"
)

// Locker serializes the check-then-insert critical section around a booking
// resource. Lock blocks until the key is free or ctx is done; it returns
// false only when the context expired before the lock could be taken.
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// MutexLocker is the in-process implementation, sufficient for a single
// instance owning the studio timeline. Waiters queue on a per-key channel.
type MutexLocker struct {
	mu   sync.Mutex
	keys map[string]chan struct{}
}

func NewMutexLocker() *MutexLocker {
	return &MutexLocker{keys: make(map[string]chan struct{})}
}

func (l *MutexLocker) sem(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.keys[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.keys[key] = ch
	}
	return ch
}

func (l *MutexLocker) Lock(ctx context.Context, key string, _ time.Duration) (bool, error) {
	select {
	case l.sem(key) <- struct{}{}:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (l *MutexLocker) Unlock(_ context.Context, key string) error {
	select {
	case <-l.sem(key):
	default:
	}
	return nil
}
