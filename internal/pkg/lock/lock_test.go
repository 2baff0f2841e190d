package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutexLocker_BlocksUntilReleased(t *testing.T) {
	l := NewMutexLocker()

	ok, err := l.Lock(context.Background(), "timeline", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	acquired := make(chan struct{})
	go func() {
		ok, err := l.Lock(context.Background(), "timeline", time.Second)
		assert.NoError(t, err)
		assert.True(t, ok)
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock acquired while the first still holds the key")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, l.Unlock(context.Background(), "timeline"))

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the released lock")
	}
}

func TestMutexLocker_ContextCancellation(t *testing.T) {
	l := NewMutexLocker()

	ok, err := l.Lock(context.Background(), "timeline", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ok, err = l.Lock(ctx, "timeline", time.Second)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMutexLocker_IndependentKeys(t *testing.T) {
	l := NewMutexLocker()

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			ok, err := l.Lock(ctx, key, time.Second)
			assert.NoError(t, err)
			assert.True(t, ok)
		}(key)
	}
	wg.Wait()
}

func TestMutexLocker_UnlockWithoutLockIsNoop(t *testing.T) {
	l := NewMutexLocker()
	assert.NoError(t, l.Unlock(context.Background(), "never-locked"))
}
