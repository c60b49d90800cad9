package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLock(t *testing.T) (*RedisLock, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLock(client), mr
}

func TestRedisLockExclusive(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()
	key := StaffKey(uuid.New())

	token, ok, err := l.Lock(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("lock:"+key))

	_, ok, err = l.Lock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Unlock(ctx, key, token))
	assert.False(t, mr.Exists("lock:"+key))

	_, ok, err = l.Lock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLockUnlockKeepsForeignToken(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()

	_, ok, err := l.Lock(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, l.Unlock(ctx, "k", "someone-else"))
	assert.True(t, mr.Exists("lock:k"))
}

func TestRedisLockExpires(t *testing.T) {
	l, mr := newRedisLock(t)
	ctx := context.Background()

	_, ok, _ := l.Lock(ctx, "k", time.Second)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err := l.Lock(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAcquireWaitsForRelease(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	release, err := Acquire(ctx, l, "k", time.Minute, 5*time.Millisecond)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		r2, err := Acquire(ctx, l, "k", time.Minute, 5*time.Millisecond)
		if assert.NoError(t, err) {
			r2()
		}
	}()

	time.Sleep(20 * time.Millisecond)
	release()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second acquire never finished")
	}
}

func TestAcquireGivesUpOnContext(t *testing.T) {
	l := NewLocal()

	release, err := Acquire(context.Background(), l, "k", time.Minute, time.Millisecond)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = Acquire(ctx, l, "k", time.Minute, 5*time.Millisecond)
	assert.ErrorIs(t, err, ErrNotAcquired)
}
