//go:build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T, limit int, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLimiter(client, "test", limit, window), s
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows requests up to the limit", func(t *testing.T) {
		l, _ := newRedisLimiter(t, 3, time.Minute)
		fixed := time.Date(2025, 5, 1, 12, 0, 10, 0, time.UTC)
		l.now = func() time.Time { return fixed }

		for i := 3; i > 0; i-- {
			d, err := l.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, d.Allowed)
			assert.Equal(t, i-1, d.Remaining)
		}

		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 50*time.Second, d.RetryAfter)
	})

	t.Run("keys are counted separately", func(t *testing.T) {
		l, _ := newRedisLimiter(t, 1, time.Minute)

		d, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, d.Allowed)

		d, err = l.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("next window starts a fresh count", func(t *testing.T) {
		l, _ := newRedisLimiter(t, 1, time.Minute)
		current := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return current }

		d, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		require.True(t, d.Allowed)

		d, err = l.Allow(ctx, "ip")
		require.NoError(t, err)
		require.False(t, d.Allowed)

		current = current.Add(time.Minute)
		d, err = l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("counter keys expire with the window", func(t *testing.T) {
		l, s := newRedisLimiter(t, 5, time.Minute)

		_, err := l.Allow(ctx, "ip")
		require.NoError(t, err)

		keys := s.Keys()
		require.Len(t, keys, 1)
		assert.Equal(t, time.Minute, s.TTL(keys[0]))
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		l, s := newRedisLimiter(t, 5, time.Minute)
		s.Close()

		_, err := l.Allow(ctx, "ip")
		assert.Error(t, err)
	})
}

func TestLocalLimiter(t *testing.T) {
	ctx := context.Background()

	l := NewLocalLimiter(2, time.Minute)

	for range 2 {
		d, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))

	d, err = l.Allow(ctx, "other")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLocalLimiter_EvictsIdleKeys(t *testing.T) {
	ctx := context.Background()

	l := NewLocalLimiter(2, time.Minute)
	clock := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := l.Allow(ctx, ip)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, l.Len())

	clock = clock.Add(30 * time.Second)
	_, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len(), "nothing is idle for a full window yet")

	clock = clock.Add(45 * time.Second)
	_, err = l.Allow(ctx, "10.0.0.4")
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len(), "keys unseen for a window are dropped")

	// A recently seen key keeps its partly spent bucket.
	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}
