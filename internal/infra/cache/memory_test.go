//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/infra/cache"
	"salon-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("get returns stored value before expiry", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		b := cache.NewMemoryBackend(clk)

		require.NoError(t, b.Set(ctx, "k", []byte("v"), time.Minute))

		value, found, err := b.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("v"), value)
	})

	t.Run("entry expires after TTL", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		b := cache.NewMemoryBackend(clk)

		require.NoError(t, b.Set(ctx, "k", []byte("v"), time.Second))
		clk.Advance(2 * time.Second)

		_, found, err := b.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete removes entry and missing key is a no-op", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		b := cache.NewMemoryBackend(clk)

		require.NoError(t, b.Set(ctx, "k", []byte("v"), time.Minute))
		require.NoError(t, b.Delete(ctx, "k"))
		require.NoError(t, b.Delete(ctx, "k"))
		require.NoError(t, b.Delete(ctx, "never-existed"))

		_, found, err := b.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("cleanup drops only expired entries", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		b := cache.NewMemoryBackend(clk)

		require.NoError(t, b.Set(ctx, "short", []byte("1"), time.Second))
		require.NoError(t, b.Set(ctx, "long", []byte("2"), time.Hour))
		clk.Advance(2 * time.Second)

		b.CleanupExpired()
		assert.Equal(t, 1, b.Len())

		_, found, err := b.Get(ctx, "long")
		require.NoError(t, err)
		assert.True(t, found)
	})
}
