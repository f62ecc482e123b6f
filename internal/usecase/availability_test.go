//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking/internal/infra/cache"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/timegrid"
	"salon-booking/internal/usecase"
)

func newTestGrid(t *testing.T) timegrid.Grid {
	t.Helper()
	grid, err := timegrid.New("08:00", "18:30", 30*time.Minute)
	require.NoError(t, err)
	return grid
}

func newTestCache() (*cache.Cache, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	return cache.New(cache.NewMemoryBackend(clk), nil), clk
}

type fakeOccupancy struct {
	times map[string][]string // date -> occupied times
	calls int
}

func (f *fakeOccupancy) OccupiedTimes(_ context.Context, _ uuid.UUID, date string) ([]string, error) {
	f.calls++
	return f.times[date], nil
}

type fakeShops struct {
	known map[uuid.UUID]bool
}

func (f *fakeShops) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()
	const date = "2026-09-01"

	newUsecase := func(occupancy *fakeOccupancy) usecase.AvailabilityUsecase {
		c, _ := newTestCache()
		shops := &fakeShops{known: map[uuid.UUID]bool{shopID: true}}
		return usecase.NewAvailabilityUsecase(occupancy, shops, c, newTestGrid(t), 5*time.Minute)
	}

	t.Run("empty day returns the full grid", func(t *testing.T) {
		u := newUsecase(&fakeOccupancy{})

		got, err := u.AvailableSlots(ctx, shopID, date)
		require.NoError(t, err)

		want := newTestGrid(t).Slots()
		assert.Len(t, got, 22)
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("occupied times drop out and order is preserved", func(t *testing.T) {
		u := newUsecase(&fakeOccupancy{times: map[string][]string{
			date: {"09:00", "09:30", "10:00"},
		}})

		got, err := u.AvailableSlots(ctx, shopID, date)
		require.NoError(t, err)

		assert.Len(t, got, 19)
		assert.NotContains(t, got, "09:00")
		assert.NotContains(t, got, "09:30")
		assert.NotContains(t, got, "10:00")
		assert.Equal(t, "08:00", got[0])
		assert.Equal(t, "08:30", got[1])
		assert.Equal(t, "10:30", got[2])
		assert.Equal(t, "18:30", got[len(got)-1])
	})

	t.Run("fully booked day returns no slots", func(t *testing.T) {
		u := newUsecase(&fakeOccupancy{times: map[string][]string{
			date: newTestGrid(t).Slots(),
		}})

		got, err := u.AvailableSlots(ctx, shopID, date)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown barbershop yields an empty list", func(t *testing.T) {
		c, _ := newTestCache()
		u := usecase.NewAvailabilityUsecase(
			&fakeOccupancy{}, &fakeShops{known: map[uuid.UUID]bool{}},
			c, newTestGrid(t), 5*time.Minute,
		)

		got, err := u.AvailableSlots(ctx, uuid.New(), date)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		u := newUsecase(&fakeOccupancy{})

		_, err := u.AvailableSlots(ctx, shopID, "01-09-2026")
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("second read within TTL is served from cache", func(t *testing.T) {
		occupancy := &fakeOccupancy{}
		u := newUsecase(occupancy)

		_, err := u.AvailableSlots(ctx, shopID, date)
		require.NoError(t, err)
		_, err = u.AvailableSlots(ctx, shopID, date)
		require.NoError(t, err)

		assert.Equal(t, 1, occupancy.calls)
	})
}
