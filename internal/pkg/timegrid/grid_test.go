//go:build unit

package timegrid_test

import (
	"errors"
	"testing"
	"time"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/timegrid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSlots(t *testing.T) {
	t.Run("half-hourly grid spans open to close inclusive", func(t *testing.T) {
		g, err := timegrid.New("08:00", "18:30", 30*time.Minute)
		require.NoError(t, err)

		slots := g.Slots()
		assert.Len(t, slots, 22)
		assert.Equal(t, "08:00", slots[0])
		assert.Equal(t, "08:30", slots[1])
		assert.Equal(t, "18:30", slots[len(slots)-1])
	})

	t.Run("hourly grid", func(t *testing.T) {
		g, err := timegrid.New("09:00", "18:00", time.Hour)
		require.NoError(t, err)

		slots := g.Slots()
		assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"}, slots)
	})

	t.Run("rejects malformed bounds", func(t *testing.T) {
		_, err := timegrid.New("8am", "18:00", time.Hour)
		assert.Error(t, err)
	})

	t.Run("rejects open after close", func(t *testing.T) {
		_, err := timegrid.New("18:00", "09:00", time.Hour)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive step", func(t *testing.T) {
		_, err := timegrid.New("09:00", "18:00", 0)
		assert.Error(t, err)
	})
}

func TestGridSubtract(t *testing.T) {
	g, err := timegrid.New("09:00", "10:00", 30*time.Minute)
	require.NoError(t, err)

	t.Run("removes occupied slots preserving order", func(t *testing.T) {
		free := g.Subtract([]string{"09:30"})
		assert.Equal(t, []string{"09:00", "10:00"}, free)
	})

	t.Run("empty occupied returns full grid", func(t *testing.T) {
		assert.Equal(t, g.Slots(), g.Subtract(nil))
	})

	t.Run("off-grid occupied times are ignored", func(t *testing.T) {
		free := g.Subtract([]string{"09:15", "23:00"})
		assert.Equal(t, g.Slots(), free)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := timegrid.ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	_, err = timegrid.ParseTimeOfDay("930")
	assert.True(t, errors.Is(err, errs.ErrInvalidTime))
}

func TestParseDate(t *testing.T) {
	d, err := timegrid.ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	_, err = timegrid.ParseDate("31/08/2026")
	assert.True(t, errors.Is(err, errs.ErrInvalidDate))
}
