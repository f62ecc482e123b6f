//go:build unit

package cachekey_test

import (
	"testing"

	"salon-booking/internal/pkg/cachekey"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("no params returns namespace alone", func(t *testing.T) {
		assert.Equal(t, "services", cachekey.Build("services", nil))
		assert.Equal(t, "services", cachekey.Build("services", map[string]string{}))
	})

	t.Run("params joined in sorted key order", func(t *testing.T) {
		key := cachekey.Build("available_slots", map[string]string{
			"date":          "2026-08-31",
			"barbershop_id": "b1",
		})
		assert.Equal(t, "available_slots:barbershop_id:b1|date:2026-08-31", key)
	})

	t.Run("equivalent maps produce identical keys", func(t *testing.T) {
		a := cachekey.Build("ns", map[string]string{"x": "1", "y": "2", "z": "3"})
		b := cachekey.Build("ns", map[string]string{"z": "3", "x": "1", "y": "2"})
		assert.Equal(t, a, b)
	})
}
