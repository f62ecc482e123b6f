//go:build unit

package commission_test

import (
	"testing"

	"salon-booking/internal/domain/commission"

	"github.com/stretchr/testify/assert"
)

func TestAmountCents(t *testing.T) {
	assert.Equal(t, int64(1500), commission.AmountCents(10000, 15))
	assert.Equal(t, int64(0), commission.AmountCents(0, 15))
	assert.Equal(t, int64(0), commission.AmountCents(10000, 0))
	assert.Equal(t, int64(0), commission.AmountCents(-500, 15))
	// fractional cents truncate
	assert.Equal(t, int64(333), commission.AmountCents(999, 33.4))
}
