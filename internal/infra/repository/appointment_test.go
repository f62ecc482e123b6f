//go:build unit

package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DATE columns arrive in binary format under pgx's default exec mode, so the
// scan target for appointment_date must be a time.Time, never a string.
func TestAppointmentDateScanTarget(t *testing.T) {
	m := pgtype.NewMap()
	stored := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	buf, err := m.Encode(pgtype.DateOID, pgtype.BinaryFormatCode, stored, nil)
	require.NoError(t, err)

	var s string
	assert.Error(t, m.Scan(pgtype.DateOID, pgtype.BinaryFormatCode, buf, &s))

	var got time.Time
	require.NoError(t, m.Scan(pgtype.DateOID, pgtype.BinaryFormatCode, buf, &got))
	assert.Equal(t, "2026-09-01", got.Format(dateLayout))
}
