package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/commission"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/readmodel"
)

const (
	pgUniqueViolation = "23505"

	dateLayout = "2006-01-02"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

// OccupiedTimes returns the start times of all non-cancelled appointments for
// a barbershop on a given date, in ascending order.
func (r *AppointmentRepository) OccupiedTimes(ctx context.Context, barbershopID uuid.UUID, date string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT appointment_time
		FROM appointments
		WHERE barbershop_id = $1
		  AND appointment_date = $2
		  AND status <> 'cancelled'
		ORDER BY appointment_time
	`, barbershopID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied times", err)
	}
	defer rows.Close()

	var times []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied time", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied times", err)
	}
	return times, nil
}

// ExistsActive reports whether a non-cancelled appointment already occupies
// the slot. This is the friendly pre-check; the partial unique index is the
// authoritative guard.
func (r *AppointmentRepository) ExistsActive(ctx context.Context, barbershopID uuid.UUID, date, timeOfDay string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE barbershop_id = $1
			  AND appointment_date = $2
			  AND appointment_time = $3
			  AND status <> 'cancelled'
		)
	`, barbershopID, date, timeOfDay).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return exists, nil
}

// CreateBooking inserts the appointment and, when present, its commission
// entry in one transaction. A violation of the partial unique index on
// (barbershop_id, appointment_date, appointment_time) WHERE status <>
// 'cancelled' surfaces as KindConflict.
func (r *AppointmentRepository) CreateBooking(ctx context.Context, a *appointment.Appointment, cm *commission.Entry, now time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO appointments (
			id, barbershop_id, customer_id, service_id, professional_id,
			appointment_date, appointment_time, status, charge_ref, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
	`,
		a.ID(), a.BarbershopID(), a.CustomerID(), a.ServiceID(), a.ProfessionalID(),
		a.Date(), a.TimeOfDay(), string(a.Status()), a.ChargeRef(), now,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return infra.WrapRepoErr("appointment slot already taken", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to insert appointment", err)
	}

	if cm != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO commissions (
				id, appointment_id, professional_id, service_price_cents,
				commission_rate, amount_cents, period, status, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			cm.ID(), cm.AppointmentID(), cm.ProfessionalID(), cm.ServicePriceCents(),
			cm.Rate(), cm.AmountCents(), cm.Period(), string(cm.Status()), now,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert commission", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit booking transaction", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentView, error) {
	var (
		v    readmodel.AppointmentView
		date time.Time
	)
	// appointment_date is a DATE column and arrives in binary format, so it
	// must land in a time.Time before it becomes the view's string form.
	err := r.pool.QueryRow(ctx, `
		SELECT a.id, a.barbershop_id, a.customer_id, c.name, a.service_id, s.name,
		       a.professional_id, a.appointment_date, a.appointment_time, a.status,
		       a.charge_ref, a.created_at, a.updated_at
		FROM appointments a
		JOIN customers c ON c.id = a.customer_id
		JOIN services s ON s.id = a.service_id
		WHERE a.id = $1
	`, id).Scan(
		&v.ID, &v.BarbershopID, &v.CustomerID, &v.CustomerName, &v.ServiceID, &v.ServiceName,
		&v.ProfessionalID, &date, &v.Time, &v.Status,
		&v.ChargeRef, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	v.Date = date.Format(dateLayout)
	return &v, nil
}

func (r *AppointmentRepository) Cancel(ctx context.Context, id uuid.UUID, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET status = 'cancelled', updated_at = $2
		WHERE id = $1
	`, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
