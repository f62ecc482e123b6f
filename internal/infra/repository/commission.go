package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/readmodel"
)

type CommissionRepository struct {
	pool *pgxpool.Pool
}

func NewCommissionRepository(pool *pgxpool.Pool) *CommissionRepository {
	return &CommissionRepository{pool: pool}
}

func (r *CommissionRepository) FindFiltered(ctx context.Context, filter usecase.CommissionFilter) ([]*readmodel.CommissionView, error) {
	query := `
		SELECT cm.id, cm.professional_id, e.name, cm.appointment_id, s.name, c.name,
		       cm.service_price_cents, cm.commission_rate, cm.amount_cents,
		       cm.period, cm.status, cm.paid_date, cm.created_at
		FROM commissions cm
		JOIN employees e ON e.id = cm.professional_id
		JOIN appointments a ON a.id = cm.appointment_id
		JOIN services s ON s.id = a.service_id
		JOIN customers c ON c.id = a.customer_id
	`
	var (
		conds []string
		args  []any
	)
	if filter.ProfessionalID != nil {
		args = append(args, *filter.ProfessionalID)
		conds = append(conds, fmt.Sprintf("cm.professional_id = $%d", len(args)))
	}
	if filter.Period != "" {
		args = append(args, filter.Period)
		conds = append(conds, fmt.Sprintf("cm.period = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("cm.status = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY cm.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query commissions", err)
	}
	defer rows.Close()

	var views []*readmodel.CommissionView
	for rows.Next() {
		var v readmodel.CommissionView
		if err := rows.Scan(
			&v.ID, &v.ProfessionalID, &v.ProfessionalName, &v.AppointmentID, &v.ServiceName, &v.CustomerName,
			&v.ServicePriceCents, &v.Rate, &v.AmountCents,
			&v.Period, &v.Status, &v.PaidDate, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan commission", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read commissions", err)
	}
	return views, nil
}
