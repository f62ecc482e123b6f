package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/readmodel"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) FindAllServices(ctx context.Context) ([]*readmodel.ServiceView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price_cents, duration_min, commission_rate
		FROM services
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query services", err)
	}
	defer rows.Close()

	var services []*readmodel.ServiceView
	for rows.Next() {
		var v readmodel.ServiceView
		if err := rows.Scan(&v.ID, &v.Name, &v.PriceCents, &v.DurationMin, &v.CommissionRate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		services = append(services, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	return services, nil
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceView, error) {
	var v readmodel.ServiceView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price_cents, duration_min, commission_rate
		FROM services
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.PriceCents, &v.DurationMin, &v.CommissionRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &v, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, id uuid.UUID, name string, priceCents int64, durationMin int32, commissionRate float64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE services
		SET name = $2, price_cents = $3, duration_min = $4, commission_rate = $5
		WHERE id = $1
	`, id, name, priceCents, durationMin, commissionRate)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindAllEmployees(ctx context.Context) ([]*readmodel.EmployeeView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, position
		FROM employees
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query employees", err)
	}
	defer rows.Close()

	var employees []*readmodel.EmployeeView
	for rows.Next() {
		var v readmodel.EmployeeView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan employee", err)
		}
		employees = append(employees, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read employees", err)
	}
	return employees, nil
}
