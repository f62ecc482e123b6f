package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-booking/internal/infra"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Upsert finds or creates a customer by phone number. An existing customer
// keeps their stored name unless the incoming one is non-empty.
func (r *CustomerRepository) Upsert(ctx context.Context, name, phone string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO customers (id, name, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (phone) DO UPDATE
		SET name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE customers.name END
		RETURNING id
	`, uuid.New(), name, phone).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}
