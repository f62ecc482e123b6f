package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-booking/internal/infra"
)

type BarbershopRepository struct {
	pool *pgxpool.Pool
}

func NewBarbershopRepository(pool *pgxpool.Pool) *BarbershopRepository {
	return &BarbershopRepository{pool: pool}
}

func (r *BarbershopRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM barbershops WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check barbershop existence", err)
	}
	return exists, nil
}
