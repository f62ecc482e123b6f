package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon-booking/internal/infra/cache"
	"salon-booking/internal/pkg/timegrid"
)

type OccupancyReader interface {
	OccupiedTimes(ctx context.Context, barbershopID uuid.UUID, date string) ([]string, error)
}

type BarbershopReader interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type AvailabilityUsecase interface {
	AvailableSlots(ctx context.Context, barbershopID uuid.UUID, date string) ([]string, error)
}

type availabilityInteractor struct {
	occupancy OccupancyReader
	shops     BarbershopReader
	cache     *cache.Cache
	grid      timegrid.Grid
	ttl       time.Duration
}

func NewAvailabilityUsecase(
	occupancy OccupancyReader,
	shops BarbershopReader,
	c *cache.Cache,
	grid timegrid.Grid,
	ttl time.Duration,
) AvailabilityUsecase {
	return &availabilityInteractor{
		occupancy: occupancy,
		shops:     shops,
		cache:     c,
		grid:      grid,
		ttl:       ttl,
	}
}

// AvailableSlots returns the free "HH:MM" slots for a barbershop on a date:
// the candidate grid minus every time held by a non-cancelled appointment. An
// unknown barbershop yields an empty list, not an error.
func (u *availabilityInteractor) AvailableSlots(ctx context.Context, barbershopID uuid.UUID, date string) ([]string, error) {
	parsed, err := timegrid.ParseDate(date)
	if err != nil {
		return nil, err
	}
	normalized := parsed.Format("2006-01-02")

	key := availabilityCacheKey(barbershopID, normalized)
	return cache.GetOrCompute(ctx, u.cache, key, u.ttl, func(ctx context.Context) ([]string, error) {
		exists, err := u.shops.Exists(ctx, barbershopID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return []string{}, nil
		}

		occupied, err := u.occupancy.OccupiedTimes(ctx, barbershopID, normalized)
		if err != nil {
			return nil, err
		}
		return u.grid.Subtract(occupied), nil
	})
}
