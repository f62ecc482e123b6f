package usecase

import (
	"github.com/google/uuid"

	"salon-booking/internal/pkg/cachekey"
)

const (
	servicesCacheKey  = "services:all"
	employeesCacheKey = "employees:all"
)

// availabilityCacheKey is shared by the availability read path and the
// booking write paths so invalidation always hits the key reads use.
func availabilityCacheKey(barbershopID uuid.UUID, date string) string {
	return cachekey.Build("available_slots", map[string]string{
		"barbershop_id": barbershopID.String(),
		"date":          date,
	})
}
