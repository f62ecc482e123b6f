package request

import "github.com/google/uuid"

type AvailabilityRequest struct {
	BarbershopID uuid.UUID `json:"barbershop_id" binding:"required"`
	Date         string    `json:"date" binding:"required"`
}
