package response

import "github.com/google/uuid"

type AvailabilityResponse struct {
	BarbershopID uuid.UUID `json:"barbershop_id"`
	Date         string    `json:"date"`
	Slots        []string  `json:"available_time_slots"`
}

func NewAvailabilityResponse(barbershopID uuid.UUID, date string, slots []string) *AvailabilityResponse {
	if slots == nil {
		slots = []string{}
	}
	return &AvailabilityResponse{
		BarbershopID: barbershopID,
		Date:         date,
		Slots:        slots,
	}
}
