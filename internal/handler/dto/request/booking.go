package request

import (
	"github.com/google/uuid"

	"salon-booking/internal/usecase"
)

type CreateBookingRequest struct {
	BarbershopID   uuid.UUID  `json:"barbershop_id" binding:"required"`
	CustomerName   string     `json:"customer_name" binding:"required"`
	CustomerPhone  string     `json:"customer_phone" binding:"required"`
	ServiceID      uuid.UUID  `json:"service_id" binding:"required"`
	ProfessionalID *uuid.UUID `json:"professional_id"`
	Date           string     `json:"date" binding:"required"`
	Time           string     `json:"time" binding:"required"`
	ChargeRef      *string    `json:"charge_ref"`
}

func (r *CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		BarbershopID:   r.BarbershopID,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		ServiceID:      r.ServiceID,
		ProfessionalID: r.ProfessionalID,
		Date:           r.Date,
		Time:           r.Time,
		ChargeRef:      r.ChargeRef,
	}
}
