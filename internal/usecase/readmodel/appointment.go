package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AppointmentView struct {
	ID             uuid.UUID  `json:"id"`
	BarbershopID   uuid.UUID  `json:"barbershop_id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	CustomerName   string     `json:"customer_name"`
	ServiceID      uuid.UUID  `json:"service_id"`
	ServiceName    string     `json:"service_name"`
	ProfessionalID *uuid.UUID `json:"professional_id,omitempty"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Status         string     `json:"status"`
	ChargeRef      *string    `json:"charge_ref,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
