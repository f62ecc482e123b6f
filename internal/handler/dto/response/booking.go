package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"salon-booking/internal/usecase/readmodel"
)

type BookingResponse struct {
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
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromAppointmentView(rm *readmodel.AppointmentView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
