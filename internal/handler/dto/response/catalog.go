package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"salon-booking/internal/usecase/readmodel"
)

type ServiceResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PriceCents     int64     `json:"price_cents"`
	DurationMin    int32     `json:"duration_min"`
	CommissionRate float64   `json:"commission_rate"`
}

type EmployeeResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Position string    `json:"position"`
}

func FromServiceViews(rms []*readmodel.ServiceView) []*ServiceResponse {
	resp := make([]*ServiceResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}

func FromEmployeeViews(rms []*readmodel.EmployeeView) []*EmployeeResponse {
	resp := make([]*EmployeeResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}
