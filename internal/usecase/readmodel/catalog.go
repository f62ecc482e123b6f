package readmodel

import (
	"github.com/google/uuid"
)

type ServiceView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PriceCents     int64     `json:"price_cents"`
	DurationMin    int32     `json:"duration_min"`
	CommissionRate float64   `json:"commission_rate"`
}

type EmployeeView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Position string    `json:"position"`
}
