package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CommissionView struct {
	ID                uuid.UUID  `json:"id"`
	ProfessionalID    uuid.UUID  `json:"professional_id"`
	ProfessionalName  string     `json:"professional_name"`
	AppointmentID     uuid.UUID  `json:"appointment_id"`
	ServiceName       string     `json:"service_name"`
	CustomerName      string     `json:"customer_name"`
	ServicePriceCents int64      `json:"service_price_cents"`
	Rate              float64    `json:"commission_rate"`
	AmountCents       int64      `json:"amount_cents"`
	Period            string     `json:"period"`
	Status            string     `json:"status"`
	PaidDate          *time.Time `json:"paid_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type CommissionSummary struct {
	TotalCents   int64   `json:"total_cents"`
	PaidCents    int64   `json:"paid_cents"`
	PendingCents int64   `json:"pending_cents"`
	Count        int     `json:"count"`
	AverageRate  float64 `json:"average_rate"`
}

type ProfessionalStats struct {
	ProfessionalID   uuid.UUID `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	TotalCents       int64     `json:"total_cents"`
	PaidCents        int64     `json:"paid_cents"`
	PendingCents     int64     `json:"pending_cents"`
	AppointmentCount int       `json:"appointment_count"`
	AverageRate      float64   `json:"average_rate"`
}

type CommissionReport struct {
	Commissions       []*CommissionView    `json:"commissions"`
	Summary           CommissionSummary    `json:"summary"`
	ProfessionalStats []*ProfessionalStats `json:"professional_stats"`
}
