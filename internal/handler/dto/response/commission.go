package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"salon-booking/internal/usecase/readmodel"
)

type CommissionResponse struct {
	ID               uuid.UUID  `json:"id"`
	ProfessionalID   uuid.UUID  `json:"professional_id"`
	ProfessionalName string     `json:"professional_name"`
	ServiceName      string     `json:"service_name"`
	CustomerName     string     `json:"customer_name"`
	AmountCents      int64      `json:"amount_cents"`
	Rate             float64    `json:"commission_rate"`
	Period           string     `json:"period"`
	Status           string     `json:"status"`
	PaidDate         *time.Time `json:"paid_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type CommissionSummaryResponse struct {
	TotalCents   int64   `json:"total_cents"`
	PaidCents    int64   `json:"paid_cents"`
	PendingCents int64   `json:"pending_cents"`
	Count        int     `json:"count"`
	AverageRate  float64 `json:"average_rate"`
}

type ProfessionalStatsResponse struct {
	ProfessionalID   uuid.UUID `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	TotalCents       int64     `json:"total_cents"`
	PaidCents        int64     `json:"paid_cents"`
	PendingCents     int64     `json:"pending_cents"`
	AppointmentCount int       `json:"appointment_count"`
	AverageRate      float64   `json:"average_rate"`
}

type CommissionReportResponse struct {
	Commissions       []*CommissionResponse        `json:"commissions"`
	Summary           CommissionSummaryResponse    `json:"summary"`
	ProfessionalStats []*ProfessionalStatsResponse `json:"professional_stats"`
}

func FromCommissionReport(rm *readmodel.CommissionReport) *CommissionReportResponse {
	resp := &CommissionReportResponse{
		Commissions:       make([]*CommissionResponse, 0, len(rm.Commissions)),
		ProfessionalStats: make([]*ProfessionalStatsResponse, 0, len(rm.ProfessionalStats)),
	}
	_ = copier.Copy(&resp.Commissions, &rm.Commissions)
	_ = copier.Copy(&resp.Summary, &rm.Summary)
	_ = copier.Copy(&resp.ProfessionalStats, &rm.ProfessionalStats)
	return resp
}
