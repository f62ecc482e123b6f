package request

import "salon-booking/internal/usecase"

type UpdateServiceRequest struct {
	Name           string  `json:"name" binding:"required"`
	PriceCents     int64   `json:"price_cents" binding:"required,gt=0"`
	DurationMin    int32   `json:"duration_min" binding:"required,gt=0"`
	CommissionRate float64 `json:"commission_rate" binding:"gte=0,lte=100"`
}

func (r *UpdateServiceRequest) ToInput() usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		Name:           r.Name,
		PriceCents:     r.PriceCents,
		DurationMin:    r.DurationMin,
		CommissionRate: r.CommissionRate,
	}
}
