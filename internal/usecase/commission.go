package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"salon-booking/internal/domain/commission"
	"salon-booking/internal/usecase/readmodel"
)

// CommissionFilter narrows the report. Zero values mean "no filter"; Period
// is a "YYYY-MM" month.
type CommissionFilter struct {
	ProfessionalID *uuid.UUID
	Period         string
	Status         string
}

type CommissionReader interface {
	FindFiltered(ctx context.Context, filter CommissionFilter) ([]*readmodel.CommissionView, error)
}

type CommissionUsecase interface {
	ListCommissions(ctx context.Context, filter CommissionFilter) (*readmodel.CommissionReport, error)
}

type commissionInteractor struct {
	reader CommissionReader
}

func NewCommissionUsecase(reader CommissionReader) CommissionUsecase {
	return &commissionInteractor{reader: reader}
}

// ListCommissions returns the filtered entries with an overall summary and a
// per-professional breakdown sorted by total earned, highest first.
func (u *commissionInteractor) ListCommissions(ctx context.Context, filter CommissionFilter) (*readmodel.CommissionReport, error) {
	views, err := u.reader.FindFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &readmodel.CommissionReport{
		Commissions:       views,
		ProfessionalStats: []*readmodel.ProfessionalStats{},
	}
	if views == nil {
		report.Commissions = []*readmodel.CommissionView{}
	}

	byProfessional := make(map[uuid.UUID]*readmodel.ProfessionalStats)
	var rateSum float64
	for _, v := range views {
		report.Summary.TotalCents += v.AmountCents
		if v.Status == string(commission.StatusPaid) {
			report.Summary.PaidCents += v.AmountCents
		} else {
			report.Summary.PendingCents += v.AmountCents
		}
		report.Summary.Count++
		rateSum += v.Rate

		stats, ok := byProfessional[v.ProfessionalID]
		if !ok {
			stats = &readmodel.ProfessionalStats{
				ProfessionalID:   v.ProfessionalID,
				ProfessionalName: v.ProfessionalName,
			}
			byProfessional[v.ProfessionalID] = stats
			report.ProfessionalStats = append(report.ProfessionalStats, stats)
		}
		stats.TotalCents += v.AmountCents
		if v.Status == string(commission.StatusPaid) {
			stats.PaidCents += v.AmountCents
		} else {
			stats.PendingCents += v.AmountCents
		}
		stats.AppointmentCount++
		stats.AverageRate += v.Rate
	}

	if report.Summary.Count > 0 {
		report.Summary.AverageRate = rateSum / float64(report.Summary.Count)
	}
	for _, stats := range report.ProfessionalStats {
		stats.AverageRate /= float64(stats.AppointmentCount)
	}

	sort.SliceStable(report.ProfessionalStats, func(i, j int) bool {
		return report.ProfessionalStats[i].TotalCents > report.ProfessionalStats[j].TotalCents
	})

	return report, nil
}
