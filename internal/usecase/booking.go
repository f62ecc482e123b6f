package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/commission"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/cache"
	"salon-booking/internal/infra/notify"
	"salon-booking/internal/infra/payment"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/timegrid"
	"salon-booking/internal/usecase/readmodel"
)

type BookingRepository interface {
	ExistsActive(ctx context.Context, barbershopID uuid.UUID, date, timeOfDay string) (bool, error)
	CreateBooking(ctx context.Context, a *appointment.Appointment, cm *commission.Entry, now time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentView, error)
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) error
}

type CustomerWriter interface {
	Upsert(ctx context.Context, name, phone string) (uuid.UUID, error)
}

type ServiceReader interface {
	FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceView, error)
}

type CreateBookingInput struct {
	BarbershopID   uuid.UUID
	CustomerName   string
	CustomerPhone  string
	ServiceID      uuid.UUID
	ProfessionalID *uuid.UUID
	Date           string
	Time           string
	ChargeRef      *string
}

type BookingUsecase interface {
	Create(ctx context.Context, input CreateBookingInput) (*readmodel.AppointmentView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type bookingInteractor struct {
	bookings  BookingRepository
	customers CustomerWriter
	services  ServiceReader
	refunds   payment.RefundProvider
	notifier  notify.Notifier
	cache     *cache.Cache
	grid      timegrid.Grid
	clock     clock.Clock
}

func NewBookingUsecase(
	bookings BookingRepository,
	customers CustomerWriter,
	services ServiceReader,
	refunds payment.RefundProvider,
	notifier notify.Notifier,
	c *cache.Cache,
	grid timegrid.Grid,
	clk clock.Clock,
) BookingUsecase {
	return &bookingInteractor{
		bookings:  bookings,
		customers: customers,
		services:  services,
		refunds:   refunds,
		notifier:  notifier,
		cache:     c,
		grid:      grid,
		clock:     clk,
	}
}

func (u *bookingInteractor) Create(ctx context.Context, input CreateBookingInput) (*readmodel.AppointmentView, error) {
	date, err := timegrid.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := timegrid.ParseTimeOfDay(input.Time)
	if err != nil {
		return nil, err
	}
	if !u.grid.Contains(timeOfDay) {
		return nil, errs.Mark(errs.New("time is not on the slot grid"), errs.ErrInvalidTime)
	}

	now := u.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, errs.Mark(errs.New("booking date is in the past"), errs.ErrPastDate)
	}

	svc, err := u.services.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, err
	}

	normalized := date.Format("2006-01-02")
	taken, err := u.bookings.ExistsActive(ctx, input.BarbershopID, normalized, timeOfDay)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.Mark(errs.New("slot already taken"), errs.ErrSlotTaken)
	}

	customerID, err := u.customers.Upsert(ctx, input.CustomerName, input.CustomerPhone)
	if err != nil {
		return nil, err
	}

	a := appointment.New(
		input.BarbershopID, customerID, input.ServiceID,
		input.ProfessionalID, date, timeOfDay, input.ChargeRef,
	)

	var entry *commission.Entry
	if input.ProfessionalID != nil {
		entry = commission.NewEntry(a.ID(), *input.ProfessionalID, svc.PriceCents, svc.CommissionRate, date)
	}

	if err := u.bookings.CreateBooking(ctx, a, entry, now); err != nil {
		// The pre-check can lose a race; the unique index is the final word.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrSlotTaken)
		}
		return nil, err
	}

	u.cache.Invalidate(ctx, availabilityCacheKey(input.BarbershopID, normalized))

	view, err := u.bookings.FindByID(ctx, a.ID())
	if err != nil {
		return nil, err
	}

	u.notifier.BookingCreated(notify.BookingEvent{
		BookingID:    view.ID.String(),
		BarbershopID: view.BarbershopID.String(),
		ServiceName:  view.ServiceName,
		CustomerName: view.CustomerName,
		Date:         view.Date,
		Time:         view.Time,
	})

	return view, nil
}

// Cancel refunds first and releases the slot only on refund success, so an
// appointment is never freed while the customer's money is still captured.
func (u *bookingInteractor) Cancel(ctx context.Context, id uuid.UUID) error {
	view, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return err
	}
	if view.Status == string(appointment.StatusCancelled) {
		return errs.Mark(errs.New("booking already cancelled"), errs.ErrAlreadyCancelled)
	}

	if view.ChargeRef != nil && *view.ChargeRef != "" {
		if err := u.refunds.Refund(ctx, *view.ChargeRef); err != nil {
			return errs.Mark(err, errs.ErrRefundFailed)
		}
	}

	if err := u.bookings.Cancel(ctx, id, u.clock.Now()); err != nil {
		return err
	}

	u.cache.Invalidate(ctx, availabilityCacheKey(view.BarbershopID, view.Date))

	u.notifier.BookingCancelled(notify.BookingEvent{
		BookingID:    view.ID.String(),
		BarbershopID: view.BarbershopID.String(),
		ServiceName:  view.ServiceName,
		CustomerName: view.CustomerName,
		Date:         view.Date,
		Time:         view.Time,
	})

	return nil
}
