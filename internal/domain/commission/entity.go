package commission

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// AmountCents computes a commission from a service price and a percentage
// rate, truncating fractional cents.
func AmountCents(servicePriceCents int64, rate float64) int64 {
	if servicePriceCents <= 0 || rate <= 0 {
		return 0
	}
	return int64(float64(servicePriceCents) * rate / 100.0)
}

// Entry is a commission earned by a professional on a single appointment.
// The amount is fixed at booking time so later price or rate changes never
// rewrite history.
type Entry struct {
	id                uuid.UUID
	appointmentID     uuid.UUID
	professionalID    uuid.UUID
	servicePriceCents int64
	rate              float64
	amountCents       int64
	period            string
	status            Status
}

func NewEntry(appointmentID, professionalID uuid.UUID, servicePriceCents int64, rate float64, date time.Time) *Entry {
	return &Entry{
		id:                uuid.New(),
		appointmentID:     appointmentID,
		professionalID:    professionalID,
		servicePriceCents: servicePriceCents,
		rate:              rate,
		amountCents:       AmountCents(servicePriceCents, rate),
		period:            date.Format("2006-01"),
		status:            StatusPending,
	}
}

func (e *Entry) ID() uuid.UUID             { return e.id }
func (e *Entry) AppointmentID() uuid.UUID  { return e.appointmentID }
func (e *Entry) ProfessionalID() uuid.UUID { return e.professionalID }
func (e *Entry) ServicePriceCents() int64  { return e.servicePriceCents }
func (e *Entry) Rate() float64             { return e.rate }
func (e *Entry) AmountCents() int64        { return e.amountCents }
func (e *Entry) Period() string            { return e.period }
func (e *Entry) Status() Status            { return e.status }
