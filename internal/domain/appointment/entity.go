package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid appointment status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Occupies reports whether an appointment in this status blocks its slot.
// Cancelled appointments free the slot again; every other status holds it.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

// Appointment binds a customer and service to a slot: a calendar date plus an
// "HH:MM" time of day. Dates and times are kept as separate values on purpose
// so slot comparison never involves timezone arithmetic.
type Appointment struct {
	id             uuid.UUID
	barbershopID   uuid.UUID
	customerID     uuid.UUID
	serviceID      uuid.UUID
	professionalID *uuid.UUID
	date           time.Time
	timeOfDay      string
	status         Status
	chargeRef      *string
}

func New(
	barbershopID, customerID, serviceID uuid.UUID,
	professionalID *uuid.UUID,
	date time.Time,
	timeOfDay string,
	chargeRef *string,
) *Appointment {
	return &Appointment{
		id:             uuid.New(),
		barbershopID:   barbershopID,
		customerID:     customerID,
		serviceID:      serviceID,
		professionalID: professionalID,
		date:           date,
		timeOfDay:      timeOfDay,
		status:         StatusConfirmed,
		chargeRef:      chargeRef,
	}
}

func (a *Appointment) ID() uuid.UUID              { return a.id }
func (a *Appointment) BarbershopID() uuid.UUID    { return a.barbershopID }
func (a *Appointment) CustomerID() uuid.UUID      { return a.customerID }
func (a *Appointment) ServiceID() uuid.UUID       { return a.serviceID }
func (a *Appointment) ProfessionalID() *uuid.UUID { return a.professionalID }
func (a *Appointment) Date() time.Time            { return a.date }
func (a *Appointment) TimeOfDay() string          { return a.timeOfDay }
func (a *Appointment) Status() Status             { return a.status }
func (a *Appointment) ChargeRef() *string         { return a.chargeRef }
