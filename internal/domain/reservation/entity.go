package reservation

import (
	"errors"
	"time"

	"salon-booking/internal/domain/payment"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrSlotInPast          = errors.New("time slot must start in the future")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrNoServiceLines      = errors.New("reservation needs at least one service")
	ErrReservationCanceled = errors.New("reservation is already canceled")
	ErrAlreadyValidated    = errors.New("reservation has already been validated")
	ErrNotValidated        = errors.New("reservation has not been validated yet")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidCorrection   = errors.New("corrected amount must be between 0 and the reservation total")
)

// Payment is the settlement recorded when staff validate the visit.
type Payment struct {
	Status        payment.Status
	Method        payment.Method
	AmountCents   int64
	DiscountCents int64
	GiftCardCents int64
	Discounts     []string
	Notes         string
	PaidAt        *time.Time
	ValidatedBy   *uuid.UUID
	ValidatedAt   *time.Time
}

type Reservation struct {
	id             uuid.UUID
	organizationID uuid.UUID
	clientID       uuid.UUID
	createdBy      uuid.UUID
	timeSlot       TimeSlot
	lines          []ServiceLine
	totalCents     int64
	status         Status
	payment        Payment
	note           Note
	version        int32
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReservation(
	organizationID, clientID, createdBy uuid.UUID,
	slot TimeSlot,
	lines []ServiceLine,
	note Note,
	status Status,
	now time.Time,
) (*Reservation, error) {
	if len(lines) == 0 {
		return nil, ErrNoServiceLines
	}
	if !status.IsOpen() {
		return nil, ErrInvalidStatus
	}

	var total int64
	for _, l := range lines {
		if l.priceCents < 0 {
			return nil, ErrNegativePrice
		}
		total += l.priceCents
	}

	return &Reservation{
		id:             uuid.New(),
		organizationID: organizationID,
		clientID:       clientID,
		createdBy:      createdBy,
		timeSlot:       slot,
		lines:          append([]ServiceLine(nil), lines...),
		totalCents:     total,
		status:         status,
		payment:        Payment{Status: payment.StatusUnpaid},
		note:           note,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructReservation(
	id, organizationID, clientID, createdBy uuid.UUID,
	timeSlot TimeSlot,
	lines []ServiceLine,
	totalCents int64,
	status Status,
	pay Payment,
	note Note,
	version int32,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		organizationID: organizationID,
		clientID:       clientID,
		createdBy:      createdBy,
		timeSlot:       timeSlot,
		lines:          lines,
		totalCents:     totalCents,
		status:         status,
		payment:        pay,
		note:           note,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ApplyValidation records the visit outcome. A reservation is validated once;
// later changes go through CorrectPayment.
func (r *Reservation) ApplyValidation(o payment.Outcome, validatedBy uuid.UUID, now time.Time) error {
	switch {
	case r.status == StatusCanceled:
		return ErrReservationCanceled
	case r.status.IsValidated():
		return ErrAlreadyValidated
	}

	switch o.Visit {
	case payment.VisitCompleted:
		r.status = StatusCompleted
	case payment.VisitNoShow:
		r.status = StatusNoShow
	default:
		return ErrInvalidStatus
	}

	p := Payment{
		Status:        o.PaymentStatus,
		Method:        o.Method,
		AmountCents:   o.AmountCents,
		DiscountCents: o.Breakdown.DiscountCents,
		GiftCardCents: o.Breakdown.GiftCardUsedCents,
		Discounts:     o.Breakdown.Kinds(),
		Notes:         o.Notes(),
		ValidatedBy:   &validatedBy,
		ValidatedAt:   &now,
	}
	if o.PaymentStatus == payment.StatusPaid || o.PaymentStatus == payment.StatusPartial {
		p.PaidAt = &now
	}
	r.payment = p
	r.updatedAt = now
	return nil
}

// CorrectPayment overrides the collected amount of a validated reservation.
// The payment status follows from the visit and the new amount.
func (r *Reservation) CorrectPayment(amountCents int64, method payment.Method, notes string, now time.Time) error {
	if !r.status.IsValidated() {
		return ErrNotValidated
	}
	if amountCents < 0 || amountCents > r.totalCents {
		return ErrInvalidCorrection
	}
	if amountCents > 0 && method == payment.MethodNone {
		return payment.ErrMethodRequired
	}

	switch {
	case r.status == StatusNoShow && amountCents > 0:
		r.payment.Status = payment.StatusPartial
	case r.status == StatusNoShow:
		r.payment.Status = payment.StatusNoShow
	case amountCents == 0 && r.payment.GiftCardCents == 0:
		r.payment.Status = payment.StatusUnpaid
	default:
		r.payment.Status = payment.StatusPaid
	}

	r.payment.AmountCents = amountCents
	r.payment.Method = method
	if notes != "" {
		r.payment.Notes = notes
	}
	if amountCents > 0 && r.payment.PaidAt == nil {
		r.payment.PaidAt = &now
	}
	r.updatedAt = now
	return nil
}

func (r *Reservation) Confirm(now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidStatus
	}
	r.status = StatusConfirmed
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	switch {
	case r.status == StatusCanceled:
		return ErrReservationCanceled
	case r.status.IsValidated():
		return ErrAlreadyValidated
	}
	r.status = StatusCanceled
	r.updatedAt = now
	return nil
}

func (r *Reservation) IndividualServiceCount() int {
	n := 0
	for _, l := range r.lines {
		if !l.packageSession {
			n++
		}
	}
	return n
}

func (r *Reservation) PackageSessionCount() int {
	return len(r.lines) - r.IndividualServiceCount()
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) OrganizationID() uuid.UUID { return r.organizationID }
func (r *Reservation) ClientID() uuid.UUID       { return r.clientID }
func (r *Reservation) CreatedBy() uuid.UUID      { return r.createdBy }
func (r *Reservation) TimeSlot() TimeSlot        { return r.timeSlot }
func (r *Reservation) Lines() []ServiceLine      { return r.lines }
func (r *Reservation) TotalCents() int64         { return r.totalCents }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) Payment() Payment          { return r.payment }
func (r *Reservation) Note() Note                { return r.note }
func (r *Reservation) Version() int32            { return r.version }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
