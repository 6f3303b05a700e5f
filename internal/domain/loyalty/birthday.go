package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrBirthdayDiscountUsed = errors.New("birthday discount already used this year")

// BirthdayDiscount is granted once per client per calendar year.
type BirthdayDiscount struct {
	id            uuid.UUID
	clientID      uuid.UUID
	year          int
	grantedAt     time.Time
	usedAt        *time.Time
	reservationID *uuid.UUID
}

func GrantBirthdayDiscount(clientID uuid.UUID, now time.Time) *BirthdayDiscount {
	return &BirthdayDiscount{
		id:        uuid.New(),
		clientID:  clientID,
		year:      now.Year(),
		grantedAt: now,
	}
}

func ReconstructBirthdayDiscount(id, clientID uuid.UUID, year int, grantedAt time.Time, usedAt *time.Time, reservationID *uuid.UUID) *BirthdayDiscount {
	return &BirthdayDiscount{
		id:            id,
		clientID:      clientID,
		year:          year,
		grantedAt:     grantedAt,
		usedAt:        usedAt,
		reservationID: reservationID,
	}
}

// BirthdayEligible requires the birth month to be the current month and an
// unused record for the current year. d may be nil when nothing was granted.
func BirthdayEligible(birthDate *time.Time, d *BirthdayDiscount, now time.Time) bool {
	if birthDate == nil || birthDate.Month() != now.Month() {
		return false
	}
	return d != nil && d.year == now.Year() && d.usedAt == nil
}

func (d *BirthdayDiscount) Use(reservationID uuid.UUID, now time.Time) error {
	if d.usedAt != nil {
		return ErrBirthdayDiscountUsed
	}
	d.usedAt = &now
	d.reservationID = &reservationID
	return nil
}

func (d *BirthdayDiscount) ID() uuid.UUID             { return d.id }
func (d *BirthdayDiscount) ClientID() uuid.UUID       { return d.clientID }
func (d *BirthdayDiscount) Year() int                 { return d.year }
func (d *BirthdayDiscount) GrantedAt() time.Time      { return d.grantedAt }
func (d *BirthdayDiscount) UsedAt() *time.Time        { return d.usedAt }
func (d *BirthdayDiscount) ReservationID() *uuid.UUID { return d.reservationID }
func (d *BirthdayDiscount) IsUsed() bool              { return d.usedAt != nil }
