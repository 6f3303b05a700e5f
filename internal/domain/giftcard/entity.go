package giftcard

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("gift card amount must be positive")
	ErrCardExhausted   = errors.New("gift card balance is exhausted")
	ErrCardExpired     = errors.New("gift card has expired")
	ErrCardDisabled    = errors.New("gift card is disabled")
	ErrInvalidStatus   = errors.New("invalid gift card status")
	ErrExpiryInThePast = errors.New("gift card expiry must be in the future")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExhausted Status = "exhausted"
	StatusExpired   Status = "expired"
	StatusDisabled  Status = "disabled"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusExhausted, StatusExpired, StatusDisabled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

type GiftCard struct {
	id             uuid.UUID
	organizationID uuid.UUID
	code           Code
	initialCents   int64
	balanceCents   int64
	status         Status
	expiresAt      *time.Time
	recipientName  *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewGiftCard(organizationID uuid.UUID, code Code, amountCents int64, expiresAt *time.Time, recipientName *string, now time.Time) (*GiftCard, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return nil, ErrExpiryInThePast
	}
	return &GiftCard{
		id:             uuid.New(),
		organizationID: organizationID,
		code:           code,
		initialCents:   amountCents,
		balanceCents:   amountCents,
		status:         StatusActive,
		expiresAt:      expiresAt,
		recipientName:  recipientName,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructGiftCard(
	id, organizationID uuid.UUID,
	code Code,
	initialCents, balanceCents int64,
	status Status,
	expiresAt *time.Time,
	recipientName *string,
	createdAt, updatedAt time.Time,
) *GiftCard {
	return &GiftCard{
		id:             id,
		organizationID: organizationID,
		code:           code,
		initialCents:   initialCents,
		balanceCents:   balanceCents,
		status:         status,
		expiresAt:      expiresAt,
		recipientName:  recipientName,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Usable reports why the card cannot be redeemed at now, or nil.
func (g *GiftCard) Usable(now time.Time) error {
	switch g.status {
	case StatusDisabled:
		return ErrCardDisabled
	case StatusExpired:
		return ErrCardExpired
	case StatusExhausted:
		return ErrCardExhausted
	}
	if g.expiresAt != nil && !now.Before(*g.expiresAt) {
		return ErrCardExpired
	}
	if g.balanceCents <= 0 {
		return ErrCardExhausted
	}
	return nil
}

// AvailableCents is the redeemable balance at now.
func (g *GiftCard) AvailableCents(now time.Time) int64 {
	if g.Usable(now) != nil {
		return 0
	}
	return g.balanceCents
}

// Redeem takes up to amount from the balance and returns what was taken.
func (g *GiftCard) Redeem(amountCents int64, now time.Time) (int64, error) {
	if amountCents <= 0 {
		return 0, ErrInvalidAmount
	}
	if err := g.Usable(now); err != nil {
		return 0, err
	}
	used := min(amountCents, g.balanceCents)
	g.balanceCents -= used
	if g.balanceCents == 0 {
		g.status = StatusExhausted
	}
	g.updatedAt = now
	return used, nil
}

func (g *GiftCard) Disable(now time.Time) {
	g.status = StatusDisabled
	g.updatedAt = now
}

func (g *GiftCard) ID() uuid.UUID             { return g.id }
func (g *GiftCard) OrganizationID() uuid.UUID { return g.organizationID }
func (g *GiftCard) Code() Code                { return g.code }
func (g *GiftCard) InitialCents() int64       { return g.initialCents }
func (g *GiftCard) BalanceCents() int64       { return g.balanceCents }
func (g *GiftCard) Status() Status            { return g.status }
func (g *GiftCard) ExpiresAt() *time.Time     { return g.expiresAt }
func (g *GiftCard) RecipientName() *string    { return g.recipientName }
func (g *GiftCard) CreatedAt() time.Time      { return g.createdAt }
func (g *GiftCard) UpdatedAt() time.Time      { return g.updatedAt }
