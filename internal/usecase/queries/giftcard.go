package queries

import (
	"context"
	"strings"
	"time"

	"salon-booking/internal/domain/giftcard"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type GiftCardReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GiftCardView, error)
	FindByCode(ctx context.Context, code string) (*GiftCardView, error)
	ListFirstPage(ctx context.Context, organizationID uuid.UUID, limit int32) ([]*GiftCardView, error)
	ListKeyset(ctx context.Context, organizationID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*GiftCardView, error)
}

type GiftCardQREncoder interface {
	GiftCardPNG(code string) ([]byte, error)
}

type GiftCardQueries interface {
	// Verify is public and reports unusable cards through GiftCardCheck.Message.
	Verify(ctx context.Context, code string) (*GiftCardCheck, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*GiftCardView, error)
	List(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*GiftCardView, *Cursor, error)
	QRCode(ctx context.Context, actor shared.Actor, id uuid.UUID) (*GiftCardQRCode, error)
}

type giftCardQueriesImpl struct {
	repo  GiftCardReadStore
	qr    GiftCardQREncoder
	clock clock.Clock
}

func NewGiftCardQueries(repo GiftCardReadStore, qr GiftCardQREncoder, clock clock.Clock) GiftCardQueries {
	return &giftCardQueriesImpl{repo: repo, qr: qr, clock: clock}
}

func (q *giftCardQueriesImpl) Verify(ctx context.Context, code string) (*GiftCardCheck, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := giftcard.NewCode(code); err != nil {
		return nil, ErrGiftCardNotFound
	}

	card, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGiftCardNotFound
		}
		return nil, err
	}

	check := &GiftCardCheck{
		Code:         card.Code,
		BalanceCents: card.BalanceCents,
		Status:       card.Status,
		ExpiresAt:    card.ExpiresAt,
		Usable:       true,
	}
	if msg := unusableMessage(card, q.clock.Now()); msg != "" {
		check.Usable = false
		check.Message = msg
	}
	return check, nil
}

func unusableMessage(card *GiftCardView, now time.Time) string {
	switch {
	case card.Status == string(giftcard.StatusDisabled):
		return "This gift card has been disabled."
	case card.Status == string(giftcard.StatusExpired), card.ExpiresAt != nil && !now.Before(*card.ExpiresAt):
		return "This gift card has expired."
	case card.Status == string(giftcard.StatusExhausted), card.BalanceCents <= 0:
		return "This gift card has no remaining balance."
	default:
		return ""
	}
}

func (q *giftCardQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*GiftCardView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}

	card, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGiftCardNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(card.OrganizationID) {
		return nil, ErrGiftCardNotFound
	}
	return card, nil
}

func (q *giftCardQueriesImpl) List(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*GiftCardView, *Cursor, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, nil, ErrAccessDenied
	}

	return page(cursor, limit,
		func(limit int32) ([]*GiftCardView, error) {
			return q.repo.ListFirstPage(ctx, actor.OrganizationID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*GiftCardView, error) {
			return q.repo.ListKeyset(ctx, actor.OrganizationID, lastCreatedAt, lastID, limit)
		},
		func(g *GiftCardView) (time.Time, uuid.UUID) { return g.CreatedAt, g.ID },
	)
}

func (q *giftCardQueriesImpl) QRCode(ctx context.Context, actor shared.Actor, id uuid.UUID) (*GiftCardQRCode, error) {
	card, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	png, err := q.qr.GiftCardPNG(card.Code)
	if err != nil {
		return nil, err
	}
	return &GiftCardQRCode{Code: card.Code, PNG: png}, nil
}
