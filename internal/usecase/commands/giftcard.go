package commands

import (
	"context"
	"strings"
	"time"

	"salon-booking/internal/domain/giftcard"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
)

var ErrGiftCardCodeTaken = errs.New("gift card code already exists")

type CreateGiftCardRequest struct {
	Code          *string
	AmountCents   int64
	ExpiresAt     *time.Time
	RecipientName *string
}

type GiftCardCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateGiftCardRequest) (*queries.GiftCardView, error)
}

type giftCardCommandsImpl struct {
	uow   shared.UnitOfWork
	cards queries.GiftCardReadStore
	clock clock.Clock
}

func NewGiftCardCommands(uow shared.UnitOfWork, cards queries.GiftCardReadStore, clk clock.Clock) GiftCardCommands {
	return &giftCardCommandsImpl{uow: uow, cards: cards, clock: clk}
}

func (uc *giftCardCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateGiftCardRequest) (*queries.GiftCardView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}

	code, err := giftCardCode(req.Code)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	var recipient *string
	if req.RecipientName != nil && strings.TrimSpace(*req.RecipientName) != "" {
		name := strings.TrimSpace(*req.RecipientName)
		recipient = &name
	}

	card, err := giftcard.NewGiftCard(actor.OrganizationID, code, req.AmountCents, req.ExpiresAt, recipient, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.GiftCards().Create(ctx, tx.DB(), card); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrGiftCardCodeTaken
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.cards.FindByID(ctx, card.ID())
}

func giftCardCode(raw *string) (giftcard.Code, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return giftcard.GenerateCode()
	}
	return giftcard.NewCode(strings.ToUpper(strings.TrimSpace(*raw)))
}
