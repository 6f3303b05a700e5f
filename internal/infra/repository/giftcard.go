package repository

import (
	"context"
	"time"

	"salon-booking/internal/domain/giftcard"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GiftCardWriteQueries interface {
	CreateGiftCard(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGiftCardParams) error
	GetGiftCardByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GiftCards, error)
	UpdateGiftCardBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGiftCardBalanceParams) error
	CreateGiftCardTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGiftCardTransactionParams) error
	ExpireGiftCards(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type GiftCardRepository struct {
	queries GiftCardWriteQueries
	db      sqlc.DBTX
}

func NewGiftCardRepository(queries GiftCardWriteQueries, db sqlc.DBTX) *GiftCardRepository {
	return &GiftCardRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GiftCardRepository) Create(ctx context.Context, tx sqlc.DBTX, g *giftcard.GiftCard) error {
	if err := r.queries.CreateGiftCard(ctx, tx, converter.GiftCardToCreateParams(g)); err != nil {
		return infra.WrapRepoErr("failed to create gift card", err)
	}
	return nil
}

func (r *GiftCardRepository) FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code string) (*giftcard.GiftCard, error) {
	row, err := r.queries.GetGiftCardByCodeForUpdate(ctx, tx, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gift card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock gift card", err)
	}

	g, err := converter.GiftCardFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map gift card", err)
	}
	return g, nil
}

func (r *GiftCardRepository) SaveBalance(ctx context.Context, tx sqlc.DBTX, g *giftcard.GiftCard) error {
	err := r.queries.UpdateGiftCardBalance(ctx, tx, sqlc.UpdateGiftCardBalanceParams{
		BalanceCents: g.BalanceCents(),
		Status:       string(g.Status()),
		UpdatedAt:    pgconv.TimeToPgtype(g.UpdatedAt()),
		ID:           g.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save gift card balance", err)
	}
	return nil
}

func (r *GiftCardRepository) RecordTransaction(ctx context.Context, tx sqlc.DBTX, cardID uuid.UUID, reservationID *uuid.UUID, amountCents, balanceAfterCents int64, at time.Time) error {
	err := r.queries.CreateGiftCardTransaction(ctx, tx, sqlc.CreateGiftCardTransactionParams{
		ID:                uuid.New(),
		GiftCardID:        cardID,
		ReservationID:     pgconv.UUIDPtrToPgtype(reservationID),
		AmountCents:       amountCents,
		BalanceAfterCents: balanceAfterCents,
		CreatedAt:         pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record gift card transaction", err)
	}
	return nil
}

func (r *GiftCardRepository) ExpireDue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.ExpireGiftCards(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire gift cards", err)
	}
	return n, nil
}
