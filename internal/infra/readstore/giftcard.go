package readstore

import (
	"context"
	"time"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type GiftCardReadQueries interface {
	GetGiftCardByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GiftCards, error)
	GetGiftCardByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GiftCards, error)
	ListGiftCardsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGiftCardsFirstPageParams) ([]sqlc.GiftCards, error)
	ListGiftCardsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGiftCardsKeysetParams) ([]sqlc.GiftCards, error)
}

type GiftCardReadStore struct {
	queries GiftCardReadQueries
	db      sqlc.DBTX
}

func NewGiftCardReadStore(queries GiftCardReadQueries, db sqlc.DBTX) *GiftCardReadStore {
	return &GiftCardReadStore{queries: queries, db: db}
}

func (r *GiftCardReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GiftCardView, error) {
	row, err := r.queries.GetGiftCardByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gift card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get gift card", err)
	}
	return toGiftCardView(row), nil
}

func (r *GiftCardReadStore) FindByCode(ctx context.Context, code string) (*queries.GiftCardView, error) {
	row, err := r.queries.GetGiftCardByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gift card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get gift card by code", err)
	}
	return toGiftCardView(row), nil
}

func (r *GiftCardReadStore) ListFirstPage(ctx context.Context, organizationID uuid.UUID, limit int32) ([]*queries.GiftCardView, error) {
	rows, err := r.queries.ListGiftCardsFirstPage(ctx, r.db, sqlc.ListGiftCardsFirstPageParams{
		OrganizationID: organizationID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gift cards", err)
	}
	return toGiftCardViews(rows), nil
}

func (r *GiftCardReadStore) ListKeyset(ctx context.Context, organizationID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GiftCardView, error) {
	rows, err := r.queries.ListGiftCardsKeyset(ctx, r.db, sqlc.ListGiftCardsKeysetParams{
		OrganizationID: organizationID,
		CreatedAt:      pgconv.TimeToPgtype(lastCreatedAt),
		ID:             lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gift cards", err)
	}
	return toGiftCardViews(rows), nil
}

func toGiftCardViews(rows []sqlc.GiftCards) []*queries.GiftCardView {
	out := make([]*queries.GiftCardView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toGiftCardView(row))
	}
	return out
}

func toGiftCardView(row sqlc.GiftCards) *queries.GiftCardView {
	return &queries.GiftCardView{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Code:           row.Code,
		InitialCents:   row.InitialCents,
		BalanceCents:   row.BalanceCents,
		Status:         row.Status,
		ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiresAt),
		RecipientName:  pgconv.StringPtrFromPgtype(row.RecipientName),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
