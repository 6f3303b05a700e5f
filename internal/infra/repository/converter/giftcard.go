package converter

import (
	"fmt"

	"salon-booking/internal/domain/giftcard"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func GiftCardToCreateParams(g *giftcard.GiftCard) sqlc.CreateGiftCardParams {
	return sqlc.CreateGiftCardParams{
		ID:             g.ID(),
		OrganizationID: g.OrganizationID(),
		Code:           g.Code().Value(),
		InitialCents:   g.InitialCents(),
		BalanceCents:   g.BalanceCents(),
		Status:         string(g.Status()),
		ExpiresAt:      pgconv.TimePtrToPgtype(g.ExpiresAt()),
		RecipientName:  pgconv.StringPtrToPgtype(g.RecipientName()),
		CreatedAt:      pgconv.TimeToPgtype(g.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(g.UpdatedAt()),
	}
}

func GiftCardFromRow(row sqlc.GiftCards) (*giftcard.GiftCard, error) {
	code, err := giftcard.NewCode(row.Code)
	if err != nil {
		return nil, fmt.Errorf("gift card %s: %w", row.ID, err)
	}
	status, err := giftcard.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("gift card %s: %w", row.ID, err)
	}
	return giftcard.ReconstructGiftCard(
		row.ID, row.OrganizationID, code,
		row.InitialCents, row.BalanceCents, status,
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.StringPtrFromPgtype(row.RecipientName),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
