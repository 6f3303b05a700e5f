package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GiftCardResponse struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	InitialCents  int64      `json:"initial_cents"`
	BalanceCents  int64      `json:"balance_cents"`
	Status        string     `json:"status"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	RecipientName *string    `json:"recipient_name,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromGiftCardView(v *queries.GiftCardView) (*GiftCardResponse, error) {
	var out GiftCardResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromGiftCardViews(vs []*queries.GiftCardView) ([]*GiftCardResponse, error) {
	return copyAll[*queries.GiftCardView, *GiftCardResponse](vs)
}
