package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AccountingSummaryResponse struct {
	From             *time.Time       `json:"from,omitempty"`
	To               *time.Time       `json:"to,omitempty"`
	Currency         string           `json:"currency"`
	ReservationCount int64            `json:"reservation_count"`
	RevenueTTCCents  int64            `json:"revenue_ttc_cents"`
	RevenueHTCents   int64            `json:"revenue_ht_cents"`
	VATCents         int64            `json:"vat_cents"`
	DepositCents     int64            `json:"deposit_cents"`
	DiscountCents    int64            `json:"discount_cents"`
	GiftCardCents    int64            `json:"gift_card_cents"`
	ByPaymentStatus  map[string]int64 `json:"by_payment_status"`
}

func FromAccountingSummary(s *queries.AccountingSummary) (*AccountingSummaryResponse, error) {
	var out AccountingSummaryResponse
	if err := copier.CopyWithOption(&out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if out.ByPaymentStatus == nil {
		out.ByPaymentStatus = map[string]int64{}
	}
	return &out, nil
}
