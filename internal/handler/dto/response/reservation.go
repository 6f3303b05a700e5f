package response

import (
	"time"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

type ReservationResponse struct {
	ID         uuid.UUID                     `json:"id"`
	Client     ClientSummary                 `json:"client"`
	CreatedBy  uuid.UUID                     `json:"created_by"`
	StartsAt   time.Time                     `json:"starts_at"`
	EndsAt     time.Time                     `json:"ends_at"`
	Status     string                        `json:"status"`
	TotalCents int64                         `json:"total_cents"`
	Note       *string                       `json:"note,omitempty"`
	Lines      []queries.ReservationLineView `json:"lines"`
	Payment    queries.PaymentView           `json:"payment"`
	Version    int32                         `json:"version"`
	CreatedAt  time.Time                     `json:"created_at"`
	UpdatedAt  time.Time                     `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	lines := v.Lines
	if lines == nil {
		lines = []queries.ReservationLineView{}
	}
	pay := v.Payment
	if pay.AppliedDiscounts == nil {
		pay.AppliedDiscounts = []string{}
	}
	return &ReservationResponse{
		ID: v.ID,
		Client: ClientSummary{
			ID:        v.ClientID,
			FirstName: v.ClientFirstName,
			LastName:  v.ClientLastName,
			Email:     v.ClientEmail,
		},
		CreatedBy:  v.CreatedBy,
		StartsAt:   v.StartsAt,
		EndsAt:     v.EndsAt,
		Status:     v.Status,
		TotalCents: v.TotalCents,
		Note:       v.Note,
		Lines:      lines,
		Payment:    pay,
		Version:    v.Version,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type ReservationListResponse struct {
	ID              uuid.UUID     `json:"id"`
	Client          ClientSummary `json:"client"`
	StartsAt        time.Time     `json:"starts_at"`
	EndsAt          time.Time     `json:"ends_at"`
	Status          string        `json:"status"`
	TotalCents      int64         `json:"total_cents"`
	PaymentStatus   string        `json:"payment_status"`
	AmountPaidCents int64         `json:"amount_paid_cents"`
	CreatedAt       time.Time     `json:"created_at"`
}

func FromReservationListItems(items []*queries.ReservationListItem) []*ReservationListResponse {
	out := make([]*ReservationListResponse, len(items))
	for i, it := range items {
		out[i] = &ReservationListResponse{
			ID: it.ID,
			Client: ClientSummary{
				ID:        it.ClientID,
				FirstName: it.ClientFirstName,
				LastName:  it.ClientLastName,
				Email:     it.ClientEmail,
			},
			StartsAt:        it.StartsAt,
			EndsAt:          it.EndsAt,
			Status:          it.Status,
			TotalCents:      it.TotalCents,
			PaymentStatus:   it.PaymentStatus,
			AmountPaidCents: it.AmountPaidCents,
			CreatedAt:       it.CreatedAt,
		}
	}
	return out
}

type ValidationResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Breakdown   *payment.Breakdown   `json:"breakdown,omitempty"`
	Replayed    bool                 `json:"replayed"`
}
