package request

import (
	"strings"
	"time"

	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceLine struct {
	Name           string `json:"name" binding:"required,max=120"`
	PriceCents     int64  `json:"price_cents" binding:"min=0"`
	PackageSession bool   `json:"package_session"`
}

type CreateReservationRequest struct {
	ClientID *uuid.UUID    `json:"client_id,omitempty"`
	StartsAt time.Time     `json:"starts_at" binding:"required"`
	EndsAt   time.Time     `json:"ends_at" binding:"required,gtfield=StartsAt"`
	Lines    []ServiceLine `json:"lines" binding:"required,min=1,max=20,dive"`
	Note     *string       `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	lines := make([]commands.ServiceLineRequest, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = commands.ServiceLineRequest{
			Name:           strings.TrimSpace(l.Name),
			PriceCents:     l.PriceCents,
			PackageSession: l.PackageSession,
		}
	}
	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}
	return commands.CreateReservationRequest{
		ClientID: r.ClientID,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
		Lines:    lines,
		Note:     note,
	}
}

type ListReservationsQuery struct {
	PageQuery
	DateRangeQuery
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed completed no_show canceled"`
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
}

func (q ListReservationsQuery) ToFilter() (queries.ReservationFilter, error) {
	r, err := q.ToRange()
	if err != nil {
		return queries.ReservationFilter{}, err
	}
	f := queries.ReservationFilter{From: r.From, To: r.To}
	if q.Status != "" {
		status := q.Status
		f.Status = &status
	}
	if q.ClientID != "" {
		id := uuid.MustParse(q.ClientID) // validated by the uuid binding
		f.ClientID = &id
	}
	return f, nil
}

type DiscountSelection struct {
	Loyalty     bool   `json:"loyalty"`
	Package     bool   `json:"package"`
	Birthday    bool   `json:"birthday"`
	Referral    string `json:"referral" binding:"omitempty,oneof=sponsor referred"`
	ManualCents int64  `json:"manual_cents" binding:"min=0"`
}

type ValidatePaymentRequest struct {
	Attendance      string            `json:"attendance" binding:"omitempty,oneof=present absent"`
	Settlement      string            `json:"settlement" binding:"omitempty,oneof=paid unpaid"`
	DepositCents    int64             `json:"deposit_cents" binding:"min=0"`
	Method          string            `json:"method" binding:"omitempty,oneof=cash card transfer check gift_card other"`
	Discounts       DiscountSelection `json:"discounts"`
	GiftCardCode    *string           `json:"gift_card_code,omitempty" binding:"omitempty,max=32"`
	ExpectedVersion *int32            `json:"expected_version,omitempty" binding:"omitempty,min=1"`
}

func (r ValidatePaymentRequest) ToCommand() commands.ValidatePaymentRequest {
	var code *string
	if r.GiftCardCode != nil {
		if trimmed := strings.ToUpper(strings.TrimSpace(*r.GiftCardCode)); trimmed != "" {
			code = &trimmed
		}
	}
	return commands.ValidatePaymentRequest{
		Attendance:   r.Attendance,
		Settlement:   r.Settlement,
		DepositCents: r.DepositCents,
		Method:       r.Method,
		Discounts: commands.DiscountRequest{
			Loyalty:     r.Discounts.Loyalty,
			Package:     r.Discounts.Package,
			Birthday:    r.Discounts.Birthday,
			Referral:    r.Discounts.Referral,
			ManualCents: r.Discounts.ManualCents,
		},
		GiftCardCode:    code,
		ExpectedVersion: r.ExpectedVersion,
	}
}

type CorrectPaymentRequest struct {
	AmountCents     int64  `json:"amount_cents" binding:"min=0"`
	Method          string `json:"method" binding:"omitempty,oneof=cash card transfer check gift_card other"`
	Notes           string `json:"notes" binding:"required,max=500"`
	ExpectedVersion *int32 `json:"expected_version,omitempty" binding:"omitempty,min=1"`
}

func (r CorrectPaymentRequest) ToCommand() commands.CorrectPaymentRequest {
	return commands.CorrectPaymentRequest{
		AmountCents:     r.AmountCents,
		Method:          r.Method,
		Notes:           strings.TrimSpace(r.Notes),
		ExpectedVersion: r.ExpectedVersion,
	}
}
