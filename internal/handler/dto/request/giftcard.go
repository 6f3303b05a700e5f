package request

import (
	"strings"
	"time"

	"salon-booking/internal/usecase/commands"
)

type CreateGiftCardRequest struct {
	Code          *string    `json:"code,omitempty" binding:"omitempty,alphanum,min=8,max=16"`
	AmountCents   int64      `json:"amount_cents" binding:"required,min=1"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	RecipientName *string    `json:"recipient_name,omitempty" binding:"omitempty,max=120"`
}

func (r CreateGiftCardRequest) ToCommand() commands.CreateGiftCardRequest {
	cmd := commands.CreateGiftCardRequest{
		AmountCents: r.AmountCents,
		ExpiresAt:   r.ExpiresAt,
	}
	if r.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*r.Code))
		cmd.Code = &code
	}
	if r.RecipientName != nil {
		if name := strings.TrimSpace(*r.RecipientName); name != "" {
			cmd.RecipientName = &name
		}
	}
	return cmd
}

type VerifyGiftCardQuery struct {
	Code string `form:"code" binding:"required,max=32"`
}

func (q VerifyGiftCardQuery) Normalized() string {
	return strings.ToUpper(strings.TrimSpace(q.Code))
}
