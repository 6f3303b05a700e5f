package request

import (
	"strings"

	"salon-booking/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

// RefreshRequest is optional: the refresh cookie wins when present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
