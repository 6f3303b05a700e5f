package request

import (
	"strings"
	"time"

	"salon-booking/internal/usecase/commands"
)

type CreateClientRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"omitempty,min=8"`
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	Phone       string  `json:"phone" binding:"omitempty,max=20"`
	BirthDate   string  `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Newsletter  bool    `json:"newsletter"`
	SponsorCode *string `json:"sponsor_code,omitempty" binding:"omitempty,alphanum,min=6,max=12"`
}

func (r CreateClientRequest) ToCommand() commands.CreateClientRequest {
	var sponsor *string
	if r.SponsorCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*r.SponsorCode))
		sponsor = &code
	}
	return commands.CreateClientRequest{
		Email:       strings.ToLower(strings.TrimSpace(r.Email)),
		Password:    r.Password,
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Phone:       strings.TrimSpace(r.Phone),
		BirthDate:   birthDate(r.BirthDate),
		Newsletter:  r.Newsletter,
		SponsorCode: sponsor,
	}
}

type ListClientsQuery struct {
	PageQuery
	Search string `form:"search" binding:"omitempty,max=100"`
}

func (q ListClientsQuery) SearchTerm() *string {
	s := strings.TrimSpace(q.Search)
	if s == "" {
		return nil
	}
	return &s
}

type ReferralStatusQuery struct {
	UserID string `form:"userId" binding:"required,uuid"`
}

// UpdateUserRequest patches only the fields that are present.
type UpdateUserRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName   *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	Role       *string `json:"role" binding:"omitempty,oneof=client staff admin super_admin"`
	IsActive   *bool   `json:"is_active"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Newsletter *bool   `json:"newsletter"`
}

func (r UpdateUserRequest) ToCommand() commands.UpdateUserRequest {
	cmd := commands.UpdateUserRequest{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Phone:      r.Phone,
		Role:       r.Role,
		IsActive:   r.IsActive,
		Newsletter: r.Newsletter,
	}
	if r.BirthDate != nil {
		cmd.BirthDate = birthDate(*r.BirthDate)
	}
	return cmd
}

// format already checked by the datetime binding
func birthDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &t
}
