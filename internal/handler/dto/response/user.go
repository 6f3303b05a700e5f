package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Role           string     `json:"role"`
	Phone          *string    `json:"phone,omitempty"`
	BirthDate      *string    `json:"birth_date,omitempty"`
	Newsletter     bool       `json:"newsletter"`
	IsActive       bool       `json:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:             v.ID,
		OrganizationID: v.OrganizationID,
		Email:          v.Email,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Role:           v.Role,
		Phone:          v.Phone,
		BirthDate:      formatDate(v.BirthDate),
		Newsletter:     v.Newsletter,
		IsActive:       v.IsActive,
		LastLogin:      v.LastLogin,
		CreatedAt:      v.CreatedAt,
	}
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(vs))
	for i, v := range vs {
		out[i] = FromUserView(v)
	}
	return out
}

type LoyaltyResponse struct {
	IndividualServices int    `json:"individual_services"`
	PackageSessions    int    `json:"package_sessions"`
	PackagesCompleted  int    `json:"packages_completed"`
	ReferralCode       string `json:"referral_code"`
	TotalSpentCents    int64  `json:"total_spent_cents"`
}

type ClientResponse struct {
	ID         uuid.UUID       `json:"id"`
	Email      string          `json:"email"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Phone      *string         `json:"phone,omitempty"`
	BirthDate  *string         `json:"birth_date,omitempty"`
	Newsletter bool            `json:"newsletter"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	Loyalty    LoyaltyResponse `json:"loyalty"`
}

func FromClientList(items []*queries.ClientListItem) ([]*ClientResponse, error) {
	out := make([]*ClientResponse, len(items))
	for i, it := range items {
		var c ClientResponse
		if err := copier.CopyWithOption(&c, it, copier.Option{Converters: dateConverters}); err != nil {
			return nil, err
		}
		out[i] = &c
	}
	return out, nil
}

var dateConverters = []copier.TypeConverter{{
	SrcType: (*time.Time)(nil),
	DstType: (*string)(nil),
	Fn: func(src any) (any, error) {
		t, _ := src.(*time.Time)
		return formatDate(t), nil
	},
}}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
