package response

import (
	"time"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SettingsResponse struct {
	Rates         payment.Rates      `json:"rates"`
	Thresholds    loyalty.Thresholds `json:"thresholds"`
	VATRateBP     int                `json:"vat_rate_bp"`
	InvoicePrefix string             `json:"invoice_prefix"`
	Currency      string             `json:"currency"`
}

type OrganizationResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Settings  SettingsResponse `json:"settings"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func FromOrganizationView(v *queries.OrganizationView) (*OrganizationResponse, error) {
	var out OrganizationResponse
	if err := copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromOrganizationViews(vs []*queries.OrganizationView) ([]*OrganizationResponse, error) {
	out := make([]*OrganizationResponse, len(vs))
	for i, v := range vs {
		o, err := FromOrganizationView(v)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}
