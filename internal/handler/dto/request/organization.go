package request

import (
	"strings"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/organization"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/usecase/commands"
)

type RatesRequest struct {
	LoyaltyCents          int64 `json:"loyalty_cents" binding:"min=0"`
	PackageCents          int64 `json:"package_cents" binding:"min=0"`
	ReferralSponsorCents  int64 `json:"referral_sponsor_cents" binding:"min=0"`
	ReferralReferredCents int64 `json:"referral_referred_cents" binding:"min=0"`
	BirthdayCents         int64 `json:"birthday_cents" binding:"min=0"`
}

type ThresholdsRequest struct {
	IndividualServices int `json:"individual_services" binding:"min=1"`
	CompletedPackages  int `json:"completed_packages" binding:"min=1"`
	SessionsPerPackage int `json:"sessions_per_package" binding:"min=1"`
}

type SettingsRequest struct {
	Rates         RatesRequest      `json:"rates"`
	Thresholds    ThresholdsRequest `json:"thresholds"`
	VATRateBP     int               `json:"vat_rate_bp" binding:"min=0,max=10000"`
	InvoicePrefix string            `json:"invoice_prefix" binding:"required,alphanum,max=12"`
	Currency      string            `json:"currency" binding:"required,len=3"`
}

func (r SettingsRequest) ToDomain() organization.Settings {
	return organization.Settings{
		Rates: payment.Rates{
			LoyaltyCents:          r.Rates.LoyaltyCents,
			PackageCents:          r.Rates.PackageCents,
			ReferralSponsorCents:  r.Rates.ReferralSponsorCents,
			ReferralReferredCents: r.Rates.ReferralReferredCents,
			BirthdayCents:         r.Rates.BirthdayCents,
		},
		Thresholds: loyalty.Thresholds{
			IndividualServices: r.Thresholds.IndividualServices,
			CompletedPackages:  r.Thresholds.CompletedPackages,
			SessionsPerPackage: r.Thresholds.SessionsPerPackage,
		},
		VATRateBP:     r.VATRateBP,
		InvoicePrefix: strings.ToUpper(r.InvoicePrefix),
		Currency:      strings.ToUpper(r.Currency),
	}
}

type CreateOrganizationRequest struct {
	Name     string           `json:"name" binding:"required,max=120"`
	Slug     string           `json:"slug" binding:"required,min=3,max=63"`
	Settings *SettingsRequest `json:"settings,omitempty"`
}

func (r CreateOrganizationRequest) ToCommand() commands.CreateOrganizationRequest {
	cmd := commands.CreateOrganizationRequest{
		Name: strings.TrimSpace(r.Name),
		Slug: strings.ToLower(strings.TrimSpace(r.Slug)),
	}
	if r.Settings != nil {
		s := r.Settings.ToDomain()
		cmd.Settings = &s
	}
	return cmd
}
