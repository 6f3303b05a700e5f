package queries

import (
	"time"

	"salon-booking/internal/domain/organization"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/referral"

	"github.com/google/uuid"
)

type UserView struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Role           string     `json:"role"`
	Phone          *string    `json:"phone,omitempty"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Newsletter     bool       `json:"newsletter"`
	IsActive       bool       `json:"is_active"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type LoyaltySummary struct {
	IndividualServices int    `json:"individual_services"`
	PackageSessions    int    `json:"package_sessions"`
	PackagesCompleted  int    `json:"packages_completed"`
	ReferralCode       string `json:"referral_code"`
	TotalSpentCents    int64  `json:"total_spent_cents"`
}

type ClientListItem struct {
	ID         uuid.UUID      `json:"id"`
	Email      string         `json:"email"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Phone      *string        `json:"phone,omitempty"`
	BirthDate  *time.Time     `json:"birth_date,omitempty"`
	Newsletter bool           `json:"newsletter"`
	IsActive   bool           `json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	Loyalty    LoyaltySummary `json:"loyalty"`
}

type ReservationLineView struct {
	Name           string `json:"name"`
	PriceCents     int64  `json:"price_cents"`
	PackageSession bool   `json:"package_session"`
}

type PaymentView struct {
	Status           string     `json:"status"`
	Method           *string    `json:"method,omitempty"`
	AmountPaidCents  int64      `json:"amount_paid_cents"`
	DiscountCents    int64      `json:"discount_cents"`
	GiftCardCents    int64      `json:"gift_card_cents"`
	AppliedDiscounts []string   `json:"applied_discounts"`
	Notes            *string    `json:"notes,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	ValidatedBy      *uuid.UUID `json:"validated_by,omitempty"`
	ValidatedAt      *time.Time `json:"validated_at,omitempty"`
}

type ReservationView struct {
	ID              uuid.UUID             `json:"id"`
	OrganizationID  uuid.UUID             `json:"organization_id"`
	ClientID        uuid.UUID             `json:"client_id"`
	ClientFirstName string                `json:"client_first_name"`
	ClientLastName  string                `json:"client_last_name"`
	ClientEmail     string                `json:"client_email"`
	CreatedBy       uuid.UUID             `json:"created_by"`
	StartsAt        time.Time             `json:"starts_at"`
	EndsAt          time.Time             `json:"ends_at"`
	Status          string                `json:"status"`
	TotalCents      int64                 `json:"total_cents"`
	Note            *string               `json:"note,omitempty"`
	Lines           []ReservationLineView `json:"lines"`
	Payment         PaymentView           `json:"payment"`
	Version         int32                 `json:"version"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"client_id"`
	ClientFirstName string    `json:"client_first_name"`
	ClientLastName  string    `json:"client_last_name"`
	ClientEmail     string    `json:"client_email"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Status          string    `json:"status"`
	TotalCents      int64     `json:"total_cents"`
	PaymentStatus   string    `json:"payment_status"`
	AmountPaidCents int64     `json:"amount_paid_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReservationFilter struct {
	Status   *string
	ClientID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return ErrInvalidDateRange
	}
	return nil
}

type ReservationExportRow struct {
	ID               uuid.UUID
	StartsAt         time.Time
	Status           string
	ClientName       string
	ClientEmail      string
	TotalCents       int64
	DiscountCents    int64
	GiftCardCents    int64
	AmountPaidCents  int64
	PaymentStatus    string
	PaymentMethod    string
	AppliedDiscounts []string
	PaidAt           *time.Time
}

type AccountingTotals struct {
	ReservationCount int64
	RevenueCents     int64
	DepositCents     int64
	DiscountCents    int64
	GiftCardCents    int64
	ByPaymentStatus  map[string]int64
}

type AccountingSummary struct {
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

type GiftCardView struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Code           string     `json:"code"`
	InitialCents   int64      `json:"initial_cents"`
	BalanceCents   int64      `json:"balance_cents"`
	Status         string     `json:"status"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	RecipientName  *string    `json:"recipient_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// GiftCardCheck is the public answer to a code lookup. Message is set when
// the card cannot be used.
type GiftCardCheck struct {
	Code         string     `json:"code"`
	BalanceCents int64      `json:"balance_cents"`
	Status       string     `json:"status"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Usable       bool       `json:"usable"`
	Message      string     `json:"message,omitempty"`
}

type GiftCardQRCode struct {
	Code string
	PNG  []byte
}

type OrganizationView struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Slug      string                `json:"slug"`
	Settings  organization.Settings `json:"settings"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type EmailTemplateView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	BodyHTML  string    `json:"body_html"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialPostView struct {
	ID          uuid.UUID  `json:"id"`
	Platform    string     `json:"platform"`
	Content     string     `json:"content"`
	ImageURL    *string    `json:"image_url,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type BirthdayInfo struct {
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Granted   bool       `json:"granted"`
	Used      bool       `json:"used"`
	Eligible  bool       `json:"eligible"`
}

// ValidationContext is what the validation modal needs when it opens.
type ValidationContext struct {
	ReservationID      uuid.UUID           `json:"reservation_id"`
	Status             string              `json:"status"`
	TotalCents         int64               `json:"total_cents"`
	Eligibility        payment.Eligibility `json:"eligibility"`
	Defaults           DiscountDefaults    `json:"defaults"`
	Rates              payment.Rates       `json:"rates"`
	Loyalty            LoyaltySummary      `json:"loyalty"`
	VisitsUntilLoyalty int                 `json:"visits_until_loyalty"`
	Referral           referral.Status     `json:"referral"`
	Birthday           BirthdayInfo        `json:"birthday"`
}

type DiscountDefaults struct {
	Loyalty  bool   `json:"loyalty"`
	Package  bool   `json:"package"`
	Birthday bool   `json:"birthday"`
	Referral string `json:"referral"`
}
