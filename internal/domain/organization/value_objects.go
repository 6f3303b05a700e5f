package organization

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/payment"
)

var (
	ErrInvalidSlug          = errors.New("slug must be 3-63 lowercase letters, digits or hyphens")
	ErrInvalidVATRate       = errors.New("vat rate must be between 0 and 10000 basis points")
	ErrInvalidInvoicePrefix = errors.New("invoice prefix must be 1-12 uppercase letters or digits")
	ErrInvalidCurrency      = errors.New("currency must be a 3-letter ISO code")
)

var (
	slugRegex          = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
	invoicePrefixRegex = regexp.MustCompile(`^[A-Z0-9]{1,12}$`)
	currencyRegex      = regexp.MustCompile(`^[A-Z]{3}$`)
)

type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slugRegex.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) Value() string { return s.value }

// Settings is stored as a single JSON document per tenant.
type Settings struct {
	Rates         payment.Rates      `json:"rates"`
	Thresholds    loyalty.Thresholds `json:"thresholds"`
	VATRateBP     int                `json:"vat_rate_bp"`
	InvoicePrefix string             `json:"invoice_prefix"`
	Currency      string             `json:"currency"`
}

func DefaultSettings() Settings {
	return Settings{
		Rates:         payment.DefaultRates(),
		Thresholds:    loyalty.DefaultThresholds(),
		VATRateBP:     2000,
		InvoicePrefix: "INV",
		Currency:      "EUR",
	}
}

func (s Settings) Validate() error {
	if err := s.Rates.Validate(); err != nil {
		return err
	}
	if err := s.Thresholds.Validate(); err != nil {
		return err
	}
	if s.VATRateBP < 0 || s.VATRateBP > 10000 {
		return ErrInvalidVATRate
	}
	if !invoicePrefixRegex.MatchString(s.InvoicePrefix) {
		return ErrInvalidInvoicePrefix
	}
	if !currencyRegex.MatchString(s.Currency) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, s.Currency)
	}
	return nil
}
