package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotInvoiceable = errors.New("only validated reservations with a collected amount can be invoiced")
	ErrInvalidVATRate = errors.New("vat rate must be between 0 and 10000 basis points")
)

type Line struct {
	Description string
	AmountCents int64
}

// Source is the validated reservation data an invoice is drawn from.
type Source struct {
	ReservationID uuid.UUID
	SellerName    string
	CustomerName  string
	CustomerEmail string
	VisitDate     time.Time
	Lines         []Line
	TotalCents    int64
	DiscountCents int64
	DiscountKinds []string
	GiftCardCents int64
	AmountPaid    int64
	PaymentMethod string
	PaymentStatus string
	PaidAt        *time.Time
	Validated     bool
	InvoicePrefix string
	VATRateBP     int
	Currency      string
}

type Invoice struct {
	Number        string
	IssuedAt      time.Time
	SellerName    string
	CustomerName  string
	CustomerEmail string
	VisitDate     time.Time
	Lines         []Line
	SubtotalCents int64
	Discount      *Line
	GiftCard      *Line
	TotalTTCCents int64
	TotalHTCents  int64
	VATCents      int64
	VATRateBP     int
	Currency      string
	PaymentMethod string
	PaymentStatus string
}

// FromReservation builds the invoice. TTC is what was actually collected; HT
// and VAT are derived from it at the tenant rate.
func FromReservation(src Source, now time.Time) (*Invoice, error) {
	if !src.Validated || (src.AmountPaid <= 0 && src.GiftCardCents <= 0) {
		return nil, ErrNotInvoiceable
	}
	if src.VATRateBP < 0 || src.VATRateBP > 10000 {
		return nil, ErrInvalidVATRate
	}

	issued := now
	if src.PaidAt != nil {
		issued = *src.PaidAt
	}

	inv := &Invoice{
		Number:        Number(src.InvoicePrefix, issued, src.ReservationID),
		IssuedAt:      issued,
		SellerName:    src.SellerName,
		CustomerName:  src.CustomerName,
		CustomerEmail: src.CustomerEmail,
		VisitDate:     src.VisitDate,
		Lines:         src.Lines,
		SubtotalCents: src.TotalCents,
		TotalTTCCents: src.AmountPaid,
		VATRateBP:     src.VATRateBP,
		Currency:      src.Currency,
		PaymentMethod: src.PaymentMethod,
		PaymentStatus: src.PaymentStatus,
	}
	if src.DiscountCents > 0 {
		inv.Discount = &Line{Description: discountLabel(src.DiscountKinds), AmountCents: -src.DiscountCents}
	}
	if src.GiftCardCents > 0 {
		inv.GiftCard = &Line{Description: "Gift card", AmountCents: -src.GiftCardCents}
	}
	inv.TotalHTCents = ExcludingVAT(src.AmountPaid, src.VATRateBP)
	inv.VATCents = src.AmountPaid - inv.TotalHTCents
	return inv, nil
}

// Number is <prefix>-<yyyy>-<first 8 hex of the reservation id>.
func Number(prefix string, issued time.Time, reservationID uuid.UUID) string {
	return fmt.Sprintf("%s-%d-%s", prefix, issued.Year(), strings.ToUpper(reservationID.String()[:8]))
}

// ExcludingVAT rounds half up.
func ExcludingVAT(ttcCents int64, vatRateBP int) int64 {
	d := int64(10000 + vatRateBP)
	return (ttcCents*10000*2 + d) / (2 * d)
}

func discountLabel(kinds []string) string {
	var named []string
	for _, k := range kinds {
		if k != "gift_card" {
			named = append(named, strings.ReplaceAll(k, "_", " "))
		}
	}
	if len(named) == 0 {
		return "Discount"
	}
	return "Discount (" + strings.Join(named, ", ") + ")"
}

func FormatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}
