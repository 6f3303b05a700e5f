//go:build unit

package invoice_test

import (
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/invoice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func source() invoice.Source {
	paidAt := time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC)
	return invoice.Source{
		ReservationID: uuid.MustParse("3f2c9a1e-0000-4000-8000-000000000001"),
		SellerName:    "Spa Lumière",
		CustomerName:  "Camille <Durand>",
		CustomerEmail: "camille@example.com",
		VisitDate:     paidAt.Add(-time.Hour),
		Lines: []invoice.Line{
			{Description: "Facial", AmountCents: 9000},
			{Description: "Manicure", AmountCents: 6000},
		},
		TotalCents:    15000,
		DiscountCents: 7000,
		DiscountKinds: []string{"loyalty", "package", "manual", "gift_card"},
		GiftCardCents: 2000,
		AmountPaid:    6000,
		PaymentMethod: "card",
		PaymentStatus: "paid",
		PaidAt:        &paidAt,
		Validated:     true,
		InvoicePrefix: "SPA",
		VATRateBP:     2000,
		Currency:      "EUR",
	}
}

func TestFromReservation(t *testing.T) {
	inv, err := invoice.FromReservation(source(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, "SPA-2026-3F2C9A1E", inv.Number)
	assert.Equal(t, int64(5000), inv.TotalHTCents)
	assert.Equal(t, int64(1000), inv.VATCents)
	assert.Equal(t, int64(6000), inv.TotalTTCCents)
	require.NotNil(t, inv.Discount)
	assert.Equal(t, "Discount (loyalty, package, manual)", inv.Discount.Description)
	assert.Equal(t, int64(-7000), inv.Discount.AmountCents)
	require.NotNil(t, inv.GiftCard)
	assert.Equal(t, int64(-2000), inv.GiftCard.AmountCents)
}

func TestFromReservationGuards(t *testing.T) {
	src := source()
	src.Validated = false
	_, err := invoice.FromReservation(src, time.Now())
	require.ErrorIs(t, err, invoice.ErrNotInvoiceable)

	src = source()
	src.AmountPaid, src.GiftCardCents = 0, 0
	_, err = invoice.FromReservation(src, time.Now())
	require.ErrorIs(t, err, invoice.ErrNotInvoiceable)

	src = source()
	src.VATRateBP = 12000
	_, err = invoice.FromReservation(src, time.Now())
	require.ErrorIs(t, err, invoice.ErrInvalidVATRate)
}

func TestExcludingVAT(t *testing.T) {
	cases := []struct {
		ttc  int64
		bp   int
		want int64
	}{
		{ttc: 12000, bp: 2000, want: 10000},
		{ttc: 1000, bp: 550, want: 948},
		{ttc: 999, bp: 2000, want: 833},
		{ttc: 5000, bp: 0, want: 5000},
		{ttc: 0, bp: 2000, want: 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, invoice.ExcludingVAT(c.ttc, c.bp), "ttc=%d bp=%d", c.ttc, c.bp)
	}
}

func TestRenderHTMLEscapesInput(t *testing.T) {
	inv, err := invoice.FromReservation(source(), time.Now())
	require.NoError(t, err)

	html, err := inv.RenderHTML()
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "SPA-2026-3F2C9A1E")
	assert.Contains(t, out, "Camille &lt;Durand&gt;")
	assert.NotContains(t, out, "<Durand>")
	assert.Contains(t, out, "60.00 EUR")
	assert.Contains(t, out, "20.00 %")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "-70.00 EUR", invoice.FormatMoney(-7000, "EUR"))
	assert.Equal(t, "0.05 EUR", invoice.FormatMoney(5, "EUR"))
}
