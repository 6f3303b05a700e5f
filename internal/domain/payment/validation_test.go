//go:build unit

package payment_test

import (
	"testing"

	"salon-booking/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() payment.Request {
	return payment.Request{
		Attendance: payment.AttendancePresent,
		Settlement: payment.SettlementPaid,
		Method:     payment.MethodCard,
		TotalCents: 15000,
	}
}

type decideCase struct {
	name   string
	mutate func(*payment.Request)
	errIs  error
	check  func(t *testing.T, o payment.Outcome)
}

func TestDecide(t *testing.T) {
	rates := payment.DefaultRates()

	t.Run("guards", func(t *testing.T) {
		runDecideCases(t, rates, []decideCase{
			{name: "attendance missing", mutate: func(r *payment.Request) { r.Attendance = payment.AttendanceUnknown }, errIs: payment.ErrIncompleteValidation},
			{name: "settlement missing", mutate: func(r *payment.Request) { r.Settlement = payment.SettlementUnknown }, errIs: payment.ErrIncompleteValidation},
			{name: "negative deposit", mutate: func(r *payment.Request) { r.DepositCents = -1 }, errIs: payment.ErrNegativeDeposit},
			{name: "method missing with amount due", mutate: func(r *payment.Request) { r.Method = payment.MethodNone }, errIs: payment.ErrMethodRequired},
			{name: "manual discount over total", mutate: func(r *payment.Request) { r.Discounts.ManualCents = 15001 }, errIs: payment.ErrManualDiscountTooLarge},
			{name: "negative manual discount", mutate: func(r *payment.Request) { r.Discounts.ManualCents = -5 }, errIs: payment.ErrNegativeManualDiscount},
		})
	})

	t.Run("absent without payment is a no-show", func(t *testing.T) {
		runDecideCases(t, rates, []decideCase{
			{
				name: "settlement unpaid",
				mutate: func(r *payment.Request) {
					r.Attendance = payment.AttendanceAbsent
					r.Settlement = payment.SettlementUnpaid
					r.Discounts = payment.DiscountSet{Loyalty: true}
				},
				check: func(t *testing.T, o payment.Outcome) {
					assert.Equal(t, payment.VisitNoShow, o.Visit)
					assert.Equal(t, payment.StatusNoShow, o.PaymentStatus)
					assert.Zero(t, o.AmountCents)
					assert.False(t, o.ResetsLoyalty)
				},
			},
			{
				name: "paid with zero deposit",
				mutate: func(r *payment.Request) {
					r.Attendance = payment.AttendanceAbsent
					r.DepositCents = 0
				},
				check: func(t *testing.T, o payment.Outcome) {
					assert.Equal(t, payment.StatusNoShow, o.PaymentStatus)
					assert.Zero(t, o.AmountCents)
				},
			},
		})
	})

	t.Run("absent with deposit is partial", func(t *testing.T) {
		runDecideCases(t, rates, []decideCase{
			{
				name: "deposit kept",
				mutate: func(r *payment.Request) {
					r.Attendance = payment.AttendanceAbsent
					r.TotalCents = 5000
					r.DepositCents = 2000
					r.Method = payment.MethodCash
					r.Discounts = payment.DiscountSet{Package: true}
				},
				check: func(t *testing.T, o payment.Outcome) {
					assert.Equal(t, payment.VisitNoShow, o.Visit)
					assert.Equal(t, payment.StatusPartial, o.PaymentStatus)
					assert.Equal(t, int64(2000), o.AmountCents)
					assert.Equal(t, payment.MethodCash, o.Method)
					assert.False(t, o.ResetsPackage)
					assert.Zero(t, o.GiftCardUsedCents())
				},
			},
			{
				name: "deposit over total",
				mutate: func(r *payment.Request) {
					r.Attendance = payment.AttendanceAbsent
					r.TotalCents = 5000
					r.DepositCents = 6000
				},
				errIs: payment.ErrDepositExceedsTotal,
			},
		})
	})

	t.Run("present and unpaid ignores discounts", func(t *testing.T) {
		runDecideCases(t, rates, []decideCase{
			{
				name: "discounts and gift card are not consumed",
				mutate: func(r *payment.Request) {
					r.Settlement = payment.SettlementUnpaid
					r.Discounts = payment.DiscountSet{Loyalty: true, Package: true, Birthday: true, ManualCents: 1000}
					r.GiftCardAvailableCents = 5000
				},
				check: func(t *testing.T, o payment.Outcome) {
					assert.Equal(t, payment.VisitCompleted, o.Visit)
					assert.Equal(t, payment.StatusUnpaid, o.PaymentStatus)
					assert.Zero(t, o.AmountCents)
					assert.Zero(t, o.GiftCardUsedCents())
					assert.False(t, o.ResetsLoyalty)
					assert.False(t, o.ResetsPackage)
					assert.False(t, o.ConsumesBirthday)
				},
			},
		})
	})

	t.Run("present and paid", func(t *testing.T) {
		runDecideCases(t, rates, []decideCase{
			{
				name: "gift card covers the remainder",
				mutate: func(r *payment.Request) {
					r.Method = payment.MethodNone
					r.Discounts = payment.DiscountSet{Loyalty: true, Package: true, ManualCents: 1000}
					r.GiftCardAvailableCents = 20000
				},
				check: func(t *testing.T, o payment.Outcome) {
					assert.Equal(t, payment.VisitCompleted, o.Visit)
					assert.Equal(t, payment.StatusPaid, o.PaymentStatus)
					assert.Zero(t, o.AmountCents)
					assert.Equal(t, int64(8000), o.GiftCardUsedCents())
					assert.Equal(t, payment.MethodGiftCard, o.Method)
					assert.True(t, o.ResetsLoyalty)
					assert.True(t, o.ResetsPackage)
				},
			},
			{
				name: "referral and birthday consumed",
				mutate: func(r *payment.Request) {
					r.Discounts = payment.DiscountSet{Birthday: true, Referral: payment.ReferralReferred}
				},
				check: func(t *testing.T, o payment.Outcome) {
					assert.Equal(t, int64(13000), o.AmountCents)
					assert.Equal(t, payment.ReferralReferred, o.ConsumesReferral)
					assert.True(t, o.ConsumesBirthday)
					assert.False(t, o.ResetsLoyalty)
				},
			},
			{
				name: "no discounts",
				check: func(t *testing.T, o payment.Outcome) {
					assert.Equal(t, int64(15000), o.AmountCents)
					assert.Equal(t, payment.MethodCard, o.Method)
					assert.Equal(t, "paid in full", o.Notes())
				},
			},
		})
	})
}

func TestOutcomeNotes(t *testing.T) {
	rates := payment.DefaultRates()

	t.Run("lists discounts and gift card", func(t *testing.T) {
		req := baseRequest()
		req.Discounts = payment.DiscountSet{Loyalty: true, Package: true, ManualCents: 1000}
		req.GiftCardAvailableCents = 20000

		o, err := payment.Decide(req, rates)
		require.NoError(t, err)
		assert.Equal(t, "discounts: loyalty -20.00, package -40.00, manual -10.00; gift card -80.00", o.Notes())
	})

	t.Run("discounts larger than the total show what they took", func(t *testing.T) {
		req := baseRequest()
		req.TotalCents = 3000
		req.Discounts = payment.DiscountSet{Loyalty: true, Package: true, Birthday: true}

		o, err := payment.Decide(req, rates)
		require.NoError(t, err)
		assert.Equal(t, int64(0), o.AmountCents)
		assert.Equal(t, "discounts: loyalty -20.00, package -10.00", o.Notes())
	})

	t.Run("deposit", func(t *testing.T) {
		req := baseRequest()
		req.Attendance = payment.AttendanceAbsent
		req.DepositCents = 2000

		o, err := payment.Decide(req, rates)
		require.NoError(t, err)
		assert.Equal(t, "no show, deposit 20.00", o.Notes())
	})
}

func TestParsers(t *testing.T) {
	_, err := payment.ParseAttendance("maybe")
	require.ErrorIs(t, err, payment.ErrInvalidAttendance)

	_, err = payment.ParseSettlement("later")
	require.ErrorIs(t, err, payment.ErrInvalidSettlement)

	_, err = payment.ParseMethod("bitcoin")
	require.ErrorIs(t, err, payment.ErrInvalidMethod)

	m, err := payment.ParseMethod("transfer")
	require.NoError(t, err)
	assert.Equal(t, payment.MethodTransfer, m)
}

func runDecideCases(t *testing.T, rates payment.Rates, cases []decideCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := baseRequest()
			if c.mutate != nil {
				c.mutate(&req)
			}

			actual, err := payment.Decide(req, rates)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			if c.check != nil {
				c.check(t, actual)
			}
		})
	}
}
