//go:build unit

package payment_test

import (
	"testing"

	"salon-booking/internal/domain/payment"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	rates := payment.DefaultRates()

	t.Run("stacked flat discounts then gift card covers the rest", func(t *testing.T) {
		set := payment.DiscountSet{Loyalty: true, Package: true, ManualCents: 1000}

		actual := payment.Compute(15000, set, rates, 20000)

		expected := payment.Breakdown{
			TotalCents:          15000,
			DiscountCents:       7000,
			AfterDiscountsCents: 8000,
			GiftCardUsedCents:   8000,
			PayableCents:        0,
			Applied: []payment.AppliedDiscount{
				{Kind: payment.KindLoyalty, AmountCents: 2000},
				{Kind: payment.KindPackage, AmountCents: 4000},
				{Kind: payment.KindManual, AmountCents: 1000},
			},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("floors at zero when discounts exceed total", func(t *testing.T) {
		set := payment.DiscountSet{Loyalty: true, Package: true, Birthday: true, Referral: payment.ReferralSponsor}

		actual := payment.Compute(3000, set, rates, 5000)

		assert.Equal(t, int64(0), actual.AfterDiscountsCents)
		assert.Equal(t, int64(3000), actual.DiscountCents)
		assert.Equal(t, int64(0), actual.GiftCardUsedCents)
		assert.Equal(t, int64(0), actual.PayableCents)
		assert.Equal(t, []payment.AppliedDiscount{
			{Kind: payment.KindLoyalty, AmountCents: 2000},
			{Kind: payment.KindPackage, AmountCents: 1000},
			{Kind: payment.KindReferralSponsor, AmountCents: 0},
			{Kind: payment.KindBirthday, AmountCents: 0},
		}, actual.Applied)
	})

	t.Run("gift card capped at balance", func(t *testing.T) {
		actual := payment.Compute(10000, payment.DiscountSet{}, rates, 2500)

		assert.Equal(t, int64(2500), actual.GiftCardUsedCents)
		assert.Equal(t, int64(7500), actual.PayableCents)
		assert.Empty(t, actual.Applied)
	})

	t.Run("negative gift card availability counts as zero", func(t *testing.T) {
		actual := payment.Compute(10000, payment.DiscountSet{}, rates, -100)

		assert.Equal(t, int64(0), actual.GiftCardUsedCents)
		assert.Equal(t, int64(10000), actual.PayableCents)
	})

	t.Run("referral kinds use their own rate", func(t *testing.T) {
		sponsor := payment.Compute(10000, payment.DiscountSet{Referral: payment.ReferralSponsor}, rates, 0)
		referred := payment.Compute(10000, payment.DiscountSet{Referral: payment.ReferralReferred}, rates, 0)

		assert.Equal(t, int64(8500), sponsor.PayableCents)
		assert.Equal(t, int64(9000), referred.PayableCents)
	})

	t.Run("invariants hold over a grid of inputs", func(t *testing.T) {
		sets := []payment.DiscountSet{
			{},
			{Loyalty: true},
			{Package: true, Birthday: true},
			{Loyalty: true, Package: true, Referral: payment.ReferralReferred, ManualCents: 500},
			{Referral: payment.ReferralSponsor, ManualCents: 99999},
		}
		for _, total := range []int64{0, 1, 999, 5000, 15000, 100000} {
			for _, gc := range []int64{0, 1, 4000, 1000000} {
				for _, set := range sets {
					b := payment.Compute(total, set, rates, gc)
					assert.GreaterOrEqual(t, b.PayableCents, int64(0))
					assert.LessOrEqual(t, b.GiftCardUsedCents, min(gc, b.AfterDiscountsCents))
					assert.Equal(t, b.AfterDiscountsCents-b.GiftCardUsedCents, b.PayableCents)
					assert.Equal(t, b.TotalCents-b.DiscountCents, b.AfterDiscountsCents)
					var applied int64
					for _, d := range b.Applied {
						applied += d.AmountCents
					}
					assert.Equal(t, b.DiscountCents, applied)
				}
			}
		}
	})
}

func TestBreakdownKinds(t *testing.T) {
	b := payment.Compute(15000, payment.DiscountSet{Loyalty: true, Birthday: true}, payment.DefaultRates(), 1000)

	assert.Equal(t, []string{"loyalty", "birthday", "gift_card"}, b.Kinds())
}
