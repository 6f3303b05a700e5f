//go:build unit

package payment_test

import (
	"testing"

	"salon-booking/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountSet(t *testing.T) {
	t.Run("enabling one referral clears the other", func(t *testing.T) {
		set := payment.DiscountSet{}.WithReferral(payment.ReferralSponsor)
		assert.Equal(t, payment.ReferralSponsor, set.Referral)

		set = set.WithReferral(payment.ReferralReferred)
		assert.Equal(t, payment.ReferralReferred, set.Referral)

		set = set.WithReferral(payment.ReferralNone)
		assert.Equal(t, payment.ReferralNone, set.Referral)
	})

	t.Run("validate", func(t *testing.T) {
		cases := []struct {
			name  string
			set   payment.DiscountSet
			errIs error
		}{
			{name: "empty set", set: payment.DiscountSet{}},
			{name: "manual amount", set: payment.DiscountSet{ManualCents: 500}},
			{name: "negative manual amount", set: payment.DiscountSet{ManualCents: -1}, errIs: payment.ErrNegativeManualDiscount},
			{name: "unknown referral", set: payment.DiscountSet{Referral: "both"}, errIs: payment.ErrInvalidReferral},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := c.set.Validate()
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("check against eligibility", func(t *testing.T) {
		all := payment.Eligibility{Loyalty: true, Package: true, Birthday: true, ReferralSponsor: true, ReferralReferred: true}
		none := payment.Eligibility{}

		cases := []struct {
			name  string
			set   payment.DiscountSet
			elig  payment.Eligibility
			errIs error
			msg   string
		}{
			{name: "everything allowed", set: payment.DiscountSet{Loyalty: true, Package: true, Birthday: true, Referral: payment.ReferralSponsor}, elig: all},
			{name: "manual is never eligibility-bound", set: payment.DiscountSet{ManualCents: 1500}, elig: none},
			{name: "loyalty without threshold", set: payment.DiscountSet{Loyalty: true}, elig: none, errIs: payment.ErrDiscountNotEligible, msg: "loyalty"},
			{name: "package without threshold", set: payment.DiscountSet{Package: true}, elig: none, errIs: payment.ErrDiscountNotEligible, msg: "package"},
			{name: "sponsor reward already used", set: payment.DiscountSet{Referral: payment.ReferralSponsor}, elig: payment.Eligibility{ReferralReferred: true}, errIs: payment.ErrDiscountNotEligible, msg: "referral_sponsor"},
			{name: "referred reward not available", set: payment.DiscountSet{Referral: payment.ReferralReferred}, elig: payment.Eligibility{ReferralSponsor: true}, errIs: payment.ErrDiscountNotEligible, msg: "referral_referred"},
			{name: "birthday outside birth month", set: payment.DiscountSet{Birthday: true}, elig: none, errIs: payment.ErrDiscountNotEligible, msg: "birthday"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				err := c.set.CheckAgainst(c.elig)
				if c.errIs == nil {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, c.errIs)
				assert.Contains(t, err.Error(), c.msg)
			})
		}
	})
}

func TestEligibilityDefaults(t *testing.T) {
	t.Run("referred preferred over sponsor", func(t *testing.T) {
		set := payment.Eligibility{Loyalty: true, ReferralSponsor: true, ReferralReferred: true}.Defaults()

		assert.True(t, set.Loyalty)
		assert.False(t, set.Package)
		assert.Equal(t, payment.ReferralReferred, set.Referral)
	})

	t.Run("sponsor when only sponsor is available", func(t *testing.T) {
		set := payment.Eligibility{ReferralSponsor: true, Birthday: true}.Defaults()

		assert.True(t, set.Birthday)
		assert.Equal(t, payment.ReferralSponsor, set.Referral)
	})

	t.Run("nothing eligible", func(t *testing.T) {
		assert.True(t, payment.Eligibility{}.Defaults().IsEmpty())
	})
}

func TestRatesValidate(t *testing.T) {
	require.NoError(t, payment.DefaultRates().Validate())

	rates := payment.DefaultRates()
	rates.BirthdayCents = -1
	require.ErrorIs(t, rates.Validate(), payment.ErrNegativeRate)
}
