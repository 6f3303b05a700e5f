package payment

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidReferral         = errors.New("invalid referral discount")
	ErrNegativeManualDiscount  = errors.New("manual discount cannot be negative")
	ErrNegativeRate            = errors.New("discount rate cannot be negative")
	ErrDiscountNotEligible     = errors.New("client is not eligible for discount")
	ErrManualDiscountTooLarge  = errors.New("manual discount exceeds reservation total")
	ErrNegativeGiftCardBalance = errors.New("gift card balance cannot be negative")
)

// ReferralDiscount holds at most one referral reward per validation.
type ReferralDiscount string

const (
	ReferralNone     ReferralDiscount = ""
	ReferralSponsor  ReferralDiscount = "sponsor"
	ReferralReferred ReferralDiscount = "referred"
)

func ParseReferral(s string) (ReferralDiscount, error) {
	r := ReferralDiscount(s)
	switch r {
	case ReferralNone, ReferralSponsor, ReferralReferred:
		return r, nil
	default:
		return ReferralNone, ErrInvalidReferral
	}
}

func (r ReferralDiscount) Kind() DiscountKind {
	switch r {
	case ReferralSponsor:
		return KindReferralSponsor
	case ReferralReferred:
		return KindReferralReferred
	default:
		return ""
	}
}

type DiscountKind string

const (
	KindLoyalty          DiscountKind = "loyalty"
	KindPackage          DiscountKind = "package"
	KindReferralSponsor  DiscountKind = "referral_sponsor"
	KindReferralReferred DiscountKind = "referral_referred"
	KindBirthday         DiscountKind = "birthday"
	KindManual           DiscountKind = "manual"
	KindGiftCard         DiscountKind = "gift_card"
)

// DiscountSet is the staff selection in the validation modal.
type DiscountSet struct {
	Loyalty     bool
	Package     bool
	Birthday    bool
	Referral    ReferralDiscount
	ManualCents int64
}

// WithReferral replaces any previously selected referral reward.
func (s DiscountSet) WithReferral(r ReferralDiscount) DiscountSet {
	s.Referral = r
	return s
}

func (s DiscountSet) Validate() error {
	if s.ManualCents < 0 {
		return ErrNegativeManualDiscount
	}
	if _, err := ParseReferral(string(s.Referral)); err != nil {
		return err
	}
	return nil
}

func (s DiscountSet) IsEmpty() bool {
	return !s.Loyalty && !s.Package && !s.Birthday && s.Referral == ReferralNone && s.ManualCents == 0
}

// CheckAgainst rejects the first selected reward the client is not entitled to.
// Manual discounts are a staff decision and are not eligibility-bound.
func (s DiscountSet) CheckAgainst(e Eligibility) error {
	switch {
	case s.Loyalty && !e.Loyalty:
		return notEligible(KindLoyalty)
	case s.Package && !e.Package:
		return notEligible(KindPackage)
	case s.Referral == ReferralSponsor && !e.ReferralSponsor:
		return notEligible(KindReferralSponsor)
	case s.Referral == ReferralReferred && !e.ReferralReferred:
		return notEligible(KindReferralReferred)
	case s.Birthday && !e.Birthday:
		return notEligible(KindBirthday)
	}
	return nil
}

func notEligible(kind DiscountKind) error {
	return fmt.Errorf("%w: %s", ErrDiscountNotEligible, kind)
}

// Eligibility is what the client is entitled to at the time of validation.
type Eligibility struct {
	Loyalty          bool `json:"loyalty"`
	Package          bool `json:"package"`
	Birthday         bool `json:"birthday"`
	ReferralSponsor  bool `json:"referral_sponsor"`
	ReferralReferred bool `json:"referral_referred"`
}

// Defaults is the selection pre-enabled when the modal opens. The referred
// reward wins over the sponsor reward when both are available.
func (e Eligibility) Defaults() DiscountSet {
	set := DiscountSet{
		Loyalty:  e.Loyalty,
		Package:  e.Package,
		Birthday: e.Birthday,
	}
	switch {
	case e.ReferralReferred:
		set.Referral = ReferralReferred
	case e.ReferralSponsor:
		set.Referral = ReferralSponsor
	}
	return set
}

// Rates are flat amounts in cents.
type Rates struct {
	LoyaltyCents          int64 `json:"loyalty_cents"`
	PackageCents          int64 `json:"package_cents"`
	ReferralSponsorCents  int64 `json:"referral_sponsor_cents"`
	ReferralReferredCents int64 `json:"referral_referred_cents"`
	BirthdayCents         int64 `json:"birthday_cents"`
}

func DefaultRates() Rates {
	return Rates{
		LoyaltyCents:          2000,
		PackageCents:          4000,
		ReferralSponsorCents:  1500,
		ReferralReferredCents: 1000,
		BirthdayCents:         1000,
	}
}

func (r Rates) Validate() error {
	for _, v := range []int64{r.LoyaltyCents, r.PackageCents, r.ReferralSponsorCents, r.ReferralReferredCents, r.BirthdayCents} {
		if v < 0 {
			return ErrNegativeRate
		}
	}
	return nil
}
