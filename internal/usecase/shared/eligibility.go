package shared

import (
	"time"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/referral"

	"github.com/google/uuid"
)

// EligibilityInput gathers everything that decides which rewards a client may
// redeem. Profile and Birthday may be nil.
type EligibilityInput struct {
	ClientID   uuid.UUID
	Profile    *loyalty.Profile
	Thresholds loyalty.Thresholds
	AsReferred *referral.Referral
	AsSponsor  []*referral.Referral
	BirthDate  *time.Time
	Birthday   *loyalty.BirthdayDiscount
	Now        time.Time
}

func ComputeEligibility(in EligibilityInput) (payment.Eligibility, referral.Status) {
	status := referral.StatusFor(in.ClientID, in.AsReferred, in.AsSponsor)

	e := payment.Eligibility{
		Birthday:         loyalty.BirthdayEligible(in.BirthDate, in.Birthday, in.Now),
		ReferralSponsor:  status.SponsorDiscountAvailable,
		ReferralReferred: status.ReferredDiscountAvailable,
	}
	if in.Profile != nil {
		e.Loyalty = in.Profile.LoyaltyEligible(in.Thresholds)
		e.Package = in.Profile.PackageEligible(in.Thresholds)
	}
	return e, status
}
