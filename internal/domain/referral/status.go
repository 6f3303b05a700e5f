package referral

import "github.com/google/uuid"

// Status summarises the referral rewards still open for one client.
type Status struct {
	ClientID                  uuid.UUID  `json:"client_id"`
	ReferredBy                *uuid.UUID `json:"referred_by,omitempty"`
	ReferredDiscountAvailable bool       `json:"referred_discount_available"`
	SponsorDiscountAvailable  bool       `json:"sponsor_discount_available"`
	SponsoredCount            int        `json:"sponsored_count"`
	PendingSponsorRewards     int        `json:"pending_sponsor_rewards"`
}

// StatusFor builds the status from the referral where the client is the
// referred party (nil if none) and every referral the client sponsored.
func StatusFor(clientID uuid.UUID, asReferred *Referral, asSponsor []*Referral) Status {
	st := Status{ClientID: clientID, SponsoredCount: len(asSponsor)}
	if asReferred != nil {
		sponsor := asReferred.sponsorID
		st.ReferredBy = &sponsor
		st.ReferredDiscountAvailable = asReferred.referredRewardUsedAt == nil
	}
	for _, r := range asSponsor {
		if r.sponsorRewardUsedAt == nil {
			st.PendingSponsorRewards++
		}
	}
	st.SponsorDiscountAvailable = st.PendingSponsorRewards > 0
	return st
}

// OldestPendingSponsorReward picks the referral whose sponsor reward gets
// consumed next. asSponsor is expected in creation order.
func OldestPendingSponsorReward(asSponsor []*Referral) *Referral {
	for _, r := range asSponsor {
		if r.sponsorRewardUsedAt == nil {
			return r
		}
	}
	return nil
}
