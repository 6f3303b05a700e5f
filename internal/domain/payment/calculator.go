package payment

type AppliedDiscount struct {
	Kind        DiscountKind `json:"kind"`
	AmountCents int64        `json:"amount_cents"`
}

type Breakdown struct {
	TotalCents          int64             `json:"total_cents"`
	DiscountCents       int64             `json:"discount_cents"`
	AfterDiscountsCents int64             `json:"after_discounts_cents"`
	GiftCardUsedCents   int64             `json:"gift_card_used_cents"`
	PayableCents        int64             `json:"payable_cents"`
	Applied             []AppliedDiscount `json:"applied"`
}

// Compute subtracts the selected flat discounts from total in order, each one
// capped at what is left, then consumes the gift card up to the remainder.
// Applied records the amount each discount actually took.
func Compute(totalCents int64, set DiscountSet, rates Rates, giftCardAvailableCents int64) Breakdown {
	if totalCents < 0 {
		totalCents = 0
	}
	applied := appliedDiscounts(set, rates)

	after := totalCents
	for i := range applied {
		taken := min(max(0, applied[i].AmountCents), after)
		applied[i].AmountCents = taken
		after -= taken
	}

	used := min(max(0, giftCardAvailableCents), after)

	return Breakdown{
		TotalCents:          totalCents,
		DiscountCents:       totalCents - after,
		AfterDiscountsCents: after,
		GiftCardUsedCents:   used,
		PayableCents:        after - used,
		Applied:             applied,
	}
}

func appliedDiscounts(set DiscountSet, rates Rates) []AppliedDiscount {
	applied := make([]AppliedDiscount, 0, 5)
	if set.Loyalty {
		applied = append(applied, AppliedDiscount{Kind: KindLoyalty, AmountCents: rates.LoyaltyCents})
	}
	if set.Package {
		applied = append(applied, AppliedDiscount{Kind: KindPackage, AmountCents: rates.PackageCents})
	}
	switch set.Referral {
	case ReferralSponsor:
		applied = append(applied, AppliedDiscount{Kind: KindReferralSponsor, AmountCents: rates.ReferralSponsorCents})
	case ReferralReferred:
		applied = append(applied, AppliedDiscount{Kind: KindReferralReferred, AmountCents: rates.ReferralReferredCents})
	}
	if set.Birthday {
		applied = append(applied, AppliedDiscount{Kind: KindBirthday, AmountCents: rates.BirthdayCents})
	}
	if set.ManualCents > 0 {
		applied = append(applied, AppliedDiscount{Kind: KindManual, AmountCents: set.ManualCents})
	}
	return applied
}

func (b Breakdown) Kinds() []string {
	kinds := make([]string, 0, len(b.Applied)+1)
	for _, d := range b.Applied {
		kinds = append(kinds, string(d.Kind))
	}
	if b.GiftCardUsedCents > 0 {
		kinds = append(kinds, string(KindGiftCard))
	}
	return kinds
}
