package converter

import (
	"fmt"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/referral"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func ProfileFromRow(row sqlc.LoyaltyProfiles) (*loyalty.Profile, error) {
	code, err := loyalty.NewReferralCode(row.ReferralCode)
	if err != nil {
		return nil, fmt.Errorf("loyalty profile %s: %w", row.ClientID, err)
	}
	p, err := loyalty.ReconstructProfile(
		row.ClientID, row.OrganizationID,
		int(row.IndividualServices), int(row.PackageSessions), int(row.PackagesCompleted),
		code, row.TotalSpentCents, pgconv.TimeFromPgtype(row.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("loyalty profile %s: %w", row.ClientID, err)
	}
	return p, nil
}

func ProfileToUpdateParams(p *loyalty.Profile) sqlc.UpdateLoyaltyProfileParams {
	return sqlc.UpdateLoyaltyProfileParams{
		IndividualServices: int32(p.IndividualServices()),
		PackageSessions:    int32(p.PackageSessions()),
		PackagesCompleted:  int32(p.PackagesCompleted()),
		TotalSpentCents:    p.TotalSpentCents(),
		UpdatedAt:          pgconv.TimeToPgtype(p.UpdatedAt()),
		ClientID:           p.ClientID(),
	}
}

func BirthdayFromRow(row sqlc.BirthdayDiscounts) *loyalty.BirthdayDiscount {
	return loyalty.ReconstructBirthdayDiscount(
		row.ID, row.ClientID, int(row.Year),
		pgconv.TimeFromPgtype(row.GrantedAt),
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.UUIDPtrFromPgtype(row.ReservationID),
	)
}

func ReferralFromRow(row sqlc.Referrals) *referral.Referral {
	return referral.ReconstructReferral(
		row.ID, row.OrganizationID, row.SponsorID, row.ReferredID,
		pgconv.TimePtrFromPgtype(row.SponsorRewardUsedAt),
		pgconv.TimePtrFromPgtype(row.ReferredRewardUsedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
