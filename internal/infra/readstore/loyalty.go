package readstore

import (
	"context"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/referral"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LoyaltyReadQueries interface {
	GetLoyaltyProfile(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (sqlc.LoyaltyProfiles, error)
	GetReferralByReferred(ctx context.Context, db sqlc.DBTX, referredID uuid.UUID) (sqlc.Referrals, error)
	ListReferralsBySponsor(ctx context.Context, db sqlc.DBTX, sponsorID uuid.UUID) ([]sqlc.Referrals, error)
	GetBirthdayDiscount(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBirthdayDiscountParams) (sqlc.BirthdayDiscounts, error)
	GetLoyaltyProfileByReferralCode(ctx context.Context, db sqlc.DBTX, referralCode string) (sqlc.LoyaltyProfiles, error)
}

// LoyaltyReadStore returns nil for rows that do not exist yet.
type LoyaltyReadStore struct {
	queries LoyaltyReadQueries
	db      sqlc.DBTX
}

func NewLoyaltyReadStore(queries LoyaltyReadQueries, db sqlc.DBTX) *LoyaltyReadStore {
	return &LoyaltyReadStore{queries: queries, db: db}
}

func (r *LoyaltyReadStore) Profile(ctx context.Context, clientID uuid.UUID) (*loyalty.Profile, error) {
	row, err := r.queries.GetLoyaltyProfile(ctx, r.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get loyalty profile", err)
	}
	p, err := converter.ProfileFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode loyalty profile", err)
	}
	return p, nil
}

func (r *LoyaltyReadStore) AsReferred(ctx context.Context, clientID uuid.UUID) (*referral.Referral, error) {
	row, err := r.queries.GetReferralByReferred(ctx, r.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get referral", err)
	}
	return converter.ReferralFromRow(row), nil
}

func (r *LoyaltyReadStore) AsSponsor(ctx context.Context, clientID uuid.UUID) ([]*referral.Referral, error) {
	rows, err := r.queries.ListReferralsBySponsor(ctx, r.db, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sponsored referrals", err)
	}
	out := make([]*referral.Referral, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.ReferralFromRow(row))
	}
	return out, nil
}

func (r *LoyaltyReadStore) Birthday(ctx context.Context, clientID uuid.UUID, year int) (*loyalty.BirthdayDiscount, error) {
	row, err := r.queries.GetBirthdayDiscount(ctx, r.db, sqlc.GetBirthdayDiscountParams{
		ClientID: clientID,
		Year:     int32(year),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get birthday discount", err)
	}
	return converter.BirthdayFromRow(row), nil
}

// ProfileByReferralCode reports a missing sponsor as NotFound, unlike the
// display reads above.
func (r *LoyaltyReadStore) ProfileByReferralCode(ctx context.Context, code string) (*loyalty.Profile, error) {
	row, err := r.queries.GetLoyaltyProfileByReferralCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get loyalty profile by referral code", err)
	}
	p, err := converter.ProfileFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode loyalty profile", err)
	}
	return p, nil
}
