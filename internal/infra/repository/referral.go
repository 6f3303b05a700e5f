package repository

import (
	"context"

	"salon-booking/internal/domain/referral"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReferralWriteQueries interface {
	CreateReferral(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReferralParams) error
	GetReferralByReferredForUpdate(ctx context.Context, db sqlc.DBTX, referredID uuid.UUID) (sqlc.Referrals, error)
	ListReferralsBySponsorForUpdate(ctx context.Context, db sqlc.DBTX, sponsorID uuid.UUID) ([]sqlc.Referrals, error)
	UpdateReferralRewards(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReferralRewardsParams) error
}

type ReferralRepository struct {
	queries ReferralWriteQueries
	db      sqlc.DBTX
}

func NewReferralRepository(queries ReferralWriteQueries, db sqlc.DBTX) *ReferralRepository {
	return &ReferralRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReferralRepository) Create(ctx context.Context, tx sqlc.DBTX, ref *referral.Referral) error {
	err := r.queries.CreateReferral(ctx, tx, sqlc.CreateReferralParams{
		ID:             ref.ID(),
		OrganizationID: ref.OrganizationID(),
		SponsorID:      ref.SponsorID(),
		ReferredID:     ref.ReferredID(),
		CreatedAt:      pgconv.TimeToPgtype(ref.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create referral", err)
	}
	return nil
}

func (r *ReferralRepository) AsReferredForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) (*referral.Referral, error) {
	row, err := r.queries.GetReferralByReferredForUpdate(ctx, tx, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("referral not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock referral", err)
	}
	return converter.ReferralFromRow(row), nil
}

// AsSponsorForUpdate returns the sponsor's referrals oldest first.
func (r *ReferralRepository) AsSponsorForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) ([]*referral.Referral, error) {
	rows, err := r.queries.ListReferralsBySponsorForUpdate(ctx, tx, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock sponsor referrals", err)
	}

	refs := make([]*referral.Referral, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, converter.ReferralFromRow(row))
	}
	return refs, nil
}

func (r *ReferralRepository) SaveRewards(ctx context.Context, tx sqlc.DBTX, ref *referral.Referral) error {
	err := r.queries.UpdateReferralRewards(ctx, tx, sqlc.UpdateReferralRewardsParams{
		SponsorRewardUsedAt:  pgconv.TimePtrToPgtype(ref.SponsorRewardUsedAt()),
		ReferredRewardUsedAt: pgconv.TimePtrToPgtype(ref.ReferredRewardUsedAt()),
		ID:                   ref.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save referral rewards", err)
	}
	return nil
}
