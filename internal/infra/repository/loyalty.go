package repository

import (
	"context"
	"time"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LoyaltyWriteQueries interface {
	CreateLoyaltyProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLoyaltyProfileParams) error
	GetLoyaltyProfileForUpdate(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (sqlc.LoyaltyProfiles, error)
	UpdateLoyaltyProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLoyaltyProfileParams) error
	InsertBirthdayDiscount(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBirthdayDiscountParams) (int64, error)
	GetBirthdayDiscountForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBirthdayDiscountForUpdateParams) (sqlc.BirthdayDiscounts, error)
	MarkBirthdayDiscountUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBirthdayDiscountUsedParams) error
	ListClientIDsBornInMonth(ctx context.Context, db sqlc.DBTX, month int32) ([]uuid.UUID, error)
}

type LoyaltyRepository struct {
	queries LoyaltyWriteQueries
	db      sqlc.DBTX
}

func NewLoyaltyRepository(queries LoyaltyWriteQueries, db sqlc.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LoyaltyRepository) CreateProfile(ctx context.Context, tx sqlc.DBTX, p *loyalty.Profile) error {
	err := r.queries.CreateLoyaltyProfile(ctx, tx, sqlc.CreateLoyaltyProfileParams{
		ClientID:       p.ClientID(),
		OrganizationID: p.OrganizationID(),
		ReferralCode:   p.ReferralCode().Value(),
		UpdatedAt:      pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create loyalty profile", err)
	}
	return nil
}

// ProfileForUpdate locks the row until the surrounding transaction ends.
func (r *LoyaltyRepository) ProfileForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) (*loyalty.Profile, error) {
	row, err := r.queries.GetLoyaltyProfileForUpdate(ctx, tx, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock loyalty profile", err)
	}

	p, err := converter.ProfileFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map loyalty profile", err)
	}
	return p, nil
}

func (r *LoyaltyRepository) SaveProfile(ctx context.Context, tx sqlc.DBTX, p *loyalty.Profile) error {
	if err := r.queries.UpdateLoyaltyProfile(ctx, tx, converter.ProfileToUpdateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to save loyalty profile", err)
	}
	return nil
}

// GrantBirthday reports false when the client already holds a discount for that year.
func (r *LoyaltyRepository) GrantBirthday(ctx context.Context, tx sqlc.DBTX, d *loyalty.BirthdayDiscount) (bool, error) {
	n, err := r.queries.InsertBirthdayDiscount(ctx, tx, sqlc.InsertBirthdayDiscountParams{
		ID:        d.ID(),
		ClientID:  d.ClientID(),
		Year:      int32(d.Year()),
		GrantedAt: pgconv.TimeToPgtype(d.GrantedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to grant birthday discount", err)
	}
	return n > 0, nil
}

func (r *LoyaltyRepository) BirthdayForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID, year int) (*loyalty.BirthdayDiscount, error) {
	row, err := r.queries.GetBirthdayDiscountForUpdate(ctx, tx, sqlc.GetBirthdayDiscountForUpdateParams{
		ClientID: clientID,
		Year:     int32(year),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("birthday discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock birthday discount", err)
	}
	return converter.BirthdayFromRow(row), nil
}

func (r *LoyaltyRepository) SaveBirthday(ctx context.Context, tx sqlc.DBTX, d *loyalty.BirthdayDiscount) error {
	err := r.queries.MarkBirthdayDiscountUsed(ctx, tx, sqlc.MarkBirthdayDiscountUsedParams{
		UsedAt:        pgconv.TimePtrToPgtype(d.UsedAt()),
		ReservationID: pgconv.UUIDPtrToPgtype(d.ReservationID()),
		ID:            d.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save birthday discount", err)
	}
	return nil
}

func (r *LoyaltyRepository) ClientsBornIn(ctx context.Context, tx sqlc.DBTX, month time.Month) ([]uuid.UUID, error) {
	ids, err := r.queries.ListClientIDsBornInMonth(ctx, tx, int32(month))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients by birth month", err)
	}
	return ids, nil
}
