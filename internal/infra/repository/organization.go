package repository

import (
	"context"
	"encoding/json"

	"salon-booking/internal/domain/organization"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrganizationWriteQueries interface {
	CreateOrganization(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrganizationParams) error
	GetOrganizationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Organizations, error)
	UpdateOrganizationSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrganizationSettingsParams) (int64, error)
}

type OrganizationRepository struct {
	queries OrganizationWriteQueries
	db      sqlc.DBTX
}

func NewOrganizationRepository(queries OrganizationWriteQueries, db sqlc.DBTX) *OrganizationRepository {
	return &OrganizationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, tx sqlc.DBTX, org *organization.Organization) error {
	params, err := converter.OrganizationToCreateParams(org)
	if err != nil {
		return infra.WrapRepoErr("failed to encode organization", err)
	}
	if err := r.queries.CreateOrganization(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create organization", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*organization.Organization, error) {
	row, err := r.queries.GetOrganizationByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("organization not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get organization", err)
	}

	org, err := converter.OrganizationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map organization", err)
	}
	return org, nil
}

func (r *OrganizationRepository) UpdateSettings(ctx context.Context, tx sqlc.DBTX, org *organization.Organization) error {
	settings, err := json.Marshal(org.Settings())
	if err != nil {
		return infra.WrapRepoErr("failed to encode settings", err)
	}

	n, err := r.queries.UpdateOrganizationSettings(ctx, tx, sqlc.UpdateOrganizationSettingsParams{
		Settings:  settings,
		UpdatedAt: pgconv.TimeToPgtype(org.UpdatedAt()),
		ID:        org.ID(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update organization settings", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("organization not found", nil, infra.KindNotFound)
	}
	return nil
}
