package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrganizationReadQueries interface {
	GetOrganizationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Organizations, error)
	GetOrganizationBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Organizations, error)
	ListOrganizations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Organizations, error)
}

type OrganizationReadStore struct {
	queries OrganizationReadQueries
	db      sqlc.DBTX
}

func NewOrganizationReadStore(queries OrganizationReadQueries, db sqlc.DBTX) *OrganizationReadStore {
	return &OrganizationReadStore{queries: queries, db: db}
}

func (r *OrganizationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrganizationView, error) {
	row, err := r.queries.GetOrganizationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("organization not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get organization", err)
	}
	return toOrganizationView(row)
}

func (r *OrganizationReadStore) FindBySlug(ctx context.Context, slug string) (*queries.OrganizationView, error) {
	row, err := r.queries.GetOrganizationBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("organization not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get organization by slug", err)
	}
	return toOrganizationView(row)
}

func (r *OrganizationReadStore) List(ctx context.Context) ([]*queries.OrganizationView, error) {
	rows, err := r.queries.ListOrganizations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list organizations", err)
	}

	out := make([]*queries.OrganizationView, 0, len(rows))
	for _, row := range rows {
		v, err := toOrganizationView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toOrganizationView(row sqlc.Organizations) (*queries.OrganizationView, error) {
	settings, err := converter.SettingsFromJSON(row.Settings)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode organization settings", err)
	}
	return &queries.OrganizationView{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		Settings:  settings,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
