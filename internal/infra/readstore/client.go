package readstore

import (
	"context"
	"time"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientReadQueries interface {
	ListClientsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientsFirstPageParams) ([]sqlc.ListClientsFirstPageRow, error)
	ListClientsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClientsKeysetParams) ([]sqlc.ListClientsKeysetRow, error)
	ListClientsForExport(ctx context.Context, db sqlc.DBTX, organizationID uuid.UUID) ([]sqlc.ListClientsForExportRow, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      sqlc.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db sqlc.DBTX) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClientReadStore) ListFirstPage(ctx context.Context, organizationID uuid.UUID, search *string, limit int32) ([]*queries.ClientListItem, error) {
	rows, err := r.queries.ListClientsFirstPage(ctx, r.db, sqlc.ListClientsFirstPageParams{
		OrganizationID: organizationID,
		Search:         pgconv.StringPtrToPgtype(search),
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}

	out := make([]*queries.ClientListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toClientListItem(sqlc.ListClientsForExportRow(row)))
	}
	return out, nil
}

func (r *ClientReadStore) ListKeyset(ctx context.Context, organizationID uuid.UUID, search *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ClientListItem, error) {
	rows, err := r.queries.ListClientsKeyset(ctx, r.db, sqlc.ListClientsKeysetParams{
		OrganizationID: organizationID,
		Search:         pgconv.StringPtrToPgtype(search),
		CreatedAt:      pgconv.TimeToPgtype(lastCreatedAt),
		ID:             lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}

	out := make([]*queries.ClientListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toClientListItem(sqlc.ListClientsForExportRow(row)))
	}
	return out, nil
}

func (r *ClientReadStore) ListForExport(ctx context.Context, organizationID uuid.UUID) ([]*queries.ClientListItem, error) {
	rows, err := r.queries.ListClientsForExport(ctx, r.db, organizationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients for export", err)
	}

	out := make([]*queries.ClientListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toClientListItem(row))
	}
	return out, nil
}

// The three client row types share one column list, so they convert to each other.
func toClientListItem(row sqlc.ListClientsForExportRow) *queries.ClientListItem {
	return &queries.ClientListItem{
		ID:         row.ID,
		Email:      row.Email,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Phone:      pgconv.StringPtrFromPgtype(row.Phone),
		BirthDate:  pgconv.DatePtrFromPgtype(row.BirthDate),
		Newsletter: row.Newsletter,
		IsActive:   row.IsActive,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		Loyalty: queries.LoyaltySummary{
			IndividualServices: int(row.IndividualServices),
			PackageSessions:    int(row.PackageSessions),
			PackagesCompleted:  int(row.PackagesCompleted),
			ReferralCode:       row.ReferralCode,
			TotalSpentCents:    row.TotalSpentCents,
		},
	}
}
