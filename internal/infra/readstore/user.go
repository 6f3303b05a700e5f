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

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ListUsersFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersFirstPageParams) ([]sqlc.Users, error)
	ListUsersKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersKeysetParams) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) ListFirstPage(ctx context.Context, organizationID uuid.UUID, limit int32) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsersFirstPage(ctx, r.db, sqlc.ListUsersFirstPageParams{
		OrganizationID: organizationID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return toUserViews(rows), nil
}

func (r *UserReadStore) ListKeyset(ctx context.Context, organizationID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsersKeyset(ctx, r.db, sqlc.ListUsersKeysetParams{
		OrganizationID: organizationID,
		CreatedAt:      pgconv.TimeToPgtype(lastCreatedAt),
		ID:             lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return toUserViews(rows), nil
}

func toUserViews(rows []sqlc.Users) []*queries.UserView {
	out := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUserView(row))
	}
	return out
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Email:          row.Email,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		Role:           row.Role,
		Phone:          pgconv.StringPtrFromPgtype(row.Phone),
		BirthDate:      pgconv.DatePtrFromPgtype(row.BirthDate),
		Newsletter:     row.Newsletter,
		IsActive:       row.IsActive,
		LastLogin:      pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
