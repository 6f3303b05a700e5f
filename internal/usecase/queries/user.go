package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListFirstPage(ctx context.Context, organizationID uuid.UUID, limit int32) ([]*UserView, error)
	ListKeyset(ctx context.Context, organizationID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*UserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*UserView, *Cursor, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (q *userQueriesImpl) List(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*UserView, *Cursor, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, nil, ErrAccessDenied
	}

	return page(cursor, limit,
		func(limit int32) ([]*UserView, error) {
			return q.readStore.ListFirstPage(ctx, actor.OrganizationID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*UserView, error) {
			return q.readStore.ListKeyset(ctx, actor.OrganizationID, lastCreatedAt, lastID, limit)
		},
		func(u *UserView) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID },
	)
}
