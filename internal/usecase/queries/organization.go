package queries

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrganizationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrganizationView, error)
	List(ctx context.Context) ([]*OrganizationView, error)
}

type OrganizationQueries interface {
	List(ctx context.Context, actor shared.Actor) ([]*OrganizationView, error)
	GetSettings(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrganizationView, error)
}

type organizationQueriesImpl struct {
	repo OrganizationReadStore
}

func NewOrganizationQueries(repo OrganizationReadStore) OrganizationQueries {
	return &organizationQueriesImpl{repo: repo}
}

func (q *organizationQueriesImpl) List(ctx context.Context, actor shared.Actor) ([]*OrganizationView, error) {
	if !actor.AtLeast(user.RoleSuperAdmin) {
		return nil, ErrAccessDenied
	}
	return q.repo.List(ctx)
}

func (q *organizationQueriesImpl) GetSettings(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OrganizationView, error) {
	if !actor.AtLeast(user.RoleSuperAdmin) {
		return nil, ErrAccessDenied
	}

	org, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}
