package queries

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type MarketingReadStore interface {
	ListTemplates(ctx context.Context, organizationID uuid.UUID) ([]*EmailTemplateView, error)
	ListPosts(ctx context.Context, organizationID uuid.UUID) ([]*SocialPostView, error)
}

type MarketingQueries interface {
	ListTemplates(ctx context.Context, actor shared.Actor) ([]*EmailTemplateView, error)
	ListPosts(ctx context.Context, actor shared.Actor) ([]*SocialPostView, error)
}

type marketingQueriesImpl struct {
	repo MarketingReadStore
}

func NewMarketingQueries(repo MarketingReadStore) MarketingQueries {
	return &marketingQueriesImpl{repo: repo}
}

func (q *marketingQueriesImpl) ListTemplates(ctx context.Context, actor shared.Actor) ([]*EmailTemplateView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	return q.repo.ListTemplates(ctx, actor.OrganizationID)
}

func (q *marketingQueriesImpl) ListPosts(ctx context.Context, actor shared.Actor) ([]*SocialPostView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	return q.repo.ListPosts(ctx, actor.OrganizationID)
}
