package readstore

import (
	"context"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MarketingReadQueries interface {
	ListEmailTemplates(ctx context.Context, db sqlc.DBTX, organizationID uuid.UUID) ([]sqlc.EmailTemplates, error)
	ListSocialPosts(ctx context.Context, db sqlc.DBTX, organizationID uuid.UUID) ([]sqlc.SocialPosts, error)
}

type MarketingReadStore struct {
	queries MarketingReadQueries
	db      sqlc.DBTX
}

func NewMarketingReadStore(queries MarketingReadQueries, db sqlc.DBTX) *MarketingReadStore {
	return &MarketingReadStore{queries: queries, db: db}
}

func (r *MarketingReadStore) ListTemplates(ctx context.Context, organizationID uuid.UUID) ([]*queries.EmailTemplateView, error) {
	rows, err := r.queries.ListEmailTemplates(ctx, r.db, organizationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list email templates", err)
	}

	out := make([]*queries.EmailTemplateView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.EmailTemplateView{
			ID:        row.ID,
			Name:      row.Name,
			Subject:   row.Subject,
			BodyHTML:  row.BodyHTML,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}

func (r *MarketingReadStore) ListPosts(ctx context.Context, organizationID uuid.UUID) ([]*queries.SocialPostView, error) {
	rows, err := r.queries.ListSocialPosts(ctx, r.db, organizationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list social posts", err)
	}

	out := make([]*queries.SocialPostView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.SocialPostView{
			ID:          row.ID,
			Platform:    row.Platform,
			Content:     row.Content,
			ImageURL:    pgconv.StringPtrFromPgtype(row.ImageURL),
			ScheduledAt: pgconv.TimePtrFromPgtype(row.ScheduledAt),
			Status:      row.Status,
			PublishedAt: pgconv.TimePtrFromPgtype(row.PublishedAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}
