package repository

import (
	"context"

	"salon-booking/internal/domain/marketing"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MarketingWriteQueries interface {
	CreateEmailTemplate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEmailTemplateParams) error
	GetEmailTemplateByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.EmailTemplates, error)
	CreateSocialPost(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSocialPostParams) error
	GetSocialPostByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SocialPosts, error)
	UpdateSocialPost(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSocialPostParams) error
	DeleteSocialPost(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteSocialPostParams) (int64, error)
	UpsertNewsletterSubscriber(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertNewsletterSubscriberParams) (int64, error)
	ListNewsletterAudience(ctx context.Context, db sqlc.DBTX, organizationID uuid.UUID) ([]sqlc.ListNewsletterAudienceRow, error)
}

type MarketingRepository struct {
	queries MarketingWriteQueries
	db      sqlc.DBTX
}

func NewMarketingRepository(queries MarketingWriteQueries, db sqlc.DBTX) *MarketingRepository {
	return &MarketingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MarketingRepository) CreateTemplate(ctx context.Context, tx sqlc.DBTX, t *marketing.EmailTemplate) error {
	err := r.queries.CreateEmailTemplate(ctx, tx, sqlc.CreateEmailTemplateParams{
		ID:             t.ID(),
		OrganizationID: t.OrganizationID(),
		Name:           t.Name(),
		Subject:        t.Subject(),
		BodyHTML:       t.BodyHTML(),
		CreatedAt:      pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(t.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create email template", err)
	}
	return nil
}

func (r *MarketingRepository) TemplateByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*marketing.EmailTemplate, error) {
	row, err := r.queries.GetEmailTemplateByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("email template not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get email template", err)
	}

	t, err := converter.TemplateFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map email template", err)
	}
	return t, nil
}

func (r *MarketingRepository) CreatePost(ctx context.Context, tx sqlc.DBTX, p *marketing.SocialPost) error {
	err := r.queries.CreateSocialPost(ctx, tx, sqlc.CreateSocialPostParams{
		ID:             p.ID(),
		OrganizationID: p.OrganizationID(),
		Platform:       string(p.Platform()),
		Content:        p.Content(),
		ImageURL:       pgconv.StringPtrToPgtype(p.ImageURL()),
		ScheduledAt:    pgconv.TimePtrToPgtype(p.ScheduledAt()),
		Status:         string(p.Status()),
		PublishedAt:    pgconv.TimePtrToPgtype(p.PublishedAt()),
		CreatedAt:      pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create social post", err)
	}
	return nil
}

func (r *MarketingRepository) PostByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*marketing.SocialPost, error) {
	row, err := r.queries.GetSocialPostByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("social post not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get social post", err)
	}

	p, err := converter.PostFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map social post", err)
	}
	return p, nil
}

func (r *MarketingRepository) SavePost(ctx context.Context, tx sqlc.DBTX, p *marketing.SocialPost) error {
	if err := r.queries.UpdateSocialPost(ctx, tx, converter.PostToUpdateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to update social post", err)
	}
	return nil
}

func (r *MarketingRepository) DeletePost(ctx context.Context, tx sqlc.DBTX, organizationID, id uuid.UUID) error {
	n, err := r.queries.DeleteSocialPost(ctx, tx, sqlc.DeleteSocialPostParams{ID: id, OrganizationID: organizationID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete social post", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("social post not found", nil, infra.KindNotFound)
	}
	return nil
}

// Subscribe reports false when the address was already on the list.
func (r *MarketingRepository) Subscribe(ctx context.Context, tx sqlc.DBTX, s *marketing.Subscriber) (bool, error) {
	n, err := r.queries.UpsertNewsletterSubscriber(ctx, tx, sqlc.UpsertNewsletterSubscriberParams{
		ID:             s.ID(),
		OrganizationID: s.OrganizationID(),
		Email:          s.Email(),
		SubscribedAt:   pgconv.TimeToPgtype(s.SubscribedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to subscribe", err)
	}
	return n > 0, nil
}

func (r *MarketingRepository) NewsletterAudience(ctx context.Context, tx sqlc.DBTX, organizationID uuid.UUID) ([]marketing.Recipient, error) {
	rows, err := r.queries.ListNewsletterAudience(ctx, tx, organizationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list newsletter audience", err)
	}

	out := make([]marketing.Recipient, 0, len(rows))
	for _, row := range rows {
		out = append(out, marketing.Recipient{
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	return out, nil
}
