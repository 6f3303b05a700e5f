package converter

import (
	"fmt"

	"salon-booking/internal/domain/marketing"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func TemplateFromRow(row sqlc.EmailTemplates) (*marketing.EmailTemplate, error) {
	t, err := marketing.ReconstructEmailTemplate(
		row.ID, row.OrganizationID, row.Name, row.Subject, row.BodyHTML,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("email template %s: %w", row.ID, err)
	}
	return t, nil
}

func PostFromRow(row sqlc.SocialPosts) (*marketing.SocialPost, error) {
	platform, err := marketing.ParsePlatform(row.Platform)
	if err != nil {
		return nil, fmt.Errorf("social post %s: %w", row.ID, err)
	}
	return marketing.ReconstructSocialPost(
		row.ID, row.OrganizationID, platform, row.Content,
		pgconv.StringPtrFromPgtype(row.ImageURL),
		pgconv.TimePtrFromPgtype(row.ScheduledAt),
		marketing.PostStatus(row.Status),
		pgconv.TimePtrFromPgtype(row.PublishedAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PostToUpdateParams(p *marketing.SocialPost) sqlc.UpdateSocialPostParams {
	return sqlc.UpdateSocialPostParams{
		Platform:    string(p.Platform()),
		Content:     p.Content(),
		ImageURL:    pgconv.StringPtrToPgtype(p.ImageURL()),
		ScheduledAt: pgconv.TimePtrToPgtype(p.ScheduledAt()),
		Status:      string(p.Status()),
		PublishedAt: pgconv.TimePtrToPgtype(p.PublishedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
		ID:          p.ID(),
	}
}
