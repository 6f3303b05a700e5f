package commands

import (
	"context"
	"strings"
	"time"

	"salon-booking/internal/domain/marketing"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound = errs.New("email template not found")
	ErrPostNotFound     = errs.New("social post not found")
	ErrNoRecipients     = errs.New("no recipients")
	ErrAlreadyPublished = errs.New("post already published")
)

const AudienceNewsletter = "newsletter"

type CreateTemplateRequest struct {
	Name     string
	Subject  string
	BodyHTML string
}

type SendEmailsRequest struct {
	TemplateID   uuid.UUID
	RecipientIDs []uuid.UUID
	Audience     string
}

type PostRequest struct {
	Platform    string
	Content     string
	ImageURL    *string
	ScheduledAt *time.Time
}

// OrganizationLookup resolves a tenant from its public slug.
type OrganizationLookup interface {
	FindBySlug(ctx context.Context, slug string) (*queries.OrganizationView, error)
}

type MarketingCommands interface {
	CreateTemplate(ctx context.Context, actor shared.Actor, req CreateTemplateRequest) (*queries.EmailTemplateView, error)
	SendEmails(ctx context.Context, actor shared.Actor, req SendEmailsRequest) (int, error)
	CreatePost(ctx context.Context, actor shared.Actor, req PostRequest) (*queries.SocialPostView, error)
	UpdatePost(ctx context.Context, actor shared.Actor, id uuid.UUID, req PostRequest) (*queries.SocialPostView, error)
	DeletePost(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	PublishPost(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.SocialPostView, error)
	Subscribe(ctx context.Context, organizationSlug, email string) (bool, error)
}

type marketingCommandsImpl struct {
	uow   shared.UnitOfWork
	orgs  OrganizationLookup
	clock clock.Clock
}

func NewMarketingCommands(uow shared.UnitOfWork, orgs OrganizationLookup, clk clock.Clock) MarketingCommands {
	return &marketingCommandsImpl{uow: uow, orgs: orgs, clock: clk}
}

func (uc *marketingCommandsImpl) CreateTemplate(ctx context.Context, actor shared.Actor, req CreateTemplateRequest) (*queries.EmailTemplateView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	t, err := marketing.NewEmailTemplate(actor.OrganizationID, req.Name, req.Subject, req.BodyHTML, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Marketing().CreateTemplate(ctx, tx.DB(), t); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTemplateView(t), nil
}

type marketingEmailPayload struct {
	TemplateID uuid.UUID `json:"template_id"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	BodyHTML   string    `json:"body_html"`
}

// SendEmails renders the template for every recipient and queues one job each.
func (uc *marketingCommandsImpl) SendEmails(ctx context.Context, actor shared.Actor, req SendEmailsRequest) (int, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return 0, ErrAccessDenied
	}
	if req.Audience != "" && req.Audience != AudienceNewsletter {
		return 0, errs.Mark(errs.New("unknown audience"), ErrDomainValidation)
	}
	if req.Audience == "" && len(req.RecipientIDs) == 0 {
		return 0, ErrNoRecipients
	}

	queued := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		queued = 0
		t, err := tx.Marketing().TemplateByID(ctx, tx.DB(), req.TemplateID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTemplateNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if t.OrganizationID() != actor.OrganizationID {
			return ErrTemplateNotFound
		}

		org, err := tx.Reads().OrganizationByID(ctx, actor.OrganizationID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		recipients, err := uc.recipients(ctx, tx, actor, req)
		if err != nil {
			return err
		}
		if len(recipients) == 0 {
			return ErrNoRecipients
		}

		now := uc.clock.Now()
		for _, r := range recipients {
			r.Salon = org.Name
			subject, body, err := t.Render(r)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			payload := marketingEmailPayload{TemplateID: t.ID(), To: r.Email, Subject: subject, BodyHTML: body}
			if err := enqueueJob(ctx, tx, jobKindEmail, topicMarketingEmail, payload, now); err != nil {
				return err
			}
			queued++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return queued, nil
}

func (uc *marketingCommandsImpl) recipients(ctx context.Context, tx shared.Tx, actor shared.Actor, req SendEmailsRequest) ([]marketing.Recipient, error) {
	if req.Audience == AudienceNewsletter {
		out, err := tx.Marketing().NewsletterAudience(ctx, tx.DB(), actor.OrganizationID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return out, nil
	}

	out := make([]marketing.Recipient, 0, len(req.RecipientIDs))
	seen := make(map[uuid.UUID]struct{}, len(req.RecipientIDs))
	for _, id := range req.RecipientIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		u, err := tx.Reads().UserByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if u.OrganizationID != actor.OrganizationID {
			return nil, ErrUserNotFound
		}
		if !u.IsActive {
			continue
		}
		out = append(out, marketing.Recipient{Email: u.Email, FirstName: u.FirstName, LastName: u.LastName})
	}
	return out, nil
}

func (uc *marketingCommandsImpl) CreatePost(ctx context.Context, actor shared.Actor, req PostRequest) (*queries.SocialPostView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	platform, err := marketing.ParsePlatform(req.Platform)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	p, err := marketing.NewSocialPost(actor.OrganizationID, platform, req.Content, cleanURL(req.ImageURL), req.ScheduledAt, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Marketing().CreatePost(ctx, tx.DB(), p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPostView(p), nil
}

func (uc *marketingCommandsImpl) UpdatePost(ctx context.Context, actor shared.Actor, id uuid.UUID, req PostRequest) (*queries.SocialPostView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	platform, err := marketing.ParsePlatform(req.Platform)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var post *marketing.SocialPost
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPost(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if err := p.Edit(platform, req.Content, cleanURL(req.ImageURL), req.ScheduledAt, uc.clock.Now()); err != nil {
			return markPostErr(err)
		}
		if err := tx.Marketing().SavePost(ctx, tx.DB(), p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPostView(post), nil
}

func (uc *marketingCommandsImpl) DeletePost(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if !actor.AtLeast(user.RoleAdmin) {
		return ErrAccessDenied
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Marketing().DeletePost(ctx, tx.DB(), actor.OrganizationID, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPostNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

type socialPublishPayload struct {
	PostID   uuid.UUID `json:"post_id"`
	Platform string    `json:"platform"`
	Content  string    `json:"content"`
	ImageURL *string   `json:"image_url,omitempty"`
}

func (uc *marketingCommandsImpl) PublishPost(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.SocialPostView, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}

	var post *marketing.SocialPost
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := findPost(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := p.Publish(now); err != nil {
			return markPostErr(err)
		}
		if err := tx.Marketing().SavePost(ctx, tx.DB(), p); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		payload := socialPublishPayload{PostID: p.ID(), Platform: string(p.Platform()), Content: p.Content(), ImageURL: p.ImageURL()}
		if err := enqueueJob(ctx, tx, jobKindSocial, topicSocialPublish, payload, now); err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPostView(post), nil
}

// Subscribe is public. It reports whether the address was new.
func (uc *marketingCommandsImpl) Subscribe(ctx context.Context, organizationSlug, email string) (bool, error) {
	org, err := uc.orgs.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(organizationSlug)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrOrganizationNotFound
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	sub, err := marketing.NewSubscriber(org.ID, strings.ToLower(strings.TrimSpace(email)), uc.clock.Now())
	if err != nil {
		return false, errs.Mark(err, ErrDomainValidation)
	}

	var created bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Marketing().Subscribe(ctx, tx.DB(), sub)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func findPost(ctx context.Context, tx shared.Tx, actor shared.Actor, id uuid.UUID) (*marketing.SocialPost, error) {
	p, err := tx.Marketing().PostByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if p.OrganizationID() != actor.OrganizationID {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func markPostErr(err error) error {
	if errs.Is(err, marketing.ErrAlreadyPublished) {
		return errs.Mark(err, ErrAlreadyPublished)
	}
	return errs.Mark(err, ErrDomainValidation)
}

func cleanURL(u *string) *string {
	if u == nil || strings.TrimSpace(*u) == "" {
		return nil
	}
	s := strings.TrimSpace(*u)
	return &s
}

func toTemplateView(t *marketing.EmailTemplate) *queries.EmailTemplateView {
	return &queries.EmailTemplateView{
		ID:        t.ID(),
		Name:      t.Name(),
		Subject:   t.Subject(),
		BodyHTML:  t.BodyHTML(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func toPostView(p *marketing.SocialPost) *queries.SocialPostView {
	return &queries.SocialPostView{
		ID:          p.ID(),
		Platform:    string(p.Platform()),
		Content:     p.Content(),
		ImageURL:    p.ImageURL(),
		ScheduledAt: p.ScheduledAt(),
		Status:      string(p.Status()),
		PublishedAt: p.PublishedAt(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
