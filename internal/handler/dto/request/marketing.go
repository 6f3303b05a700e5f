package request

import (
	"strings"
	"time"

	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Subject  string `json:"subject" binding:"required,max=200"`
	BodyHTML string `json:"body_html" binding:"required"`
}

func (r CreateTemplateRequest) ToCommand() commands.CreateTemplateRequest {
	return commands.CreateTemplateRequest{
		Name:     strings.TrimSpace(r.Name),
		Subject:  strings.TrimSpace(r.Subject),
		BodyHTML: r.BodyHTML,
	}
}

// SendEmailsRequest targets either explicit recipients or an audience.
type SendEmailsRequest struct {
	TemplateID   uuid.UUID   `json:"template_id" binding:"required"`
	RecipientIDs []uuid.UUID `json:"recipient_ids" binding:"required_without=Audience,max=1000"`
	Audience     string      `json:"audience" binding:"omitempty,oneof=newsletter"`
}

func (r SendEmailsRequest) ToCommand() commands.SendEmailsRequest {
	return commands.SendEmailsRequest{
		TemplateID:   r.TemplateID,
		RecipientIDs: r.RecipientIDs,
		Audience:     r.Audience,
	}
}

type PostRequest struct {
	Platform    string     `json:"platform" binding:"required,oneof=instagram facebook tiktok linkedin"`
	Content     string     `json:"content" binding:"required,max=2200"`
	ImageURL    *string    `json:"image_url,omitempty" binding:"omitempty,url"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

func (r PostRequest) ToCommand() commands.PostRequest {
	return commands.PostRequest{
		Platform:    r.Platform,
		Content:     strings.TrimSpace(r.Content),
		ImageURL:    r.ImageURL,
		ScheduledAt: r.ScheduledAt,
	}
}

type PublishPostRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

type SubscribeQuery struct {
	Email        string `form:"email" binding:"required,email"`
	Organization string `form:"organization" binding:"required,max=63"`
}
