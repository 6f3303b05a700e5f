package marketing

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlatform  = errors.New("invalid social platform")
	ErrInvalidContent   = errors.New("post content must be between 1 and 2200 characters")
	ErrAlreadyPublished = errors.New("post already published")
	ErrInvalidSchedule  = errors.New("scheduled time must be in the future")
)

const maxPostLength = 2200

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
)

func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(s))
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformLinkedIn:
		return p, nil
	default:
		return "", ErrInvalidPlatform
	}
}

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
)

type SocialPost struct {
	id             uuid.UUID
	organizationID uuid.UUID
	platform       Platform
	content        string
	imageURL       *string
	scheduledAt    *time.Time
	status         PostStatus
	publishedAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewSocialPost(organizationID uuid.UUID, platform Platform, content string, imageURL *string, scheduledAt *time.Time, now time.Time) (*SocialPost, error) {
	p := &SocialPost{
		id:             uuid.New(),
		organizationID: organizationID,
		createdAt:      now,
	}
	if err := p.Edit(platform, content, imageURL, scheduledAt, now); err != nil {
		return nil, err
	}
	return p, nil
}

func ReconstructSocialPost(
	id, organizationID uuid.UUID,
	platform Platform,
	content string,
	imageURL *string,
	scheduledAt *time.Time,
	status PostStatus,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *SocialPost {
	return &SocialPost{
		id:             id,
		organizationID: organizationID,
		platform:       platform,
		content:        content,
		imageURL:       imageURL,
		scheduledAt:    scheduledAt,
		status:         status,
		publishedAt:    publishedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *SocialPost) Edit(platform Platform, content string, imageURL *string, scheduledAt *time.Time, now time.Time) error {
	if p.status == PostPublished {
		return ErrAlreadyPublished
	}
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxPostLength {
		return ErrInvalidContent
	}
	if scheduledAt != nil && !scheduledAt.After(now) {
		return ErrInvalidSchedule
	}

	p.platform = platform
	p.content = content
	p.imageURL = imageURL
	p.scheduledAt = scheduledAt
	p.status = PostDraft
	if scheduledAt != nil {
		p.status = PostScheduled
	}
	p.updatedAt = now
	return nil
}

func (p *SocialPost) Publish(now time.Time) error {
	if p.status == PostPublished {
		return ErrAlreadyPublished
	}
	p.status = PostPublished
	p.publishedAt = &now
	p.updatedAt = now
	return nil
}

func (p *SocialPost) ID() uuid.UUID             { return p.id }
func (p *SocialPost) OrganizationID() uuid.UUID { return p.organizationID }
func (p *SocialPost) Platform() Platform        { return p.platform }
func (p *SocialPost) Content() string           { return p.content }
func (p *SocialPost) ImageURL() *string         { return p.imageURL }
func (p *SocialPost) ScheduledAt() *time.Time   { return p.scheduledAt }
func (p *SocialPost) Status() PostStatus        { return p.status }
func (p *SocialPost) PublishedAt() *time.Time   { return p.publishedAt }
func (p *SocialPost) CreatedAt() time.Time      { return p.createdAt }
func (p *SocialPost) UpdatedAt() time.Time      { return p.updatedAt }
