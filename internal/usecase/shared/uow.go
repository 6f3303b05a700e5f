package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/giftcard"
	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/marketing"
	"salon-booking/internal/domain/organization"
	"salon-booking/internal/domain/referral"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/domain/user"
	sqlc "salon-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Organizations() OrganizationRepository
	Users() UserRepository
	Loyalty() LoyaltyRepository
	Referrals() ReferralRepository
	Reservations() ReservationRepository
	GiftCards() GiftCardRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Marketing() MarketingRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	OrganizationByID(ctx context.Context, id uuid.UUID) (*OrganizationSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	SponsorByReferralCode(ctx context.Context, code string) (*SponsorSnapshot, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, org *organization.Organization) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*organization.Organization, error)
	UpdateSettings(ctx context.Context, tx sqlc.DBTX, org *organization.Organization) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type LoyaltyRepository interface {
	CreateProfile(ctx context.Context, tx sqlc.DBTX, p *loyalty.Profile) error
	ProfileForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) (*loyalty.Profile, error)
	SaveProfile(ctx context.Context, tx sqlc.DBTX, p *loyalty.Profile) error
	GrantBirthday(ctx context.Context, tx sqlc.DBTX, d *loyalty.BirthdayDiscount) (bool, error)
	BirthdayForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID, year int) (*loyalty.BirthdayDiscount, error)
	SaveBirthday(ctx context.Context, tx sqlc.DBTX, d *loyalty.BirthdayDiscount) error
	ClientsBornIn(ctx context.Context, tx sqlc.DBTX, month time.Month) ([]uuid.UUID, error)
}

type ReferralRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *referral.Referral) error
	AsReferredForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) (*referral.Referral, error)
	AsSponsorForUpdate(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID) ([]*referral.Referral, error)
	SaveRewards(ctx context.Context, tx sqlc.DBTX, r *referral.Referral) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Save(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, expectedVersion int32) error
}

type GiftCardRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, g *giftcard.GiftCard) error
	FindByCodeForUpdate(ctx context.Context, tx sqlc.DBTX, code string) (*giftcard.GiftCard, error)
	SaveBalance(ctx context.Context, tx sqlc.DBTX, g *giftcard.GiftCard) error
	RecordTransaction(ctx context.Context, tx sqlc.DBTX, cardID uuid.UUID, reservationID *uuid.UUID, amountCents, balanceAfterCents int64, at time.Time) error
	ExpireDue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, resultID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (int64, error)
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type MarketingRepository interface {
	CreateTemplate(ctx context.Context, tx sqlc.DBTX, t *marketing.EmailTemplate) error
	TemplateByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*marketing.EmailTemplate, error)
	CreatePost(ctx context.Context, tx sqlc.DBTX, p *marketing.SocialPost) error
	PostByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*marketing.SocialPost, error)
	SavePost(ctx context.Context, tx sqlc.DBTX, p *marketing.SocialPost) error
	DeletePost(ctx context.Context, tx sqlc.DBTX, organizationID, id uuid.UUID) error
	Subscribe(ctx context.Context, tx sqlc.DBTX, s *marketing.Subscriber) (bool, error)
	NewsletterAudience(ctx context.Context, tx sqlc.DBTX, organizationID uuid.UUID) ([]marketing.Recipient, error)
}
