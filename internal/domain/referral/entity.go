package referral

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfReferral      = errors.New("client cannot refer themselves")
	ErrRewardAlreadyUsed = errors.New("referral reward already used")
)

type Referral struct {
	id                   uuid.UUID
	organizationID       uuid.UUID
	sponsorID            uuid.UUID
	referredID           uuid.UUID
	sponsorRewardUsedAt  *time.Time
	referredRewardUsedAt *time.Time
	createdAt            time.Time
}

func NewReferral(organizationID, sponsorID, referredID uuid.UUID, now time.Time) (*Referral, error) {
	if sponsorID == referredID {
		return nil, ErrSelfReferral
	}
	return &Referral{
		id:             uuid.New(),
		organizationID: organizationID,
		sponsorID:      sponsorID,
		referredID:     referredID,
		createdAt:      now,
	}, nil
}

func ReconstructReferral(id, organizationID, sponsorID, referredID uuid.UUID, sponsorUsedAt, referredUsedAt *time.Time, createdAt time.Time) *Referral {
	return &Referral{
		id:                   id,
		organizationID:       organizationID,
		sponsorID:            sponsorID,
		referredID:           referredID,
		sponsorRewardUsedAt:  sponsorUsedAt,
		referredRewardUsedAt: referredUsedAt,
		createdAt:            createdAt,
	}
}

func (r *Referral) UseSponsorReward(now time.Time) error {
	if r.sponsorRewardUsedAt != nil {
		return ErrRewardAlreadyUsed
	}
	r.sponsorRewardUsedAt = &now
	return nil
}

func (r *Referral) UseReferredReward(now time.Time) error {
	if r.referredRewardUsedAt != nil {
		return ErrRewardAlreadyUsed
	}
	r.referredRewardUsedAt = &now
	return nil
}

func (r *Referral) ID() uuid.UUID                    { return r.id }
func (r *Referral) OrganizationID() uuid.UUID        { return r.organizationID }
func (r *Referral) SponsorID() uuid.UUID             { return r.sponsorID }
func (r *Referral) ReferredID() uuid.UUID            { return r.referredID }
func (r *Referral) SponsorRewardUsedAt() *time.Time  { return r.sponsorRewardUsedAt }
func (r *Referral) ReferredRewardUsedAt() *time.Time { return r.referredRewardUsedAt }
func (r *Referral) CreatedAt() time.Time             { return r.createdAt }
