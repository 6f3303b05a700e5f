package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidThreshold = errors.New("loyalty thresholds must be at least 1")
	ErrNegativeCounter  = errors.New("loyalty counters cannot be negative")
)

// Thresholds are tenant-configurable.
type Thresholds struct {
	IndividualServices int `json:"individual_services"`
	CompletedPackages  int `json:"completed_packages"`
	SessionsPerPackage int `json:"sessions_per_package"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		IndividualServices: 5,
		CompletedPackages:  2,
		SessionsPerPackage: 4,
	}
}

func (t Thresholds) Validate() error {
	if t.IndividualServices < 1 || t.CompletedPackages < 1 || t.SessionsPerPackage < 1 {
		return ErrInvalidThreshold
	}
	return nil
}

// Visit is what a completed, paid validation contributes to the profile.
type Visit struct {
	IndividualServices int
	PackageSessions    int
	AmountCents        int64
	LoyaltyRedeemed    bool
	PackageRedeemed    bool
}

type Profile struct {
	clientID           uuid.UUID
	organizationID     uuid.UUID
	individualServices int
	packageSessions    int
	packagesCompleted  int
	referralCode       ReferralCode
	totalSpentCents    int64
	updatedAt          time.Time
}

func NewProfile(clientID, organizationID uuid.UUID, code ReferralCode) *Profile {
	return &Profile{
		clientID:       clientID,
		organizationID: organizationID,
		referralCode:   code,
	}
}

func ReconstructProfile(
	clientID, organizationID uuid.UUID,
	individualServices, packageSessions, packagesCompleted int,
	code ReferralCode,
	totalSpentCents int64,
	updatedAt time.Time,
) (*Profile, error) {
	if individualServices < 0 || packageSessions < 0 || packagesCompleted < 0 || totalSpentCents < 0 {
		return nil, ErrNegativeCounter
	}
	return &Profile{
		clientID:           clientID,
		organizationID:     organizationID,
		individualServices: individualServices,
		packageSessions:    packageSessions,
		packagesCompleted:  packagesCompleted,
		referralCode:       code,
		totalSpentCents:    totalSpentCents,
		updatedAt:          updatedAt,
	}, nil
}

func (p *Profile) LoyaltyEligible(th Thresholds) bool {
	return p.individualServices >= th.IndividualServices
}

func (p *Profile) PackageEligible(th Thresholds) bool {
	return p.packagesCompleted >= th.CompletedPackages
}

func (p *Profile) VisitsUntilLoyalty(th Thresholds) int {
	return max(0, th.IndividualServices-p.individualServices)
}

// RecordVisit applies a paid visit. A redeemed loyalty discount resets the
// individual counter and the visit itself does not count toward the next one.
// A redeemed package discount resets completed packages; sessions bought in the
// same visit start the next package.
func (p *Profile) RecordVisit(v Visit, th Thresholds, now time.Time) {
	if v.LoyaltyRedeemed {
		p.individualServices = 0
	} else {
		p.individualServices += max(0, v.IndividualServices)
	}

	if v.PackageRedeemed {
		p.packagesCompleted = 0
	}
	p.packageSessions += max(0, v.PackageSessions)
	per := max(1, th.SessionsPerPackage)
	for p.packageSessions >= per {
		p.packageSessions -= per
		p.packagesCompleted++
	}

	p.totalSpentCents += max(0, v.AmountCents)
	p.updatedAt = now
}

func (p *Profile) ClientID() uuid.UUID        { return p.clientID }
func (p *Profile) OrganizationID() uuid.UUID  { return p.organizationID }
func (p *Profile) IndividualServices() int    { return p.individualServices }
func (p *Profile) PackageSessions() int       { return p.packageSessions }
func (p *Profile) PackagesCompleted() int     { return p.packagesCompleted }
func (p *Profile) ReferralCode() ReferralCode { return p.referralCode }
func (p *Profile) TotalSpentCents() int64     { return p.totalSpentCents }
func (p *Profile) UpdatedAt() time.Time       { return p.updatedAt }
