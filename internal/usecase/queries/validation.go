package queries

import (
	"context"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ValidationQueries interface {
	Context(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*ValidationContext, error)
}

type validationQueriesImpl struct {
	reservations ReservationReadStore
	users        UserReadStore
	orgs         OrganizationReadStore
	loyalty      LoyaltyReadStore
	clock        clock.Clock
}

func NewValidationQueries(
	reservations ReservationReadStore,
	users UserReadStore,
	orgs OrganizationReadStore,
	loyalty LoyaltyReadStore,
	clock clock.Clock,
) ValidationQueries {
	return &validationQueriesImpl{
		reservations: reservations,
		users:        users,
		orgs:         orgs,
		loyalty:      loyalty,
		clock:        clock,
	}
}

// Context is advisory: the validation command recomputes eligibility under lock.
func (q *validationQueriesImpl) Context(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*ValidationContext, error) {
	if !actor.AtLeast(user.RoleStaff) {
		return nil, ErrAccessDenied
	}

	res, err := q.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(res.OrganizationID) {
		return nil, ErrReservationNotFound
	}

	org, err := q.orgs.FindByID(ctx, res.OrganizationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	client, err := q.users.FindByID(ctx, res.ClientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	profile, err := q.loyalty.Profile(ctx, res.ClientID)
	if err != nil {
		return nil, err
	}
	asReferred, err := q.loyalty.AsReferred(ctx, res.ClientID)
	if err != nil {
		return nil, err
	}
	asSponsor, err := q.loyalty.AsSponsor(ctx, res.ClientID)
	if err != nil {
		return nil, err
	}
	birthday, err := q.loyalty.Birthday(ctx, res.ClientID, now.Year())
	if err != nil {
		return nil, err
	}

	th := org.Settings.Thresholds
	elig, refStatus := shared.ComputeEligibility(shared.EligibilityInput{
		ClientID:   res.ClientID,
		Profile:    profile,
		Thresholds: th,
		AsReferred: asReferred,
		AsSponsor:  asSponsor,
		BirthDate:  client.BirthDate,
		Birthday:   birthday,
		Now:        now,
	})

	out := &ValidationContext{
		ReservationID: res.ID,
		Status:        res.Status,
		TotalCents:    res.TotalCents,
		Eligibility:   elig,
		Defaults:      toDiscountDefaults(elig.Defaults()),
		Rates:         org.Settings.Rates,
		Referral:      refStatus,
		Birthday: BirthdayInfo{
			BirthDate: client.BirthDate,
			Granted:   birthday != nil,
			Used:      birthday != nil && birthday.IsUsed(),
			Eligible:  elig.Birthday,
		},
	}
	if profile != nil {
		out.Loyalty = LoyaltySummary{
			IndividualServices: profile.IndividualServices(),
			PackageSessions:    profile.PackageSessions(),
			PackagesCompleted:  profile.PackagesCompleted(),
			ReferralCode:       profile.ReferralCode().Value(),
			TotalSpentCents:    profile.TotalSpentCents(),
		}
		out.VisitsUntilLoyalty = profile.VisitsUntilLoyalty(th)
	}
	return out, nil
}

func toDiscountDefaults(s payment.DiscountSet) DiscountDefaults {
	return DiscountDefaults{
		Loyalty:  s.Loyalty,
		Package:  s.Package,
		Birthday: s.Birthday,
		Referral: string(s.Referral),
	}
}
