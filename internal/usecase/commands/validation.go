package commands

import (
	"context"
	"strings"
	"time"

	"salon-booking/internal/domain/giftcard"
	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/referral"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDiscountNotEligible = errs.New("client is not eligible for discount")
	ErrGiftCardNotFound    = errs.New("gift card not found")
	ErrGiftCardUnusable    = errs.New("gift card cannot be used")
)

const endpointValidatePayment = "POST /api/admin/reservations/:id/validate"

type DiscountRequest struct {
	Loyalty     bool   `json:"loyalty"`
	Package     bool   `json:"package"`
	Birthday    bool   `json:"birthday"`
	Referral    string `json:"referral"`
	ManualCents int64  `json:"manual_cents"`
}

type ValidatePaymentRequest struct {
	Attendance      string          `json:"attendance"`
	Settlement      string          `json:"settlement"`
	DepositCents    int64           `json:"deposit_cents"`
	Method          string          `json:"method"`
	Discounts       DiscountRequest `json:"discounts"`
	GiftCardCode    *string         `json:"gift_card_code,omitempty"`
	ExpectedVersion *int32          `json:"expected_version,omitempty"`
}

// ValidationResult carries the breakdown only for the call that performed
// the validation; a replayed request returns the stored reservation alone.
type ValidationResult struct {
	Reservation *queries.ReservationView
	Breakdown   *payment.Breakdown
	Replayed    bool
}

type ValidationCommands interface {
	Validate(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, req ValidatePaymentRequest, idempotencyKey uuid.UUID) (*ValidationResult, error)
}

type validationCommandsImpl struct {
	uow   shared.UnitOfWork
	reads queries.ReservationQueries
	clock clock.Clock
	guard idempotencyGuard
}

func NewValidationCommands(
	uow shared.UnitOfWork,
	reads queries.ReservationQueries,
	clk clock.Clock,
	idemCfg config.IdempotencyConfig,
) ValidationCommands {
	return &validationCommandsImpl{
		uow:   uow,
		reads: reads,
		clock: clk,
		guard: newIdempotencyGuard(uow, clk, idemCfg.TTL),
	}
}

type parsedValidation struct {
	attendance   payment.Attendance
	settlement   payment.Settlement
	depositCents int64
	method       payment.Method
	discounts    payment.DiscountSet
	cardCode     *giftcard.Code
}

func parseValidation(req ValidatePaymentRequest) (parsedValidation, error) {
	p := parsedValidation{depositCents: req.DepositCents}
	var err error
	if p.attendance, err = payment.ParseAttendance(req.Attendance); err != nil {
		return p, err
	}
	if p.settlement, err = payment.ParseSettlement(req.Settlement); err != nil {
		return p, err
	}
	if p.method, err = payment.ParseMethod(req.Method); err != nil {
		return p, err
	}
	ref, err := payment.ParseReferral(req.Discounts.Referral)
	if err != nil {
		return p, err
	}
	p.discounts = payment.DiscountSet{
		Loyalty:     req.Discounts.Loyalty,
		Package:     req.Discounts.Package,
		Birthday:    req.Discounts.Birthday,
		ManualCents: req.Discounts.ManualCents,
	}.WithReferral(ref)
	if err := p.discounts.Validate(); err != nil {
		return p, err
	}

	if req.GiftCardCode != nil && strings.TrimSpace(*req.GiftCardCode) != "" {
		code, err := giftcard.NewCode(strings.ToUpper(strings.TrimSpace(*req.GiftCardCode)))
		if err != nil {
			return p, err
		}
		p.cardCode = &code
	}
	return p, nil
}

func (uc *validationCommandsImpl) Validate(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, req ValidatePaymentRequest, idempotencyKey uuid.UUID) (*ValidationResult, error) {
	if !actor.AtLeast(user.RoleStaff) {
		return nil, ErrAccessDenied
	}
	parsed, err := parseValidation(req)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	claim, err := uc.guard.claim(ctx, idempotencyKey, actor.UserID, endpointValidatePayment, struct {
		ReservationID uuid.UUID              `json:"reservation_id"`
		Request       ValidatePaymentRequest `json:"request"`
	}{reservationID, req})
	if err != nil {
		return nil, err
	}
	if claim.ReplayID != nil {
		view, err := uc.reads.GetByIDSystem(ctx, *claim.ReplayID)
		if err != nil {
			return nil, err
		}
		return &ValidationResult{Reservation: view, Replayed: true}, nil
	}

	var outcome payment.Outcome
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := uc.validateInTx(ctx, tx, actor, reservationID, req.ExpectedVersion, parsed)
		if err != nil {
			return err
		}
		outcome = o
		return uc.guard.complete(ctx, tx, claim, reservationID)
	})
	if err != nil {
		uc.guard.release(ctx, claim)
		return nil, err
	}

	metrics.RecordValidation(string(outcome.PaymentStatus), outcome.Breakdown.Kinds(), outcome.GiftCardUsedCents())

	view, err := uc.reads.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	b := outcome.Breakdown
	return &ValidationResult{Reservation: view, Breakdown: &b}, nil
}

// validateInTx locks every row the outcome touches before deciding, so the
// eligibility it checks is the one it consumes.
func (uc *validationCommandsImpl) validateInTx(
	ctx context.Context,
	tx shared.Tx,
	actor shared.Actor,
	reservationID uuid.UUID,
	expectedVersion *int32,
	p parsedValidation,
) (payment.Outcome, error) {
	now := uc.clock.Now()

	res, err := lockReservation(ctx, tx, actor, reservationID)
	if err != nil {
		return payment.Outcome{}, err
	}
	version := res.Version()
	if expectedVersion != nil && *expectedVersion != version {
		return payment.Outcome{}, ErrReservationConflict
	}
	if err := ensureValidatable(res); err != nil {
		return payment.Outcome{}, err
	}

	org, err := tx.Reads().OrganizationByID(ctx, res.OrganizationID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return payment.Outcome{}, ErrOrganizationNotFound
		}
		return payment.Outcome{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	settings := org.Settings

	rewards, err := lockRewards(ctx, tx, res.ClientID(), now)
	if err != nil {
		return payment.Outcome{}, err
	}
	eligibility, _ := shared.ComputeEligibility(shared.EligibilityInput{
		ClientID:   res.ClientID(),
		Profile:    rewards.profile,
		Thresholds: settings.Thresholds,
		AsReferred: rewards.asReferred,
		AsSponsor:  rewards.asSponsor,
		BirthDate:  rewards.birthDate,
		Birthday:   rewards.birthday,
		Now:        now,
	})

	paid := p.attendance == payment.AttendancePresent && p.settlement == payment.SettlementPaid
	if paid {
		if err := p.discounts.CheckAgainst(eligibility); err != nil {
			return payment.Outcome{}, errs.Mark(err, ErrDiscountNotEligible)
		}
	}

	var card *giftcard.GiftCard
	var available int64
	if p.cardCode != nil && paid {
		card, err = lockGiftCard(ctx, tx, res.OrganizationID(), *p.cardCode)
		if err != nil {
			return payment.Outcome{}, err
		}
		if err := card.Usable(now); err != nil {
			return payment.Outcome{}, errs.Mark(err, ErrGiftCardUnusable)
		}
		available = card.AvailableCents(now)
	}

	outcome, err := payment.Decide(payment.Request{
		Attendance:             p.attendance,
		Settlement:             p.settlement,
		DepositCents:           p.depositCents,
		Method:                 p.method,
		Discounts:              p.discounts,
		TotalCents:             res.TotalCents(),
		GiftCardAvailableCents: available,
	}, settings.Rates)
	if err != nil {
		return payment.Outcome{}, errs.Mark(err, ErrDomainValidation)
	}

	if err := res.ApplyValidation(outcome, actor.UserID, now); err != nil {
		return payment.Outcome{}, errs.Mark(err, ErrInvalidTransition)
	}
	if err := saveReservation(ctx, tx, res, version); err != nil {
		return payment.Outcome{}, err
	}

	if outcome.PaymentStatus == payment.StatusPaid {
		if err := recordLoyaltyVisit(ctx, tx, res, rewards.profile, outcome, settings.Thresholds, now); err != nil {
			return payment.Outcome{}, err
		}
	}
	if err := consumeReferral(ctx, tx, rewards, outcome.ConsumesReferral, now); err != nil {
		return payment.Outcome{}, err
	}
	if outcome.ConsumesBirthday && rewards.birthday != nil {
		if err := rewards.birthday.Use(res.ID(), now); err != nil {
			return payment.Outcome{}, errs.Mark(err, ErrDiscountNotEligible)
		}
		if err := tx.Loyalty().SaveBirthday(ctx, tx.DB(), rewards.birthday); err != nil {
			return payment.Outcome{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	if used := outcome.GiftCardUsedCents(); used > 0 && card != nil {
		if err := redeemGiftCard(ctx, tx, card, res.ID(), used, now); err != nil {
			return payment.Outcome{}, err
		}
	}

	if err := enqueueReservationJob(ctx, tx, topicPaymentValidated, res, now); err != nil {
		return payment.Outcome{}, err
	}
	return outcome, nil
}

func ensureValidatable(res *reservation.Reservation) error {
	switch {
	case res.Status() == reservation.StatusCanceled:
		return errs.Mark(reservation.ErrReservationCanceled, ErrInvalidTransition)
	case res.Status().IsValidated():
		return errs.Mark(reservation.ErrAlreadyValidated, ErrInvalidTransition)
	}
	return nil
}

type lockedRewards struct {
	profile    *loyalty.Profile
	asReferred *referral.Referral
	asSponsor  []*referral.Referral
	birthDate  *time.Time
	birthday   *loyalty.BirthdayDiscount
}

func lockRewards(ctx context.Context, tx shared.Tx, clientID uuid.UUID, now time.Time) (lockedRewards, error) {
	var r lockedRewards
	var err error

	if r.profile, err = tx.Loyalty().ProfileForUpdate(ctx, tx.DB(), clientID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return r, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if r.asReferred, err = tx.Referrals().AsReferredForUpdate(ctx, tx.DB(), clientID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return r, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if r.asSponsor, err = tx.Referrals().AsSponsorForUpdate(ctx, tx.DB(), clientID); err != nil {
		return r, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if r.birthday, err = tx.Loyalty().BirthdayForUpdate(ctx, tx.DB(), clientID, now.Year()); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return r, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	client, err := tx.Reads().UserByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return r, ErrClientNotFound
		}
		return r, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	r.birthDate = client.BirthDate
	return r, nil
}

func lockGiftCard(ctx context.Context, tx shared.Tx, organizationID uuid.UUID, code giftcard.Code) (*giftcard.GiftCard, error) {
	card, err := tx.GiftCards().FindByCodeForUpdate(ctx, tx.DB(), code.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGiftCardNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if card.OrganizationID() != organizationID {
		return nil, ErrGiftCardNotFound
	}
	return card, nil
}

func recordLoyaltyVisit(
	ctx context.Context,
	tx shared.Tx,
	res *reservation.Reservation,
	profile *loyalty.Profile,
	o payment.Outcome,
	th loyalty.Thresholds,
	now time.Time,
) error {
	if profile == nil {
		code, err := loyalty.GenerateReferralCode()
		if err != nil {
			return errs.Wrap(err, "failed to generate referral code")
		}
		profile = loyalty.NewProfile(res.ClientID(), res.OrganizationID(), code)
		if err := tx.Loyalty().CreateProfile(ctx, tx.DB(), profile); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	profile.RecordVisit(loyalty.Visit{
		IndividualServices: res.IndividualServiceCount(),
		PackageSessions:    res.PackageSessionCount(),
		AmountCents:        o.AmountCents,
		LoyaltyRedeemed:    o.ResetsLoyalty,
		PackageRedeemed:    o.ResetsPackage,
	}, th, now)
	if err := tx.Loyalty().SaveProfile(ctx, tx.DB(), profile); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func consumeReferral(ctx context.Context, tx shared.Tx, r lockedRewards, kind payment.ReferralDiscount, now time.Time) error {
	var target *referral.Referral
	var err error
	switch kind {
	case payment.ReferralReferred:
		target = r.asReferred
		if target != nil {
			err = target.UseReferredReward(now)
		}
	case payment.ReferralSponsor:
		target = referral.OldestPendingSponsorReward(r.asSponsor)
		if target != nil {
			err = target.UseSponsorReward(now)
		}
	default:
		return nil
	}
	if target == nil {
		return errs.Mark(payment.ErrDiscountNotEligible, ErrDiscountNotEligible)
	}
	if err != nil {
		return errs.Mark(err, ErrDiscountNotEligible)
	}
	if err := tx.Referrals().SaveRewards(ctx, tx.DB(), target); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func redeemGiftCard(ctx context.Context, tx shared.Tx, card *giftcard.GiftCard, reservationID uuid.UUID, amount int64, now time.Time) error {
	used, err := card.Redeem(amount, now)
	if err != nil {
		return errs.Mark(err, ErrGiftCardUnusable)
	}
	if err := tx.GiftCards().SaveBalance(ctx, tx.DB(), card); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.GiftCards().RecordTransaction(ctx, tx.DB(), card.ID(), &reservationID, used, card.BalanceCents(), now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
