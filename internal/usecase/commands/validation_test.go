//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/domain/giftcard"
	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/organization"
	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/referral"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/domain/user"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validateEndpoint = "POST /api/admin/reservations/:id/validate"

type validationFixture struct {
	m       *txMocks
	reads   *queriesmock.MockReservationQueries
	uc      commands.ValidationCommands
	actor   shared.Actor
	res     *reservation.Reservation
	b       *builder.ReservationBuilder
	key     uuid.UUID
	visitAt time.Time
}

func newValidationFixture(t *testing.T) *validationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	b := builder.NewReservationBuilder()
	res, err := b.BuildDomain()
	require.NoError(t, err)

	// validation happens on the day of the visit
	visitAt := b.StartsAt.Add(2 * time.Hour)
	m := newTxMocks(ctrl)
	reads := queriesmock.NewMockReservationQueries(ctrl)

	return &validationFixture{
		m:     m,
		reads: reads,
		uc:    commands.NewValidationCommands(m.uow, reads, clock.NewMockClock(visitAt), config.IdempotencyConfig{TTL: 24 * time.Hour}),
		actor: shared.Actor{
			UserID:         b.CreatedBy,
			OrganizationID: b.OrganizationID,
			Role:           user.RoleStaff,
		},
		res:     res,
		b:       b,
		key:     uuid.New(),
		visitAt: visitAt,
	}
}

// rewardState is what the locked reward rows hold for the client. Nil fields
// are reported as missing rows.
type rewardState struct {
	asReferred *referral.Referral
	asSponsor  []*referral.Referral
	birthday   *loyalty.BirthdayDiscount
	birthDate  *time.Time
}

func (f *validationFixture) expectLoadedState(s rewardState) {
	ctx := gomock.Any()
	f.m.reservations.EXPECT().FindForUpdate(ctx, gomock.Any(), f.res.ID()).Return(f.res, nil)
	f.m.reads.EXPECT().OrganizationByID(ctx, f.b.OrganizationID).Return(&shared.OrganizationSnapshot{
		ID:       f.b.OrganizationID,
		Name:     "Salon",
		Slug:     "salon",
		Settings: organization.DefaultSettings(),
	}, nil)
	f.m.loyalty.EXPECT().ProfileForUpdate(ctx, gomock.Any(), f.b.ClientID).Return(nil, notFound())
	if s.asReferred != nil {
		f.m.referrals.EXPECT().AsReferredForUpdate(ctx, gomock.Any(), f.b.ClientID).Return(s.asReferred, nil)
	} else {
		f.m.referrals.EXPECT().AsReferredForUpdate(ctx, gomock.Any(), f.b.ClientID).Return(nil, notFound())
	}
	f.m.referrals.EXPECT().AsSponsorForUpdate(ctx, gomock.Any(), f.b.ClientID).Return(s.asSponsor, nil)
	if s.birthday != nil {
		f.m.loyalty.EXPECT().BirthdayForUpdate(ctx, gomock.Any(), f.b.ClientID, f.visitAt.Year()).Return(s.birthday, nil)
	} else {
		f.m.loyalty.EXPECT().BirthdayForUpdate(ctx, gomock.Any(), f.b.ClientID, f.visitAt.Year()).Return(nil, notFound())
	}
	f.m.reads.EXPECT().UserByID(ctx, f.b.ClientID).Return(&shared.UserSnapshot{
		ID:             f.b.ClientID,
		OrganizationID: f.b.OrganizationID,
		Role:           "client",
		BirthDate:      s.birthDate,
		IsActive:       true,
	}, nil)
}

// expectPaidCommit covers the writes every successful paid validation makes.
func (f *validationFixture) expectPaidCommit(t *testing.T, payable int64) {
	f.m.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), f.res, int32(1)).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation, _ int32) error {
			assert.Equal(t, reservation.StatusCompleted, res.Status())
			assert.Equal(t, payment.StatusPaid, res.Payment().Status)
			assert.Equal(t, payable, res.Payment().AmountCents)
			return nil
		})
	f.m.loyalty.EXPECT().CreateProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.m.loyalty.EXPECT().SaveProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "payment_validated", gomock.Any(), f.visitAt).Return(nil)
	f.m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), f.key, f.actor.UserID, gomock.Any(), f.res.ID()).Return(nil)
	f.reads.EXPECT().GetByIDSystem(gomock.Any(), f.res.ID()).Return(f.b.BuildView(f.res.ID()), nil)
}

// sponsored builds a referral where the fixture's client sponsored someone.
func (f *validationFixture) sponsored(createdAt time.Time, usedAt *time.Time) *referral.Referral {
	return referral.ReconstructReferral(uuid.New(), f.b.OrganizationID, f.b.ClientID, uuid.New(), usedAt, nil, createdAt)
}

func paidByCard() commands.ValidatePaymentRequest {
	return commands.ValidatePaymentRequest{
		Attendance: "present",
		Settlement: "paid",
		Method:     "card",
	}
}

func TestValidationCommands_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: paid visit records loyalty and completes the key", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{})
		f.expectPaidCommit(t, 15000)

		result, err := f.uc.Validate(ctx, f.actor, f.res.ID(), paidByCard(), f.key)
		require.NoError(t, err)
		require.NotNil(t, result.Breakdown)
		assert.False(t, result.Replayed)
		assert.Equal(t, int64(15000), result.Breakdown.PayableCents)
		assert.Equal(t, int64(0), result.Breakdown.DiscountCents)
		assert.Equal(t, f.res.ID(), result.Reservation.ID)
	})

	t.Run("success: completed key replays the stored reservation", func(t *testing.T) {
		f := newValidationFixture(t)
		req := paidByCard()
		resultID := f.res.ID()
		hash := hashOf(t, struct {
			ReservationID uuid.UUID                       `json:"reservation_id"`
			Request       commands.ValidatePaymentRequest `json:"request"`
		}{f.res.ID(), req})

		f.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), f.key, f.actor.UserID, validateEndpoint, hash, gomock.Any()).Return(false, nil)
		f.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), f.key, f.actor.UserID).Return(&shared.IdempotencyRecord{
			Key:         f.key,
			UserID:      f.actor.UserID,
			Endpoint:    validateEndpoint,
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: hash,
			ResultID:    &resultID,
		}, nil)
		f.reads.EXPECT().GetByIDSystem(gomock.Any(), resultID).Return(f.b.BuildView(resultID), nil)

		result, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Nil(t, result.Breakdown)
	})

	t.Run("error: client cannot validate", func(t *testing.T) {
		f := newValidationFixture(t)
		f.actor.Role = user.RoleClient

		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), paidByCard(), f.key)
		assert.True(t, errs.Is(err, commands.ErrAccessDenied), "got %v", err)
	})

	t.Run("error: unknown attendance", func(t *testing.T) {
		f := newValidationFixture(t)
		req := paidByCard()
		req.Attendance = "maybe"

		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})

	t.Run("error: key still processing", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), f.key, f.actor.UserID).Return(nil, notFound())
		f.m.idempotency.EXPECT().ClaimExpiredIdempotencyKey(gomock.Any(), gomock.Any(), f.key, f.actor.UserID, validateEndpoint, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), paidByCard(), f.key)
		assert.True(t, errs.Is(err, commands.ErrIdempotencyInProgress), "got %v", err)
	})

	t.Run("error: key reused with another body", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.m.reads.EXPECT().IdempotencyByKey(gomock.Any(), f.key, f.actor.UserID).Return(&shared.IdempotencyRecord{
			Key:         f.key,
			UserID:      f.actor.UserID,
			Endpoint:    validateEndpoint,
			Status:      shared.IdempotencyStatusCompleted,
			RequestHash: "different",
		}, nil)

		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), paidByCard(), f.key)
		assert.True(t, errs.Is(err, commands.ErrIdempotencyKeyReused), "got %v", err)
	})

	t.Run("error: loyalty discount without enough visits releases the key", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{})
		f.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), f.key, f.actor.UserID).Return(nil)

		req := paidByCard()
		req.Discounts.Loyalty = true
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		assert.True(t, errs.Is(err, commands.ErrDiscountNotEligible))
	})

	t.Run("error: stale expected version", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.expectFreshKey()
		f.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), f.res.ID()).Return(f.res, nil)
		f.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), f.key, f.actor.UserID).Return(nil)

		req := paidByCard()
		stale := int32(7)
		req.ExpectedVersion = &stale
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		assert.True(t, errs.Is(err, commands.ErrReservationConflict), "got %v", err)
	})

	t.Run("error: reservation of another salon", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.expectFreshKey()
		f.m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), f.res.ID()).Return(f.res, nil)
		f.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), f.key, f.actor.UserID).Return(nil)

		f.actor.OrganizationID = uuid.New()
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), paidByCard(), f.key)
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound), "got %v", err)
	})

	t.Run("success: unpaid no-show skips loyalty", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{})
		f.m.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), f.res, int32(1)).Return(nil)
		f.m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "payment_validated", gomock.Any(), f.visitAt).Return(nil)
		f.m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), f.key, f.actor.UserID, gomock.Any(), f.res.ID()).Return(nil)
		f.reads.EXPECT().GetByIDSystem(gomock.Any(), f.res.ID()).Return(f.b.BuildView(f.res.ID()), nil)

		req := commands.ValidatePaymentRequest{Attendance: "absent", Settlement: "unpaid"}
		result, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusNoShow, f.res.Status())
		assert.Equal(t, int64(0), result.Breakdown.PayableCents)
	})
}

func TestValidationCommands_ConsumesRewards(t *testing.T) {
	ctx := context.Background()

	t.Run("success: sponsor reward uses the oldest pending referral", func(t *testing.T) {
		f := newValidationFixture(t)
		used := f.visitAt.AddDate(0, -2, 0)
		spent := f.sponsored(f.visitAt.AddDate(0, -6, 0), &used)
		oldest := f.sponsored(f.visitAt.AddDate(0, -3, 0), nil)
		newest := f.sponsored(f.visitAt.AddDate(0, -1, 0), nil)

		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{asSponsor: []*referral.Referral{spent, oldest, newest}})
		f.expectPaidCommit(t, 13500)
		f.m.referrals.EXPECT().SaveRewards(gomock.Any(), gomock.Any(), oldest).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, r *referral.Referral) error {
				require.NotNil(t, r.SponsorRewardUsedAt())
				assert.Equal(t, f.visitAt, *r.SponsorRewardUsedAt())
				return nil
			})

		req := paidByCard()
		req.Discounts.Referral = "sponsor"
		result, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), result.Breakdown.DiscountCents)
		assert.Nil(t, newest.SponsorRewardUsedAt())
	})

	t.Run("success: referred reward is marked used", func(t *testing.T) {
		f := newValidationFixture(t)
		referred := referral.ReconstructReferral(uuid.New(), f.b.OrganizationID, uuid.New(), f.b.ClientID, nil, nil, f.visitAt.AddDate(0, -1, 0))

		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{asReferred: referred})
		f.expectPaidCommit(t, 14000)
		f.m.referrals.EXPECT().SaveRewards(gomock.Any(), gomock.Any(), referred).Return(nil)

		req := paidByCard()
		req.Discounts.Referral = "referred"
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		require.NoError(t, err)
		assert.NotNil(t, referred.ReferredRewardUsedAt())
	})

	t.Run("error: referred reward without a sponsor", func(t *testing.T) {
		f := newValidationFixture(t)
		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{})
		f.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), f.key, f.actor.UserID).Return(nil)

		req := paidByCard()
		req.Discounts.Referral = "referred"
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		assert.True(t, errs.Is(err, commands.ErrDiscountNotEligible), "got %v", err)
	})

	t.Run("error: every sponsor reward already used", func(t *testing.T) {
		f := newValidationFixture(t)
		used := f.visitAt.AddDate(0, -1, 0)
		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{asSponsor: []*referral.Referral{f.sponsored(f.visitAt.AddDate(0, -2, 0), &used)}})
		f.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), f.key, f.actor.UserID).Return(nil)

		req := paidByCard()
		req.Discounts.Referral = "sponsor"
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		assert.True(t, errs.Is(err, commands.ErrDiscountNotEligible), "got %v", err)
	})

	t.Run("success: birthday reward is tied to the reservation", func(t *testing.T) {
		f := newValidationFixture(t)
		birthDate := time.Date(1990, f.visitAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		grant := loyalty.GrantBirthdayDiscount(f.b.ClientID, f.visitAt)

		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{birthday: grant, birthDate: &birthDate})
		f.expectPaidCommit(t, 14000)
		f.m.loyalty.EXPECT().SaveBirthday(gomock.Any(), gomock.Any(), grant).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, d *loyalty.BirthdayDiscount) error {
				assert.True(t, d.IsUsed())
				require.NotNil(t, d.ReservationID())
				assert.Equal(t, f.res.ID(), *d.ReservationID())
				return nil
			})

		req := paidByCard()
		req.Discounts.Birthday = true
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		require.NoError(t, err)
	})

	t.Run("error: birthday outside the birth month", func(t *testing.T) {
		f := newValidationFixture(t)
		birthDate := time.Date(1990, f.visitAt.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{birthDate: &birthDate})
		f.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), f.key, f.actor.UserID).Return(nil)

		req := paidByCard()
		req.Discounts.Birthday = true
		_, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		assert.True(t, errs.Is(err, commands.ErrDiscountNotEligible), "got %v", err)
	})

	t.Run("success: gift card redemption writes the balance and a transaction", func(t *testing.T) {
		f := newValidationFixture(t)
		code, err := giftcard.NewCode("GIFT-2026-ABCD")
		require.NoError(t, err)
		card, err := giftcard.NewGiftCard(f.b.OrganizationID, code, 5000, nil, nil, f.visitAt.AddDate(0, -1, 0))
		require.NoError(t, err)

		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{})
		f.expectPaidCommit(t, 10000)
		f.m.giftCards.EXPECT().FindByCodeForUpdate(gomock.Any(), gomock.Any(), "GIFT2026ABCD").Return(card, nil)
		f.m.giftCards.EXPECT().SaveBalance(gomock.Any(), gomock.Any(), card).Return(nil)
		resID := f.res.ID()
		f.m.giftCards.EXPECT().RecordTransaction(gomock.Any(), gomock.Any(), card.ID(), &resID, int64(5000), int64(0), f.visitAt).Return(nil)

		req := paidByCard()
		raw := "gift-2026-abcd"
		req.GiftCardCode = &raw
		result, err := f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), result.Breakdown.GiftCardUsedCents)
		assert.Equal(t, int64(0), card.BalanceCents())
		assert.Equal(t, giftcard.StatusExhausted, card.Status())
	})

	t.Run("error: gift card of another salon", func(t *testing.T) {
		f := newValidationFixture(t)
		code, err := giftcard.NewCode("OTHERSALON1")
		require.NoError(t, err)
		card, err := giftcard.NewGiftCard(uuid.New(), code, 5000, nil, nil, f.visitAt.AddDate(0, -1, 0))
		require.NoError(t, err)

		f.m.expectFreshKey()
		f.expectLoadedState(rewardState{})
		f.m.giftCards.EXPECT().FindByCodeForUpdate(gomock.Any(), gomock.Any(), "OTHERSALON1").Return(card, nil)
		f.m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), f.key, f.actor.UserID).Return(nil)

		req := paidByCard()
		raw := "OTHERSALON1"
		req.GiftCardCode = &raw
		_, err = f.uc.Validate(ctx, f.actor, f.res.ID(), req, f.key)
		assert.True(t, errs.Is(err, commands.ErrGiftCardNotFound), "got %v", err)
	})
}
