//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservationCommands(t *testing.T, now time.Time) (*txMocks, *queriesmock.MockReservationQueries, commands.ReservationCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	reads := queriesmock.NewMockReservationQueries(ctrl)
	uc := commands.NewReservationCommands(m.uow, reads, clock.NewMockClock(now), config.IdempotencyConfig{})
	return m, reads, uc
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()
	key := uuid.New()

	t.Run("success: staff books for a client", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		m, reads, uc := newReservationCommands(t, b.Now)
		staff := shared.Actor{UserID: b.CreatedBy, OrganizationID: b.OrganizationID, Role: user.RoleStaff}

		m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, staff.UserID, "POST /api/reservations", gomock.Any(), b.Now.Add(24*time.Hour)).Return(true, nil)
		m.reads.EXPECT().UserByID(gomock.Any(), b.ClientID).Return(&shared.UserSnapshot{
			ID:             b.ClientID,
			OrganizationID: b.OrganizationID,
			Role:           "client",
			IsActive:       true,
		}, nil)

		var created uuid.UUID
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				created = res.ID()
				assert.Equal(t, b.ClientID, res.ClientID())
				assert.Equal(t, b.OrganizationID, res.OrganizationID())
				assert.Equal(t, reservation.StatusConfirmed, res.Status())
				assert.Equal(t, b.TotalCents(), res.TotalCents())
				assert.Equal(t, int32(1), res.Version())
				return nil
			})
		m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "reservation_created", gomock.Any(), b.Now).Return(nil)
		m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, staff.UserID, gomock.Any(), gomock.Any()).Return(nil)
		reads.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
				assert.Equal(t, created, id)
				return b.BuildView(id), nil
			})

		view, err := uc.Create(ctx, staff, b.BuildCreateRequest(), key)
		require.NoError(t, err)
		assert.Equal(t, created, view.ID)
	})

	t.Run("success: client books for themself", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithCreatorRole(user.RoleClient)
		m, reads, uc := newReservationCommands(t, b.Now)
		client := shared.Actor{UserID: b.ClientID, OrganizationID: b.OrganizationID, Role: user.RoleClient}

		m.expectFreshKey()
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, res *reservation.Reservation) error {
				assert.Equal(t, client.UserID, res.ClientID())
				assert.Equal(t, reservation.StatusPending, res.Status())
				return nil
			})
		m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "reservation_created", gomock.Any(), b.Now).Return(nil)
		m.idempotency.EXPECT().UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, client.UserID, gomock.Any(), gomock.Any()).Return(nil)
		reads.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).Return(b.BuildView(uuid.New()), nil)

		req := b.BuildCreateRequest()
		req.ClientID = nil
		_, err := uc.Create(ctx, client, req, key)
		require.NoError(t, err)
	})

	t.Run("error: staff must name the client", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		_, _, uc := newReservationCommands(t, b.Now)
		staff := shared.Actor{UserID: b.CreatedBy, OrganizationID: b.OrganizationID, Role: user.RoleStaff}

		req := b.BuildCreateRequest()
		req.ClientID = nil
		_, err := uc.Create(ctx, staff, req, key)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})

	t.Run("error: slot ends before it starts", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.WithSlot(b.StartsAt, b.StartsAt.Add(-time.Hour))
		_, _, uc := newReservationCommands(t, b.Now)
		staff := shared.Actor{UserID: b.CreatedBy, OrganizationID: b.OrganizationID, Role: user.RoleStaff}

		_, err := uc.Create(ctx, staff, b.BuildCreateRequest(), key)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})

	t.Run("error: client of another salon releases the key", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		m, _, uc := newReservationCommands(t, b.Now)
		staff := shared.Actor{UserID: b.CreatedBy, OrganizationID: b.OrganizationID, Role: user.RoleStaff}

		m.expectFreshKey()
		m.reads.EXPECT().UserByID(gomock.Any(), b.ClientID).Return(&shared.UserSnapshot{
			ID:             b.ClientID,
			OrganizationID: uuid.New(),
			Role:           "client",
			IsActive:       true,
		}, nil)
		m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, staff.UserID).Return(nil)

		_, err := uc.Create(ctx, staff, b.BuildCreateRequest(), key)
		assert.True(t, errs.Is(err, commands.ErrClientNotFound), "got %v", err)
	})

	t.Run("error: slot in the past", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		m, _, uc := newReservationCommands(t, b.StartsAt.Add(time.Hour))
		client := shared.Actor{UserID: b.ClientID, OrganizationID: b.OrganizationID, Role: user.RoleClient}

		m.expectFreshKey()
		m.idempotency.EXPECT().Release(gomock.Any(), gomock.Any(), key, client.UserID).Return(nil)

		_, err := uc.Create(ctx, client, b.BuildCreateRequest(), key)
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.True(t, errs.Is(err, reservation.ErrSlotInPast))
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner cancels", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithCreatorRole(user.RoleClient)
		res, err := b.BuildDomain()
		require.NoError(t, err)
		m, reads, uc := newReservationCommands(t, b.Now)
		client := shared.Actor{UserID: b.ClientID, OrganizationID: b.OrganizationID, Role: user.RoleClient}

		m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		m.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res, int32(1)).Return(nil)
		m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "reservation_canceled", gomock.Any(), b.Now).Return(nil)
		reads.EXPECT().GetByIDSystem(gomock.Any(), res.ID()).Return(b.BuildView(res.ID()), nil)

		_, err = uc.Cancel(ctx, client, res.ID())
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCanceled, res.Status())
	})

	t.Run("error: other client sees not found", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		m, _, uc := newReservationCommands(t, b.Now)
		stranger := shared.Actor{UserID: uuid.New(), OrganizationID: b.OrganizationID, Role: user.RoleClient}

		m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		_, err = uc.Cancel(ctx, stranger, res.ID())
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound), "got %v", err)
	})

	t.Run("error: concurrent update", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		m, _, uc := newReservationCommands(t, b.Now)
		staff := shared.Actor{UserID: b.CreatedBy, OrganizationID: b.OrganizationID, Role: user.RoleStaff}

		m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		m.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res, int32(1)).
			Return(infra.WrapRepoErr("version mismatch", nil, infra.KindConflict))

		_, err = uc.Cancel(ctx, staff, res.ID())
		assert.True(t, errs.Is(err, commands.ErrReservationConflict))
	})

	t.Run("error: missing reservation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		m, _, uc := newReservationCommands(t, b.Now)
		staff := shared.Actor{UserID: b.CreatedBy, OrganizationID: b.OrganizationID, Role: user.RoleStaff}

		id := uuid.New()
		m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFound())

		_, err := uc.Cancel(ctx, staff, id)
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound), "got %v", err)
	})
}

func TestReservationCommands_CorrectPayment(t *testing.T) {
	ctx := context.Background()

	validated := func(t *testing.T, b *builder.ReservationBuilder) *reservation.Reservation {
		t.Helper()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		outcome, err := payment.Decide(payment.Request{
			Attendance: payment.AttendancePresent,
			Settlement: payment.SettlementPaid,
			Method:     payment.MethodCash,
			TotalCents: res.TotalCents(),
		}, payment.DefaultRates())
		require.NoError(t, err)
		require.NoError(t, res.ApplyValidation(outcome, b.CreatedBy, b.StartsAt))
		return res
	}

	t.Run("success: admin overrides the amount", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := validated(t, b)
		m, reads, uc := newReservationCommands(t, b.StartsAt.Add(time.Hour))
		admin := shared.Actor{UserID: uuid.New(), OrganizationID: b.OrganizationID, Role: user.RoleAdmin}

		m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)
		m.reservations.EXPECT().Save(gomock.Any(), gomock.Any(), res, int32(1)).Return(nil)
		m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "payment_corrected", gomock.Any(), gomock.Any()).Return(nil)
		reads.EXPECT().GetByIDSystem(gomock.Any(), res.ID()).Return(b.BuildView(res.ID()), nil)

		_, err := uc.CorrectPayment(ctx, admin, res.ID(), commands.CorrectPaymentRequest{
			AmountCents: 12000,
			Method:      "transfer",
			Notes:       "  client paid part by transfer  ",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12000), res.Payment().AmountCents)
		assert.Equal(t, payment.MethodTransfer, res.Payment().Method)
	})

	t.Run("error: staff cannot correct", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		_, _, uc := newReservationCommands(t, b.Now)
		staff := shared.Actor{UserID: b.CreatedBy, OrganizationID: b.OrganizationID, Role: user.RoleStaff}

		_, err := uc.CorrectPayment(ctx, staff, uuid.New(), commands.CorrectPaymentRequest{AmountCents: 1, Method: "cash", Notes: "x"})
		assert.True(t, errs.Is(err, commands.ErrAccessDenied), "got %v", err)
	})

	t.Run("error: not yet validated", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)
		m, _, uc := newReservationCommands(t, b.Now)
		admin := shared.Actor{UserID: uuid.New(), OrganizationID: b.OrganizationID, Role: user.RoleAdmin}

		m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		_, err = uc.CorrectPayment(ctx, admin, res.ID(), commands.CorrectPaymentRequest{AmountCents: 100, Method: "cash", Notes: "fix"})
		assert.True(t, errs.Is(err, commands.ErrInvalidTransition))
	})

	t.Run("error: stale expected version", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := validated(t, b)
		m, _, uc := newReservationCommands(t, b.Now)
		admin := shared.Actor{UserID: uuid.New(), OrganizationID: b.OrganizationID, Role: user.RoleAdmin}

		m.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), res.ID()).Return(res, nil)

		stale := int32(3)
		_, err := uc.CorrectPayment(ctx, admin, res.ID(), commands.CorrectPaymentRequest{
			AmountCents:     100,
			Method:          "cash",
			Notes:           "fix",
			ExpectedVersion: &stale,
		})
		assert.True(t, errs.Is(err, commands.ErrReservationConflict), "got %v", err)
	})
}
