//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/domain/user"
	"salon-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, int64(15000), actual.TotalCents())
		assert.Equal(t, payment.StatusUnpaid, actual.Payment().Status)
		assert.Equal(t, int32(1), actual.Version())
	})

	t.Run("creation rules", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "client booking stays pending",
				mutate: func(b *builder.ReservationBuilder) { b.WithCreatorRole(user.RoleClient) },
			},
			{
				name:   "no service lines",
				mutate: func(b *builder.ReservationBuilder) { b.Lines = nil },
				errIs:  reservation.ErrNoServiceLines,
			},
			{
				name: "slot in the past",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSlot(b.Now.Add(-2*time.Hour), b.Now.Add(-time.Hour))
				},
				errIs: reservation.ErrSlotInPast,
			},
			{
				name: "end before start",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSlot(b.Now.Add(2*time.Hour), b.Now.Add(time.Hour))
				},
				errIs: reservation.ErrInvalidTimeSlot,
			},
			{
				name: "slot too long",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithSlot(b.Now.Add(time.Hour), b.Now.Add(14*time.Hour))
				},
				errIs: reservation.ErrSlotTooLong,
			},
			{
				name:   "negative line price",
				mutate: func(b *builder.ReservationBuilder) { b.WithLine("Massage", -1, false) },
				errIs:  reservation.ErrNegativePrice,
			},
			{
				name:   "blank line name",
				mutate: func(b *builder.ReservationBuilder) { b.WithLine("  ", 1000, false) },
				errIs:  reservation.ErrInvalidServiceName,
			},
			{
				name:   "note too long",
				mutate: func(b *builder.ReservationBuilder) { b.Note = strings.Repeat("x", reservation.MaxNoteLength+1) },
				errIs:  reservation.ErrNoteTooLong,
			},
		})
	})

	t.Run("line counts", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			WithLine("Package facial 1/4", 4000, true).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, 2, actual.IndividualServiceCount())
		assert.Equal(t, 1, actual.PackageSessionCount())
		assert.Equal(t, int64(19000), actual.TotalCents())
	})
}

func TestApplyValidation(t *testing.T) {
	now := time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)
	staff := uuid.New()

	paid, err := payment.Decide(payment.Request{
		Attendance:             payment.AttendancePresent,
		Settlement:             payment.SettlementPaid,
		Method:                 payment.MethodCard,
		Discounts:              payment.DiscountSet{Loyalty: true},
		TotalCents:             15000,
		GiftCardAvailableCents: 3000,
	}, payment.DefaultRates())
	require.NoError(t, err)

	t.Run("completed and paid", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.ApplyValidation(paid, staff, now))

		p := r.Payment()
		assert.Equal(t, reservation.StatusCompleted, r.Status())
		assert.Equal(t, payment.StatusPaid, p.Status)
		assert.Equal(t, int64(10000), p.AmountCents)
		assert.Equal(t, int64(2000), p.DiscountCents)
		assert.Equal(t, int64(3000), p.GiftCardCents)
		assert.Equal(t, []string{"loyalty", "gift_card"}, p.Discounts)
		assert.Equal(t, &staff, p.ValidatedBy)
		require.NotNil(t, p.PaidAt)
		assert.Equal(t, now, *p.PaidAt)
	})

	t.Run("no show without deposit has no paid date", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		o := payment.Outcome{Visit: payment.VisitNoShow, PaymentStatus: payment.StatusNoShow}
		require.NoError(t, r.ApplyValidation(o, staff, now))

		assert.Equal(t, reservation.StatusNoShow, r.Status())
		assert.Nil(t, r.Payment().PaidAt)
		assert.Equal(t, "no show", r.Payment().Notes)
	})

	t.Run("second validation is rejected", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.ApplyValidation(paid, staff, now))

		require.ErrorIs(t, r.ApplyValidation(paid, staff, now), reservation.ErrAlreadyValidated)
	})

	t.Run("canceled reservation cannot be validated", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Cancel(now))

		require.ErrorIs(t, r.ApplyValidation(paid, staff, now), reservation.ErrReservationCanceled)
	})
}

func TestCorrectPayment(t *testing.T) {
	now := time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)

	validated := func(t *testing.T, o payment.Outcome) *reservation.Reservation {
		t.Helper()
		r, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.ApplyValidation(o, uuid.New(), now))
		return r
	}
	unpaid := payment.Outcome{Visit: payment.VisitCompleted, PaymentStatus: payment.StatusUnpaid}
	noShow := payment.Outcome{Visit: payment.VisitNoShow, PaymentStatus: payment.StatusNoShow}

	t.Run("unpaid visit settled later", func(t *testing.T) {
		r := validated(t, unpaid)

		require.NoError(t, r.CorrectPayment(15000, payment.MethodCash, "settled at next visit", now))
		assert.Equal(t, payment.StatusPaid, r.Payment().Status)
		assert.Equal(t, "settled at next visit", r.Payment().Notes)
		assert.NotNil(t, r.Payment().PaidAt)
	})

	t.Run("no show deposit added", func(t *testing.T) {
		r := validated(t, noShow)

		require.NoError(t, r.CorrectPayment(2000, payment.MethodCard, "", now))
		assert.Equal(t, payment.StatusPartial, r.Payment().Status)
		assert.Equal(t, "no show", r.Payment().Notes)
	})

	t.Run("refund to zero", func(t *testing.T) {
		r := validated(t, unpaid)
		require.NoError(t, r.CorrectPayment(15000, payment.MethodCash, "", now))

		require.NoError(t, r.CorrectPayment(0, payment.MethodNone, "refunded", now))
		assert.Equal(t, payment.StatusUnpaid, r.Payment().Status)
	})

	t.Run("guards", func(t *testing.T) {
		open, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, open.CorrectPayment(100, payment.MethodCash, "", now), reservation.ErrNotValidated)

		r := validated(t, unpaid)
		require.ErrorIs(t, r.CorrectPayment(-1, payment.MethodCash, "", now), reservation.ErrInvalidCorrection)
		require.ErrorIs(t, r.CorrectPayment(15001, payment.MethodCash, "", now), reservation.ErrInvalidCorrection)
		require.ErrorIs(t, r.CorrectPayment(100, payment.MethodNone, "", now), payment.ErrMethodRequired)
	})
}

func TestCancelAndConfirm(t *testing.T) {
	now := time.Now()

	pending, err := builder.NewReservationBuilder().WithCreatorRole(user.RoleClient).BuildDomain()
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, pending.Status())
	require.NoError(t, pending.Confirm(now))
	assert.Equal(t, reservation.StatusConfirmed, pending.Status())
	require.ErrorIs(t, pending.Confirm(now), reservation.ErrInvalidStatus)

	require.NoError(t, pending.Cancel(now))
	require.ErrorIs(t, pending.Cancel(now), reservation.ErrReservationCanceled)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
