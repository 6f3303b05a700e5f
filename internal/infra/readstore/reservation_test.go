//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadQueries struct {
	mock.Mock
}

func (m *MockReservationReadQueries) GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetReservationByIDRow), args.Error(1)
}

func (m *MockReservationReadQueries) ListReservationLines(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationLines, error) {
	args := m.Called(ctx, db, reservationID)
	return args.Get(0).([]sqlc.ReservationLines), args.Error(1)
}

func (m *MockReservationReadQueries) ListReservationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsFirstPageParams) ([]sqlc.ListReservationsFirstPageRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsFirstPageRow), args.Error(1)
}

func (m *MockReservationReadQueries) ListReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsKeysetParams) ([]sqlc.ListReservationsKeysetRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsKeysetRow), args.Error(1)
}

func (m *MockReservationReadQueries) ListReservationsForExport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsForExportParams) ([]sqlc.ListReservationsForExportRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReservationsForExportRow), args.Error(1)
}

func (m *MockReservationReadQueries) GetAccountingSummary(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAccountingSummaryParams) (sqlc.GetAccountingSummaryRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetAccountingSummaryRow), args.Error(1)
}

func (m *MockReservationReadQueries) CountReservationsByPaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsByPaymentStatusParams) ([]sqlc.CountReservationsByPaymentStatusRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.CountReservationsByPaymentStatusRow), args.Error(1)
}

func TestReservationFindByID(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	row := sqlc.GetReservationByIDRow{
		ID:              id,
		OrganizationID:  uuid.New(),
		ClientID:        uuid.New(),
		StartsAt:        pgtype.Timestamptz{Time: now, Valid: true},
		EndsAt:          pgtype.Timestamptz{Time: now.Add(time.Hour), Valid: true},
		Status:          "validated",
		TotalCents:      8000,
		PaymentStatus:   "paid",
		PaymentMethod:   pgtype.Text{String: "card", Valid: true},
		AmountPaidCents: 7200,
		DiscountCents:   800,
		ClientFirstName: "Camille",
		Version:         3,
	}

	t.Run("maps payment and lines", func(t *testing.T) {
		q := new(MockReservationReadQueries)
		q.On("GetReservationByID", mock.Anything, mock.Anything, id).Return(row, nil)
		q.On("ListReservationLines", mock.Anything, mock.Anything, id).Return([]sqlc.ReservationLines{
			{ReservationID: id, Position: 0, Name: "Soin visage", PriceCents: 8000},
		}, nil)

		view, err := NewReservationReadStore(q, nil).FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "paid", view.Payment.Status)
		require.NotNil(t, view.Payment.Method)
		assert.Equal(t, "card", *view.Payment.Method)
		assert.Equal(t, []string{}, view.Payment.AppliedDiscounts)
		assert.Nil(t, view.Payment.ValidatedBy)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "Soin visage", view.Lines[0].Name)
		assert.Equal(t, int32(3), view.Version)
		q.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockReservationReadQueries)
		q.On("GetReservationByID", mock.Anything, mock.Anything, id).Return(sqlc.GetReservationByIDRow{}, sql.ErrNoRows)

		view, err := NewReservationReadStore(q, nil).FindByID(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		q.AssertNotCalled(t, "ListReservationLines", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReservationTotalsUsesInfiniteBoundsWhenOpen(t *testing.T) {
	orgID := uuid.New()
	openFrom := pgtype.Timestamptz{InfinityModifier: pgtype.NegativeInfinity, Valid: true}
	openTo := pgtype.Timestamptz{InfinityModifier: pgtype.Infinity, Valid: true}

	q := new(MockReservationReadQueries)
	q.On("GetAccountingSummary", mock.Anything, mock.Anything, sqlc.GetAccountingSummaryParams{
		OrganizationID: orgID, StartsFrom: openFrom, StartsTo: openTo,
	}).Return(sqlc.GetAccountingSummaryRow{ReservationCount: 4, RevenueCents: 24000, DiscountCents: 1200}, nil)
	q.On("CountReservationsByPaymentStatus", mock.Anything, mock.Anything, sqlc.CountReservationsByPaymentStatusParams{
		OrganizationID: orgID, StartsFrom: openFrom, StartsTo: openTo,
	}).Return([]sqlc.CountReservationsByPaymentStatusRow{
		{PaymentStatus: "paid", Count: 3},
		{PaymentStatus: "pending", Count: 1},
	}, nil)

	totals, err := NewReservationReadStore(q, nil).Totals(context.Background(), orgID, queries.DateRange{})

	require.NoError(t, err)
	assert.Equal(t, int64(4), totals.ReservationCount)
	assert.Equal(t, int64(24000), totals.RevenueCents)
	assert.Equal(t, map[string]int64{"paid": 3, "pending": 1}, totals.ByPaymentStatus)
	q.AssertExpectations(t)
}

func TestReservationTotalsBoundedRange(t *testing.T) {
	orgID := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	q := new(MockReservationReadQueries)
	q.On("GetAccountingSummary", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.GetAccountingSummaryParams) bool {
		return p.StartsFrom.Time.Equal(from) && p.StartsTo.Time.Equal(to) && p.StartsFrom.InfinityModifier == pgtype.Finite
	})).Return(sqlc.GetAccountingSummaryRow{}, assert.AnError)

	_, err := NewReservationReadStore(q, nil).Totals(context.Background(), orgID, queries.DateRange{From: &from, To: &to})

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	q.AssertExpectations(t)
}
