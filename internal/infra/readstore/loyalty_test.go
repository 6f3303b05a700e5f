//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoyaltyReadQueries struct {
	mock.Mock
}

func (m *MockLoyaltyReadQueries) GetLoyaltyProfile(ctx context.Context, db sqlc.DBTX, clientID uuid.UUID) (sqlc.LoyaltyProfiles, error) {
	args := m.Called(ctx, db, clientID)
	return args.Get(0).(sqlc.LoyaltyProfiles), args.Error(1)
}

func (m *MockLoyaltyReadQueries) GetReferralByReferred(ctx context.Context, db sqlc.DBTX, referredID uuid.UUID) (sqlc.Referrals, error) {
	args := m.Called(ctx, db, referredID)
	return args.Get(0).(sqlc.Referrals), args.Error(1)
}

func (m *MockLoyaltyReadQueries) ListReferralsBySponsor(ctx context.Context, db sqlc.DBTX, sponsorID uuid.UUID) ([]sqlc.Referrals, error) {
	args := m.Called(ctx, db, sponsorID)
	return args.Get(0).([]sqlc.Referrals), args.Error(1)
}

func (m *MockLoyaltyReadQueries) GetBirthdayDiscount(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBirthdayDiscountParams) (sqlc.BirthdayDiscounts, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.BirthdayDiscounts), args.Error(1)
}

func (m *MockLoyaltyReadQueries) GetLoyaltyProfileByReferralCode(ctx context.Context, db sqlc.DBTX, referralCode string) (sqlc.LoyaltyProfiles, error) {
	args := m.Called(ctx, db, referralCode)
	return args.Get(0).(sqlc.LoyaltyProfiles), args.Error(1)
}

func TestLoyaltyMissingRowsAreNil(t *testing.T) {
	clientID := uuid.New()
	q := new(MockLoyaltyReadQueries)
	q.On("GetLoyaltyProfile", mock.Anything, mock.Anything, clientID).Return(sqlc.LoyaltyProfiles{}, sql.ErrNoRows)
	q.On("GetReferralByReferred", mock.Anything, mock.Anything, clientID).Return(sqlc.Referrals{}, sql.ErrNoRows)
	q.On("GetBirthdayDiscount", mock.Anything, mock.Anything, sqlc.GetBirthdayDiscountParams{ClientID: clientID, Year: 2026}).
		Return(sqlc.BirthdayDiscounts{}, sql.ErrNoRows)

	store := NewLoyaltyReadStore(q, nil)
	ctx := context.Background()

	profile, err := store.Profile(ctx, clientID)
	require.NoError(t, err)
	assert.Nil(t, profile)

	ref, err := store.AsReferred(ctx, clientID)
	require.NoError(t, err)
	assert.Nil(t, ref)

	bd, err := store.Birthday(ctx, clientID, 2026)
	require.NoError(t, err)
	assert.Nil(t, bd)

	q.AssertExpectations(t)
}

func TestLoyaltyProfileByReferralCodeNotFound(t *testing.T) {
	q := new(MockLoyaltyReadQueries)
	q.On("GetLoyaltyProfileByReferralCode", mock.Anything, mock.Anything, "ABCD1234").Return(sqlc.LoyaltyProfiles{}, sql.ErrNoRows)

	p, err := NewLoyaltyReadStore(q, nil).ProfileByReferralCode(context.Background(), "ABCD1234")

	assert.Nil(t, p)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestLoyaltyReadErrorsAreWrapped(t *testing.T) {
	clientID := uuid.New()
	q := new(MockLoyaltyReadQueries)
	q.On("ListReferralsBySponsor", mock.Anything, mock.Anything, clientID).Return([]sqlc.Referrals(nil), assert.AnError)

	refs, err := NewLoyaltyReadStore(q, nil).AsSponsor(context.Background(), clientID)

	assert.Nil(t, refs)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
