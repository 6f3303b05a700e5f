//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/shared"
	sharedmock "salon-booking/tests/mock/shared"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// txMocks wires a mock unit of work whose transactions run inline against mock repositories.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	idempotency   *sharedmock.MockIdempotencyRepository
	reservations  *sharedmock.MockReservationRepository
	loyalty       *sharedmock.MockLoyaltyRepository
	referrals     *sharedmock.MockReferralRepository
	giftCards     *sharedmock.MockGiftCardRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	organizations *sharedmock.MockOrganizationRepository
	marketing     *sharedmock.MockMarketingRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		loyalty:       sharedmock.NewMockLoyaltyRepository(ctrl),
		referrals:     sharedmock.NewMockReferralRepository(ctrl),
		giftCards:     sharedmock.NewMockGiftCardRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		organizations: sharedmock.NewMockOrganizationRepository(ctrl),
		marketing:     sharedmock.NewMockMarketingRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Loyalty().Return(m.loyalty).AnyTimes()
	m.tx.EXPECT().Referrals().Return(m.referrals).AnyTimes()
	m.tx.EXPECT().GiftCards().Return(m.giftCards).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Organizations().Return(m.organizations).AnyTimes()
	m.tx.EXPECT().Marketing().Return(m.marketing).AnyTimes()
	return m
}

// expectFreshKey makes the idempotency claim succeed on first insert.
func (m *txMocks) expectFreshKey() {
	m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil).Times(1)
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

// hashOf mirrors how request bodies are fingerprinted for idempotency.
func hashOf(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
