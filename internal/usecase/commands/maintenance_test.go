//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/loyalty"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMaintenanceCommands(t *testing.T) {
	now := time.Date(2026, 4, 1, 3, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*txMocks, commands.MaintenanceCommands) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		return m, commands.NewMaintenanceCommands(m.uow, clock.NewMockClock(now))
	}

	t.Run("purge expired keys", func(t *testing.T) {
		m, uc := setup(t)
		m.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(7), nil)

		n, err := uc.PurgeExpiredIdempotencyKeys(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	t.Run("purge failure is a database error", func(t *testing.T) {
		m, uc := setup(t)
		m.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))

		_, err := uc.PurgeExpiredIdempotencyKeys(context.Background())
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
	})

	t.Run("expire gift cards at the current time", func(t *testing.T) {
		m, uc := setup(t)
		m.giftCards.EXPECT().ExpireDue(gomock.Any(), gomock.Any(), now).Return(int64(2), nil)

		n, err := uc.ExpireGiftCards(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("birthday grants count only new records", func(t *testing.T) {
		m, uc := setup(t)
		fresh, already := uuid.New(), uuid.New()
		m.loyalty.EXPECT().ClientsBornIn(gomock.Any(), gomock.Any(), time.April).Return([]uuid.UUID{fresh, already}, nil)
		m.loyalty.EXPECT().GrantBirthday(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, d *loyalty.BirthdayDiscount) (bool, error) {
				assert.Equal(t, 2026, d.Year())
				return d.ClientID() == fresh, nil
			}).Times(2)

		n, err := uc.GrantBirthdayDiscounts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("birthday grant failure aborts the run", func(t *testing.T) {
		m, uc := setup(t)
		m.loyalty.EXPECT().ClientsBornIn(gomock.Any(), gomock.Any(), time.April).Return([]uuid.UUID{uuid.New()}, nil)
		m.loyalty.EXPECT().GrantBirthday(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("deadlock"))

		n, err := uc.GrantBirthdayDiscounts(context.Background())
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
		assert.Zero(t, n)
	})
}
