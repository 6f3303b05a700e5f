package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"
)

// MaintenanceCommands are the periodic jobs run by the scheduler.
type MaintenanceCommands interface {
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
	ExpireGiftCards(ctx context.Context) (int64, error)
	GrantBirthdayDiscounts(ctx context.Context) (int, error)
}

type maintenanceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, clock: clk}
}

func (uc *maintenanceCommandsImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Idempotency().DeleteExpired(ctx, tx.DB())
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return n, nil
}

func (uc *maintenanceCommandsImpl) ExpireGiftCards(ctx context.Context) (int64, error) {
	var n int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.GiftCards().ExpireDue(ctx, tx.DB(), uc.clock.Now())
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return n, nil
}

// GrantBirthdayDiscounts creates this year's record for every client born in
// the current month. Existing records are left untouched, so reruns are safe.
func (uc *maintenanceCommandsImpl) GrantBirthdayDiscounts(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	granted := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		granted = 0
		clients, err := tx.Loyalty().ClientsBornIn(ctx, tx.DB(), now.Month())
		if err != nil {
			return err
		}
		for _, id := range clients {
			ok, err := tx.Loyalty().GrantBirthday(ctx, tx.DB(), loyalty.GrantBirthdayDiscount(id, now))
			if err != nil {
				return err
			}
			if ok {
				granted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	slog.Info("birthday discounts granted", "month", now.Month().String(), "granted", granted)
	return granted, nil
}
