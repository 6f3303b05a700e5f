package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultIdempotencyTTL = 24 * time.Hour

// idempotencyClaim is held by the request that owns the key. ReplayID is set
// instead when an identical request already completed.
type idempotencyClaim struct {
	Key      uuid.UUID
	UserID   uuid.UUID
	Hash     string
	ReplayID *uuid.UUID
}

type idempotencyGuard struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	ttl   time.Duration
}

func newIdempotencyGuard(uow shared.UnitOfWork, clk clock.Clock, ttl time.Duration) idempotencyGuard {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return idempotencyGuard{uow: uow, clock: clk, ttl: ttl}
}

// claim registers the key in its own short transaction so a concurrent
// duplicate sees it as processing.
func (g idempotencyGuard) claim(ctx context.Context, key, userID uuid.UUID, endpoint string, req any) (*idempotencyClaim, error) {
	hash, err := requestHash(req)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	c := &idempotencyClaim{Key: key, UserID: userID, Hash: hash}
	expiresAt := g.clock.Now().Add(g.ttl)

	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, endpoint, hash, expiresAt)
		if err != nil {
			return errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if inserted {
			return nil
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrIdempotencyCheckFailed)
			}
			n, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, endpoint, hash, expiresAt)
			if err != nil {
				return errs.Mark(err, ErrIdempotencyCheckFailed)
			}
			if n == 0 {
				return ErrIdempotencyInProgress
			}
			return nil
		}

		if existing.RequestHash != hash || existing.Endpoint != endpoint {
			return ErrIdempotencyKeyReused
		}
		switch existing.Status {
		case shared.IdempotencyStatusCompleted:
			if existing.ResultID == nil {
				return errs.New("completed request missing result ID")
			}
			c.ReplayID = existing.ResultID
			return nil
		case shared.IdempotencyStatusProcessing:
			return ErrIdempotencyInProgress
		default:
			return errs.New("invalid idempotency key status")
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (g idempotencyGuard) complete(ctx context.Context, tx shared.Tx, c *idempotencyClaim, resultID uuid.UUID) error {
	if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), c.Key, c.UserID, idHash(resultID), resultID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// release frees the key after a failed attempt so the client can retry with it.
func (g idempotencyGuard) release(ctx context.Context, c *idempotencyClaim) {
	err := g.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), c.Key, c.UserID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", c.Key.String(), "error", err.Error())
	}
}

func requestHash(req any) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func idHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
