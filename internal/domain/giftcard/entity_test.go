//go:build unit

package giftcard_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/giftcard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newCard(t *testing.T, amount int64, expiresAt *time.Time) *giftcard.GiftCard {
	t.Helper()
	code, err := giftcard.NewCode("GIFT2026ABCD")
	require.NoError(t, err)
	gc, err := giftcard.NewGiftCard(uuid.New(), code, amount, expiresAt, nil, now.Add(-time.Hour))
	require.NoError(t, err)
	return gc
}

func TestNewCode(t *testing.T) {
	c, err := giftcard.NewCode(" gift-2026-abcd ")
	require.NoError(t, err)
	assert.Equal(t, "GIFT2026ABCD", c.Value())

	for _, bad := range []string{"", "SHORT", "THISCODEISFARTOOLONG", "GIFT_2026"} {
		_, err := giftcard.NewCode(bad)
		require.ErrorIs(t, err, giftcard.ErrInvalidCode, bad)
	}

	gen, err := giftcard.GenerateCode()
	require.NoError(t, err)
	_, err = giftcard.NewCode(gen.Value())
	require.NoError(t, err)
}

func TestNewGiftCard(t *testing.T) {
	code, _ := giftcard.NewCode("GIFT2026ABCD")
	past := now.Add(-time.Minute)

	_, err := giftcard.NewGiftCard(uuid.New(), code, 0, nil, nil, now)
	require.ErrorIs(t, err, giftcard.ErrInvalidAmount)

	_, err = giftcard.NewGiftCard(uuid.New(), code, 5000, &past, nil, now)
	require.ErrorIs(t, err, giftcard.ErrExpiryInThePast)
}

func TestRedeem(t *testing.T) {
	t.Run("partial redemption keeps card active", func(t *testing.T) {
		gc := newCard(t, 10000, nil)

		used, err := gc.Redeem(4000, now)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), used)
		assert.Equal(t, int64(6000), gc.BalanceCents())
		assert.Equal(t, giftcard.StatusActive, gc.Status())
	})

	t.Run("redemption capped at balance exhausts the card", func(t *testing.T) {
		gc := newCard(t, 3000, nil)

		used, err := gc.Redeem(8000, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), used)
		assert.Zero(t, gc.BalanceCents())
		assert.Equal(t, giftcard.StatusExhausted, gc.Status())

		_, err = gc.Redeem(100, now)
		require.ErrorIs(t, err, giftcard.ErrCardExhausted)
	})

	t.Run("expired card", func(t *testing.T) {
		exp := now.Add(time.Minute)
		gc := newCard(t, 3000, &exp)

		assert.Equal(t, int64(3000), gc.AvailableCents(now))
		_, err := gc.Redeem(100, now.Add(time.Hour))
		require.ErrorIs(t, err, giftcard.ErrCardExpired)
		assert.Zero(t, gc.AvailableCents(now.Add(time.Hour)))
	})

	t.Run("disabled card", func(t *testing.T) {
		gc := newCard(t, 3000, nil)
		gc.Disable(now)

		_, err := gc.Redeem(100, now)
		require.ErrorIs(t, err, giftcard.ErrCardDisabled)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		gc := newCard(t, 3000, nil)
		_, err := gc.Redeem(0, now)
		require.ErrorIs(t, err, giftcard.ErrInvalidAmount)
	})
}
