//go:build unit

package referral_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/referral"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferral(t *testing.T) {
	org, a, b := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	_, err := referral.NewReferral(org, a, a, now)
	require.ErrorIs(t, err, referral.ErrSelfReferral)

	r, err := referral.NewReferral(org, a, b, now)
	require.NoError(t, err)
	assert.Equal(t, a, r.SponsorID())
	assert.Equal(t, b, r.ReferredID())
}

func TestReferralRewardsAreOneShot(t *testing.T) {
	now := time.Now()
	r, err := referral.NewReferral(uuid.New(), uuid.New(), uuid.New(), now)
	require.NoError(t, err)

	require.NoError(t, r.UseSponsorReward(now))
	require.ErrorIs(t, r.UseSponsorReward(now), referral.ErrRewardAlreadyUsed)

	require.NoError(t, r.UseReferredReward(now))
	require.ErrorIs(t, r.UseReferredReward(now), referral.ErrRewardAlreadyUsed)
}

func TestStatusFor(t *testing.T) {
	org, client, sponsor := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	used := now.Add(-time.Hour)

	asReferred := referral.ReconstructReferral(uuid.New(), org, sponsor, client, nil, nil, now)
	first := referral.ReconstructReferral(uuid.New(), org, client, uuid.New(), &used, nil, now.Add(-48*time.Hour))
	second := referral.ReconstructReferral(uuid.New(), org, client, uuid.New(), nil, nil, now.Add(-24*time.Hour))

	t.Run("referred and sponsoring", func(t *testing.T) {
		st := referral.StatusFor(client, asReferred, []*referral.Referral{first, second})

		assert.True(t, st.ReferredDiscountAvailable)
		assert.True(t, st.SponsorDiscountAvailable)
		assert.Equal(t, 2, st.SponsoredCount)
		assert.Equal(t, 1, st.PendingSponsorRewards)
		require.NotNil(t, st.ReferredBy)
		assert.Equal(t, sponsor, *st.ReferredBy)
	})

	t.Run("nothing open", func(t *testing.T) {
		usedReferred := referral.ReconstructReferral(uuid.New(), org, sponsor, client, nil, &used, now)
		st := referral.StatusFor(client, usedReferred, []*referral.Referral{first})

		assert.False(t, st.ReferredDiscountAvailable)
		assert.False(t, st.SponsorDiscountAvailable)
	})

	t.Run("oldest pending sponsor reward", func(t *testing.T) {
		assert.Same(t, second, referral.OldestPendingSponsorReward([]*referral.Referral{first, second}))
		assert.Nil(t, referral.OldestPendingSponsorReward([]*referral.Referral{first}))
	})
}
