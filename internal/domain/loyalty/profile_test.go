//go:build unit

package loyalty_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T, individual, sessions, packages int) *loyalty.Profile {
	t.Helper()
	code, err := loyalty.NewReferralCode("ABCD2345")
	require.NoError(t, err)
	p, err := loyalty.ReconstructProfile(uuid.New(), uuid.New(), individual, sessions, packages, code, 0, time.Time{})
	require.NoError(t, err)
	return p
}

func TestProfileEligibility(t *testing.T) {
	th := loyalty.DefaultThresholds()

	cases := []struct {
		name        string
		individual  int
		packages    int
		wantLoyalty bool
		wantPackage bool
		wantUntil   int
	}{
		{name: "fresh client", wantUntil: 5},
		{name: "one short of loyalty", individual: 4, packages: 1, wantUntil: 1},
		{name: "exactly at thresholds", individual: 5, packages: 2, wantLoyalty: true, wantPackage: true},
		{name: "above thresholds", individual: 9, packages: 3, wantLoyalty: true, wantPackage: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newProfile(t, c.individual, 0, c.packages)
			assert.Equal(t, c.wantLoyalty, p.LoyaltyEligible(th))
			assert.Equal(t, c.wantPackage, p.PackageEligible(th))
			assert.Equal(t, c.wantUntil, p.VisitsUntilLoyalty(th))
		})
	}
}

func TestProfileRecordVisit(t *testing.T) {
	th := loyalty.DefaultThresholds()
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("individual services accumulate", func(t *testing.T) {
		p := newProfile(t, 3, 0, 0)
		p.RecordVisit(loyalty.Visit{IndividualServices: 2, AmountCents: 9000}, th, now)

		assert.Equal(t, 5, p.IndividualServices())
		assert.Equal(t, int64(9000), p.TotalSpentCents())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("loyalty redemption resets and does not count the visit", func(t *testing.T) {
		p := newProfile(t, 6, 0, 0)
		p.RecordVisit(loyalty.Visit{IndividualServices: 1, LoyaltyRedeemed: true}, th, now)

		assert.Equal(t, 0, p.IndividualServices())
	})

	t.Run("package sessions roll over into completed packages", func(t *testing.T) {
		p := newProfile(t, 0, 3, 0)
		p.RecordVisit(loyalty.Visit{PackageSessions: 6}, th, now)

		assert.Equal(t, 2, p.PackagesCompleted())
		assert.Equal(t, 1, p.PackageSessions())
	})

	t.Run("package redemption resets completed packages", func(t *testing.T) {
		p := newProfile(t, 0, 2, 2)
		p.RecordVisit(loyalty.Visit{PackageSessions: 1, PackageRedeemed: true}, th, now)

		assert.Equal(t, 0, p.PackagesCompleted())
		assert.Equal(t, 3, p.PackageSessions())
	})

	t.Run("negative inputs are ignored", func(t *testing.T) {
		p := newProfile(t, 1, 1, 0)
		p.RecordVisit(loyalty.Visit{IndividualServices: -3, PackageSessions: -1, AmountCents: -100}, th, now)

		assert.Equal(t, 1, p.IndividualServices())
		assert.Equal(t, 1, p.PackageSessions())
		assert.Equal(t, int64(0), p.TotalSpentCents())
	})
}

func TestReconstructProfileRejectsNegative(t *testing.T) {
	code, _ := loyalty.NewReferralCode("ABCDEF")
	_, err := loyalty.ReconstructProfile(uuid.New(), uuid.New(), -1, 0, 0, code, 0, time.Time{})
	require.ErrorIs(t, err, loyalty.ErrNegativeCounter)
}

func TestReferralCode(t *testing.T) {
	c, err := loyalty.NewReferralCode(" abcd1234 ")
	require.NoError(t, err)
	assert.Equal(t, "ABCD1234", c.Value())

	_, err = loyalty.NewReferralCode("ABC")
	require.ErrorIs(t, err, loyalty.ErrInvalidReferralCode)
	_, err = loyalty.NewReferralCode("ABCD-1234")
	require.ErrorIs(t, err, loyalty.ErrInvalidReferralCode)

	gen, err := loyalty.GenerateReferralCode()
	require.NoError(t, err)
	_, err = loyalty.NewReferralCode(gen.Value())
	require.NoError(t, err)
}

func TestBirthdayEligible(t *testing.T) {
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	june := time.Date(1990, 6, 22, 0, 0, 0, 0, time.UTC)
	july := time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC)
	clientID := uuid.New()

	granted := loyalty.GrantBirthdayDiscount(clientID, now)
	lastYear := loyalty.ReconstructBirthdayDiscount(uuid.New(), clientID, 2025, now.AddDate(-1, 0, 0), nil, nil)
	usedAt := now.Add(-time.Hour)
	used := loyalty.ReconstructBirthdayDiscount(uuid.New(), clientID, 2026, now, &usedAt, nil)

	cases := []struct {
		name      string
		birthDate *time.Time
		record    *loyalty.BirthdayDiscount
		want      bool
	}{
		{name: "birth month with unused record", birthDate: &june, record: granted, want: true},
		{name: "no birth date", record: granted},
		{name: "other month", birthDate: &july, record: granted},
		{name: "no record granted", birthDate: &june},
		{name: "record from last year", birthDate: &june, record: lastYear},
		{name: "already used", birthDate: &june, record: used},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, loyalty.BirthdayEligible(c.birthDate, c.record, now))
		})
	}
}

func TestBirthdayDiscountUse(t *testing.T) {
	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	d := loyalty.GrantBirthdayDiscount(uuid.New(), now)
	resID := uuid.New()

	require.NoError(t, d.Use(resID, now))
	assert.True(t, d.IsUsed())
	assert.Equal(t, &resID, d.ReservationID())

	require.ErrorIs(t, d.Use(uuid.New(), now), loyalty.ErrBirthdayDiscountUsed)
}

func TestThresholdsValidate(t *testing.T) {
	require.NoError(t, loyalty.DefaultThresholds().Validate())
	require.ErrorIs(t, loyalty.Thresholds{IndividualServices: 5, CompletedPackages: 2}.Validate(), loyalty.ErrInvalidThreshold)
}
