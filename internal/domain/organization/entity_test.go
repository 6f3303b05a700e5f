//go:build unit

package organization_test

import (
	"testing"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/organization"
	"salon-booking/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlug(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "Spa-Lumiere", want: "spa-lumiere"},
		{in: "  beauty42 ", want: "beauty42"},
		{in: "ab", wantErr: true},
		{in: "-leading", wantErr: true},
		{in: "has space", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			s, err := organization.NewSlug(c.in)
			if c.wantErr {
				require.ErrorIs(t, err, organization.ErrInvalidSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, s.Value())
		})
	}
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*organization.Settings)
		errIs  error
	}{
		{name: "defaults", mutate: func(*organization.Settings) {}},
		{name: "vat zero is allowed", mutate: func(s *organization.Settings) { s.VATRateBP = 0 }},
		{name: "vat over 100%", mutate: func(s *organization.Settings) { s.VATRateBP = 10001 }, errIs: organization.ErrInvalidVATRate},
		{name: "negative rate", mutate: func(s *organization.Settings) { s.Rates.LoyaltyCents = -1 }, errIs: payment.ErrNegativeRate},
		{name: "zero threshold", mutate: func(s *organization.Settings) { s.Thresholds.IndividualServices = 0 }, errIs: loyalty.ErrInvalidThreshold},
		{name: "lowercase prefix", mutate: func(s *organization.Settings) { s.InvoicePrefix = "inv" }, errIs: organization.ErrInvalidInvoicePrefix},
		{name: "bad currency", mutate: func(s *organization.Settings) { s.Currency = "EURO" }, errIs: organization.ErrInvalidCurrency},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := organization.DefaultSettings()
			c.mutate(&s)
			err := s.Validate()
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestOrganizationUpdateSettings(t *testing.T) {
	slug, err := organization.NewSlug("spa-lumiere")
	require.NoError(t, err)
	org, err := organization.NewOrganization("Spa Lumière", slug, organization.DefaultSettings())
	require.NoError(t, err)

	bad := organization.DefaultSettings()
	bad.VATRateBP = -5
	require.ErrorIs(t, org.UpdateSettings(bad), organization.ErrInvalidVATRate)
	assert.Equal(t, 2000, org.Settings().VATRateBP)

	good := organization.DefaultSettings()
	good.Rates.BirthdayCents = 1500
	require.NoError(t, org.UpdateSettings(good))
	assert.Equal(t, int64(1500), org.Settings().Rates.BirthdayCents)
}

func TestNewOrganizationRejectsEmptyName(t *testing.T) {
	slug, _ := organization.NewSlug("spa-lumiere")
	_, err := organization.NewOrganization("", slug, organization.DefaultSettings())
	require.ErrorIs(t, err, organization.ErrInvalidName)
}
