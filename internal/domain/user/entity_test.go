//go:build unit

package user_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewName("Camille", "Martin")
		expected := user.NewUser(b.OrganizationID, email, "hashed_password", user.RoleAdmin, name)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, b.OrganizationID, actual.OrganizationID())
		assert.Equal(t, "Camille Martin", actual.Name().Full())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "upper case is normalized", mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "no at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "client", mutate: func(b *builder.UserBuilder) { b.WithRole("client") }},
			{name: "staff", mutate: func(b *builder.UserBuilder) { b.WithRole("staff") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "super admin", mutate: func(b *builder.UserBuilder) { b.WithRole("super_admin") }},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("owner") }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "first name only", mutate: func(b *builder.UserBuilder) { b.LastName = "" }},
			{name: "missing first name", mutate: func(b *builder.UserBuilder) { b.FirstName = "   " }, errIs: user.ErrInvalidName},
		})
	})

	t.Run("state", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "active", mutate: func(b *builder.UserBuilder) {}},
			{name: "inactive", mutate: func(b *builder.UserBuilder) { b.AsInactive() }},
		})
	})
}

func TestEmail_Normalizes(t *testing.T) {
	email, err := user.NewEmail("  Client@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", email.Value())
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role user.Role
		min  user.Role
		want bool
	}{
		{user.RoleClient, user.RoleClient, true},
		{user.RoleClient, user.RoleStaff, false},
		{user.RoleStaff, user.RoleStaff, true},
		{user.RoleAdmin, user.RoleStaff, true},
		{user.RoleStaff, user.RoleAdmin, false},
		{user.RoleSuperAdmin, user.RoleAdmin, true},
		{user.Role("owner"), user.RoleClient, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.min), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}

func TestNewPhone(t *testing.T) {
	phone, err := user.NewPhone("")
	require.NoError(t, err)
	assert.Nil(t, phone)

	phone, err = user.NewPhone(" +33 6 12 34 56 78 ")
	require.NoError(t, err)
	require.NotNil(t, phone)
	assert.Equal(t, "+33 6 12 34 56 78", *phone)

	_, err = user.NewPhone("call me")
	assert.ErrorIs(t, err, user.ErrInvalidPhone)
}

func TestUser_HasBirthdayIn(t *testing.T) {
	april := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	u, err := builder.NewUserBuilder().AsClient().WithBirthDate(time.Date(1990, 4, 20, 0, 0, 0, 0, time.UTC)).BuildDomain()
	require.NoError(t, err)
	assert.True(t, u.HasBirthdayIn(april))
	assert.False(t, u.HasBirthdayIn(april.AddDate(0, 1, 0)))

	noDate, err := builder.NewUserBuilder().AsClient().BuildDomain()
	require.NoError(t, err)
	assert.False(t, noDate.HasBirthdayIn(april))
}

func TestUser_Deactivate(t *testing.T) {
	email, _ := user.NewEmail("staff@example.com")
	name, _ := user.NewName("Lea", "")
	u := user.NewUser(uuid.New(), email, "hash", user.RoleStaff, name)

	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Activate()
	assert.True(t, u.IsActive())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
