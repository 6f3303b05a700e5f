//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/tests/common/builder"
	repositorymock "salon-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: user created"},
		{
			name:       "error: duplicate email",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: unknown organization",
			returnErr:  &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database failure",
			returnErr:  errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries, mockDB)

			u, err := builder.NewUserBuilder().AsClient().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateUser(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) error {
					assert.Equal(t, u.ID(), arg.ID)
					assert.Equal(t, u.OrganizationID(), arg.OrganizationID)
					assert.Equal(t, "client", arg.Role)
					return tc.returnErr
				})

			err = repo.Create(ctx, mockDB, u)
			if tc.returnErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: maps the row to the domain user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUserRepository(mockQueries, mockDB)

		b := builder.NewUserBuilder().WithRole("staff")
		mockQueries.EXPECT().FindUserByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		u, err := repo.FindByID(ctx, mockDB, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, u.ID())
		assert.Equal(t, b.Email, u.Email().Value())
		assert.Equal(t, user.RoleStaff, u.Role())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUserRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().FindUserByID(ctx, mockDB, id).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, mockDB, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: corrupt row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUserRepository(mockQueries, mockDB)

		b := builder.NewUserBuilder().WithRole("owner")
		mockQueries.EXPECT().FindUserByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		_, err := repo.FindByID(ctx, mockDB, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		returnErr  error
		wantErr    bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: profile updated", affected: 1},
		{name: "error: row vanished", affected: 0, wantErr: true, expectKind: infra.KindNotFound},
		{name: "error: database failure", returnErr: assert.AnError, wantErr: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries, mockDB)

			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().UpdateUserProfile(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.returnErr)

			err = repo.Update(ctx, mockDB, u)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success", mockError: nil, wantError: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateUserLastLogin(ctx, mockDB, userID).Return(tt.mockError)

			err := repo.UpdateLastLogin(ctx, mockDB, userID)
			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// mockDBTX satisfies sqlc.DBTX; every query goes through the sqlc mock.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
