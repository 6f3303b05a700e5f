//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyReadQueries struct {
	mock.Mock
}

func (m *MockIdempotencyReadQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IdempotencyKeys), args.Error(1)
}

func TestIdempotencyGet(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	key, userID, resultID := uuid.New(), uuid.New(), uuid.New()
	params := sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID}

	row := func(expiresAt time.Time) sqlc.IdempotencyKeys {
		return sqlc.IdempotencyKeys{
			Key:         key,
			UserID:      userID,
			Endpoint:    "POST /reservations/validate",
			RequestHash: "abc",
			Status:      "completed",
			ResultID:    pgtype.UUID{Bytes: resultID, Valid: true},
			ExpiresAt:   pgtype.Timestamptz{Time: expiresAt, Valid: true},
		}
	}

	tests := []struct {
		name     string
		row      sqlc.IdempotencyKeys
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "live key", row: row(now.Add(time.Hour))},
		{name: "expired key reads as missing", row: row(now.Add(-time.Minute)), wantKind: infra.KindNotFound},
		{name: "missing key", row: sqlc.IdempotencyKeys{}, err: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", row: sqlc.IdempotencyKeys{}, err: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockIdempotencyReadQueries)
			q.On("GetIdempotencyKey", mock.Anything, mock.Anything, params).Return(tt.row, tt.err)

			store := NewIdempotencyReadStore(q, func() time.Time { return now })
			rec, err := store.Get(context.Background(), nil, key, userID)

			if tt.wantKind != "" {
				assert.Nil(t, rec)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "POST /reservations/validate", rec.Endpoint)
			require.NotNil(t, rec.ResultID)
			assert.Equal(t, resultID, *rec.ResultID)
		})
	}
}
