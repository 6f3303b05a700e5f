//go:build unit

package pgconv

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableRoundTrips(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, &id, UUIDPtrFromPgtype(UUIDPtrToPgtype(&id)))
	assert.Nil(t, UUIDPtrFromPgtype(UUIDPtrToPgtype(nil)))

	assert.Nil(t, StringPtrFromPgtype(OptionalStringToPgtype("")))
	assert.Equal(t, "x", StringFromPgtype(OptionalStringToPgtype("x")))
	assert.Equal(t, "", StringFromPgtype(pgtype.Text{}))

	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	require.NotNil(t, TimePtrFromPgtype(TimePtrToPgtype(&now)))
	assert.Nil(t, TimePtrFromPgtype(TimePtrToPgtype(nil)))
}

func TestDatePtrToPgtypeTruncatesClock(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	birth := time.Date(1990, 7, 21, 23, 45, 0, 0, paris)

	d := DatePtrToPgtype(&birth)
	require.True(t, d.Valid)

	back := DatePtrFromPgtype(d)
	require.NotNil(t, back)
	assert.Equal(t, time.Date(1990, 7, 21, 0, 0, 0, 0, time.UTC), *back)
	assert.Nil(t, DatePtrFromPgtype(DatePtrToPgtype(nil)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(assert.AnError))
}
