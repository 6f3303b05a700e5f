//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultOrganizationSlug = "default-salon"
	// bcrypt hash of "password123"
	TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func DefaultOrganizationID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var orgID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM organizations WHERE slug = $1", DefaultOrganizationSlug).Scan(&orgID)
	require.NoError(t, err)
	return orgID
}

func CreateTestOrganization(t *testing.T, db DBLike, name, slug string) uuid.UUID {
	t.Helper()

	orgID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO organizations (id, name, slug) VALUES ($1, $2, $3) ON CONFLICT (slug) DO NOTHING", orgID, name, slug)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM organizations WHERE slug = $1", slug).Scan(&orgID)
	}

	return orgID
}

// CreateTestUser inserts an active user in the default organization.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()
	return CreateTestUserIn(t, db, DefaultOrganizationID(t, db), email, role)
}

func CreateTestUserIn(t *testing.T, db DBLike, orgID uuid.UUID, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, organization_id, email, password_hash, role, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, $5, 'Test', 'User', true) ON CONFLICT (email) DO NOTHING`,
		userID, orgID, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		return userID
	}

	if role == "client" {
		_, err = db.Exec(ctx, "INSERT INTO loyalty_profiles (client_id, organization_id, referral_code) VALUES ($1, $2, $3)",
			userID, orgID, "REF"+strings.ToUpper(userID.String()[:6]))
		require.NoError(t, err)
	}

	return userID
}

// SetLoyaltyCounters overwrites a client's loyalty counters.
func SetLoyaltyCounters(t *testing.T, db DBLike, clientID uuid.UUID, individual, packageSessions int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE loyalty_profiles SET individual_services = $2, package_sessions = $3 WHERE client_id = $1",
		clientID, individual, packageSessions)
	require.NoError(t, err)
}

func CreateTestReservation(t *testing.T, db DBLike, orgID, clientID, createdBy uuid.UUID, startsAt time.Time, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO reservations (id, organization_id, client_id, created_by, starts_at, ends_at, status, total_cents)
		VALUES ($1, $2, $3, $4, $5, $6, 'confirmed', $7)`,
		id, orgID, clientID, createdBy, startsAt, startsAt.Add(time.Hour), priceCents)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO reservation_lines (reservation_id, position, name, price_cents) VALUES ($1, 0, 'Facial', $2)",
		id, priceCents)
	require.NoError(t, err)

	return id
}

func CreateTestGiftCard(t *testing.T, db DBLike, orgID uuid.UUID, code string, balanceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO gift_cards (id, organization_id, code, initial_cents, balance_cents, status)
		VALUES ($1, $2, $3, $4, $4, 'active')`, id, orgID, code, balanceCents)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO organizations (name, slug) VALUES
		    ('Default Salon', 'default-salon'),
		    ('Other Salon', 'other-salon')
		ON CONFLICT (slug) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
