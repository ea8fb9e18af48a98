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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PasswordHash is bcrypt("password123").
const PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultSessionPriceMinor = 1500

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, first_name, last_name, is_active) VALUES ($1, $2, $3, $4, 'Test', 'User', true) ON CONFLICT (email) DO NOTHING",
		userID, email, PasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

// CreateSessionTemplate adds a weekly template under a fresh session type.
// dayOfWeek follows time.Weekday (0 = Sunday).
func CreateSessionTemplate(t *testing.T, db DBLike, dayOfWeek time.Weekday, start, end string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var typeID uuid.UUID
	err := db.QueryRow(ctx, "INSERT INTO session_types (name) VALUES ($1) RETURNING id",
		"PT "+uuid.NewString()[:8]).Scan(&typeID)
	require.NoError(t, err)

	var templateID uuid.UUID
	err = db.QueryRow(ctx, `INSERT INTO session_templates (session_type_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3, $4) RETURNING id`, typeID, int(dayOfWeek), start, end).Scan(&templateID)
	require.NoError(t, err)
	return templateID
}

func CreateCreditPackage(t *testing.T, db DBLike, name string, sessions int, priceMinor int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO credit_packages (name, session_count, price_minor) VALUES ($1, $2, $3) RETURNING id",
		name, sessions, priceMinor).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateCreditBatch inserts a batch directly, bypassing any order.
func CreateCreditBatch(t *testing.T, db DBLike, ownerID uuid.UUID, credits int, issuedAt, expiresAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO credit_batches (id, owner_id, credits_issued, credits_remaining, issued_at, expires_at)
		VALUES ($1, $2, $3, $3, $4, $5)`, id, ownerID, credits, issuedAt, expiresAt)
	require.NoError(t, err)
	return id
}

func Count(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func CreditsRemaining(t *testing.T, db DBLike, batchID uuid.UUID) int {
	t.Helper()
	return Count(t, db, "SELECT credits_remaining FROM credit_batches WHERE id = $1", batchID)
}

func OrderStatus(t *testing.T, db DBLike, reference string) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT status FROM orders WHERE provider_reference = $1", reference).Scan(&status))
	return status
}

// SeedReferenceData inserts the settings every test expects.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO site_settings (key, value) VALUES ('session_price_minor', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, fmt.Sprint(DefaultSessionPriceMinor))
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
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
