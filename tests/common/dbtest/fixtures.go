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

// SeedPost creates a post owned by coachID. Posts have no API of their own.
func SeedPost(t *testing.T, db DBLike, coachID string) uuid.UUID {
	t.Helper()

	postID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO posts (id, coach_id) VALUES ($1, $2)", postID, coachID)
	require.NoError(t, err)
	return postID
}

func CountTags(t *testing.T, db DBLike, name string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM tags WHERE name = $1", name).Scan(&n)
	require.NoError(t, err)
	return n
}

func SlotIsOpen(t *testing.T, db DBLike, key string) bool {
	t.Helper()

	var open bool
	err := db.QueryRow(context.Background(), "SELECT is_open FROM availabilities WHERE uniquecheck = $1", key).Scan(&open)
	require.NoError(t, err)
	return open
}

// SlotIsLinked reports whether a booking references the slot.
func SlotIsLinked(t *testing.T, db DBLike, key string) bool {
	t.Helper()

	var linked bool
	err := db.QueryRow(context.Background(), "SELECT EXISTS (SELECT 1 FROM booking_slots WHERE availability_key = $1)", key).Scan(&linked)
	require.NoError(t, err)
	return linked
}

func CountOutboxEvents(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM outbox_events WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
