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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertLot creates a lot and, when occupied is not nil, its status row.
func InsertLot(t *testing.T, db DBLike, name string, capacity int, occupied *int) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO parking_lots (name, capacity, rate, location, latitude, longitude, special_info)
		VALUES ($1, $2, 'Free', 'Main Campus', 37.7749, -122.4194, NULL)
		RETURNING id`, name, capacity).Scan(&id)
	require.NoError(t, err)

	if occupied != nil {
		_, err = db.Exec(ctx,
			"INSERT INTO parking_status (lot_id, occupied, last_updated) VALUES ($1, $2, now())",
			id, *occupied)
		require.NoError(t, err)
	}
	return id
}

func Occupied(t *testing.T, db DBLike, lotID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT occupied FROM parking_status WHERE lot_id = $1", lotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountReservations(t *testing.T, db DBLike, lotID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE lot_id = $1", lotID).Scan(&n)
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
