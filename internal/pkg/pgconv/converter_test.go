//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"campus-parking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNullableConversions(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
		info := "Visitor Parking"
		assert.Equal(t, &info, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&info)))
		assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)
	})

	t.Run("int4 falls back on NULL", func(t *testing.T) {
		assert.Equal(t, int32(0), pgconv.Int32FromPgtype(pgtype.Int4{}, 0))
		assert.Equal(t, int32(12), pgconv.Int32FromPgtype(pgtype.Int4{Int32: 12, Valid: true}, 0))
	})

	t.Run("timestamp is stored as UTC", func(t *testing.T) {
		local := time.Date(2026, 10, 15, 9, 30, 0, 0, time.FixedZone("JST", 9*60*60))
		ts := pgconv.TimeToPgtype(local)
		assert.True(t, ts.Valid)
		assert.Equal(t, time.UTC, ts.Time.Location())
		assert.True(t, local.Equal(ts.Time))
		assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamp{}))
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("other")))
}
