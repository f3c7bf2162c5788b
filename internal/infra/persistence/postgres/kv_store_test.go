package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	domainerrors "fieldops/internal/domain/errors"
	"fieldops/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	store, err := NewKVStore(db, "fieldops")
	require.NoError(t, err)

	_, ok, err := store.Get(ctx, "goals")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "goals", []byte(`[1]`)))
	require.NoError(t, store.Set(ctx, "goals", []byte(`[1,2]`)), "set overwrites")

	got, ok, err := store.Get(ctx, "goals")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(got))

	var count int64
	require.NoError(t, db.Model(&model.KVEntryModel{}).Where("key = ?", "fieldops:goals").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, store.Clear(ctx, "goals"))
	_, ok, err = store.Get(ctx, "goals")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_ClosedDatabase(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	store, err := NewKVStore(db, "")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, _, err = store.Get(ctx, "goals")
	assert.ErrorIs(t, err, domainerrors.ErrStoreFailed)
	assert.ErrorIs(t, store.Set(ctx, "goals", []byte("x")), domainerrors.ErrStoreFailed)
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 4, WaitDuration: 10 * time.Millisecond}

	_, _, waited := poolWait(prev, prev)
	assert.False(t, waited, "no new waits")

	level, attrs, waited := poolWait(prev, sql.DBStats{WaitCount: 6, WaitDuration: 20 * time.Millisecond, MaxOpenConnections: 4})
	require.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))

	level, _, waited = poolWait(prev, sql.DBStats{WaitCount: 5, WaitDuration: 90 * time.Millisecond})
	require.True(t, waited)
	assert.Equal(t, slog.LevelWarn, level)
}
