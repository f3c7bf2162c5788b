package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"fieldops/config"
	"fieldops/internal/domain/lifecycle"
	"fieldops/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params holds dependencies for the Postgres connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database behind the KV store. Every store call is a single
// statement, so GORM's implicit per-statement transaction is turned off.
// The connection is checked on start and the pool is watched until stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open KV store database")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get KV store sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to reach KV store database")
			}

			go watchPool(watchCtx, params.Logger, sqlDB.Stats, poolCheckInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// watchPool reports connection waits between two pool samples. Sessions are
// read on every authenticated request, so waiting for a connection shows up
// directly as API latency.
func watchPool(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	if logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			if level, attrs, waited := poolWait(prev, cur); waited {
				logger.LogAttrs(ctx, level, "[KVStore] Connection pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two pool samples. It reports false when no caller waited
// in between, and warns once the added wait time reaches poolWaitWarnAfter.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return 0, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	}

	if waited >= poolWaitWarnAfter {
		return slog.LevelWarn, attrs, true
	}

	return slog.LevelDebug, attrs, true
}
