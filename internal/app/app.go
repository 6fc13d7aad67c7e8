// Package app opens the configured record store and builds the workflow
// service shared by the server and the shell.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"vaxreg/internal/platform/config"
	"vaxreg/internal/platform/postgres"
	"vaxreg/internal/platform/redis"
	"vaxreg/internal/records/service"
	filestore "vaxreg/internal/records/store/file"
	"vaxreg/internal/records/store/memory"
	pgstore "vaxreg/internal/records/store/postgres"
	redisstore "vaxreg/internal/records/store/redis"
)

// Records is an opened store plus the service running on it.
type Records struct {
	Service *service.Service
	Store   service.Store
	// Health pings the backing database; nil for file and memory stores.
	Health func(ctx context.Context) error

	closers []func() error
}

// Close releases store connections.
func (r *Records) Close() error {
	var firstErr error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Open connects the store selected by cfg.Store.Driver and builds the service.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...service.Option) (*Records, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	records := &Records{}
	switch cfg.Store.Driver {
	case config.DriverFile:
		records.Store = filestore.New(cfg.Store.PatientsPath(), cfg.Store.DosesPath())
	case config.DriverMemory:
		records.Store = memory.New()
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		records.closers = append(records.closers, db.Close)
		store := pgstore.New(db)
		if err := store.Migrate(ctx); err != nil {
			_ = records.Close()
			return nil, err
		}
		records.Store = store
		records.Health = db.PingContext
	case config.DriverRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		records.closers = append(records.closers, client.Close)
		records.Store = redisstore.New(client.Client, cfg.Redis.Prefix)
		records.Health = client.Health
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	opts = append([]service.Option{service.WithLogger(logger)}, opts...)
	svc, err := service.New(records.Store, rules, opts...)
	if err != nil {
		_ = records.Close()
		return nil, err
	}
	records.Service = svc

	logger.InfoContext(ctx, "record store ready", "driver", cfg.Store.Driver)
	return records, nil
}
