package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/authkit/pkg/httpserver"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/mongo"
	"github.com/dmitrymomot/authkit/pkg/pg"
	"github.com/dmitrymomot/authkit/svc/auth"
)

// openStorage connects the configured credential store. The returned close
// function is never nil.
func openStorage(ctx context.Context, cfg appConfig, log *slog.Logger) (auth.Storage, map[string]httpserver.Check, func(), error) {
	switch cfg.StorageDriver {
	case driverMemory:
		log.WarnContext(ctx, "using in-memory credential store; accounts are lost on restart")
		return auth.NewMemoryStorage(), nil, func() {}, nil

	case driverMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("failed to disconnect from mongodb", logger.Error(err))
			}
		}

		storage := auth.NewMongoStorage(client.Database(cfg.Mongo.Database))
		if err := storage.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, nil, err
		}
		return storage, map[string]httpserver.Check{driverMongo: mongo.Healthcheck(client)}, closeFn, nil

	case driverPostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, auth.Migrations, auth.MigrationsDir, cfg.Postgres, log); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return auth.NewPostgresStorage(pool), map[string]httpserver.Check{driverPostgres: pg.Healthcheck(pool)}, pool.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
