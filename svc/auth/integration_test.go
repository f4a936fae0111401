//go:build integration

package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/mongo"
	"github.com/dmitrymomot/authkit/pkg/pg"
	"github.com/dmitrymomot/authkit/svc/auth"
)

func startPostgres(t *testing.T) auth.Storage {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("authkit_test"),
		postgres.WithUsername("authkit"),
		postgres.WithPassword("authkit"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := pg.Config{ConnectionString: dsn, MaxOpenConns: 4, MaxIdleConns: 1, RetryAttempts: 3, RetryInterval: time.Second}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, auth.Migrations, auth.MigrationsDir, cfg, logger.Discard()))
	return auth.NewPostgresStorage(pool)
}

func startMongo(t *testing.T) auth.Storage {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.New(ctx, mongo.Config{ConnectionURL: uri, ConnectTimeout: 10 * time.Second, MaxPoolSize: 10, RetryAttempts: 3, RetryInterval: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	store := auth.NewMongoStorage(client.Database("authkit_test"))
	require.NoError(t, store.EnsureIndexes(ctx))
	return store
}

func TestStorageIntegration(t *testing.T) {
	backends := map[string]func(*testing.T) auth.Storage{
		"postgres": startPostgres,
		"mongo":    startMongo,
	}

	for name, start := range backends {
		t.Run(name, func(t *testing.T) {
			store := start(t)
			ctx := context.Background()

			user := &auth.User{ID: uuid.New(), Email: "john@example.com", Name: "John", PasswordHash: "hash", CreatedAt: time.Now().UTC().Truncate(time.Millisecond)}
			require.NoError(t, store.CreateUser(ctx, user))

			got, err := store.GetUserByEmail(ctx, "john@example.com")
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, "John", got.Name)

			got, err = store.GetUserByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, "john@example.com", got.Email)

			_, err = store.GetUserByID(ctx, uuid.New())
			assert.ErrorIs(t, err, auth.ErrUserNotFound)

			err = store.CreateUser(ctx, &auth.User{ID: uuid.New(), Email: "john@example.com", Name: "Other", PasswordHash: "x", CreatedAt: time.Now()})
			assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)

			// racing inserts bypass the service's pre-check entirely
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
			)
			for range 10 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := store.CreateUser(ctx, &auth.User{ID: uuid.New(), Email: "race@example.com", Name: "R", PasswordHash: "x", CreatedAt: time.Now()})
					if err == nil {
						mu.Lock()
						successes++
						mu.Unlock()
						return
					}
					assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
				}()
			}
			wg.Wait()
			assert.Equal(t, 1, successes)
		})
	}
}
