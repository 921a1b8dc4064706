//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"skipass-api/internal/infra/db"
	"skipass-api/internal/infra/seed"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// redis has 16 logical databases; 0 is left alone.
var redisDBCounter atomic.Int32

// NewDatabase creates a migrated database of its own inside the shared
// container and drops it when the test ends.
func NewDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()
	info := startPostgres(t)

	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(500+attempt*500)*time.Millisecond, 3*time.Second))
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cleanup, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("drop database: connect failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanup.Close()
		if _, err := cleanup.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", dbName, "error", err.Error())
		}
	})

	cfg := config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
		MinConns: 1,
	}

	require.NoError(t, db.MigrateUp(cfg.BuildMigrateURL()), "migrations failed")

	pool, closePool, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	return pool, cfg
}

// NewRedis hands out a flushed logical database in the shared container.
func NewRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	info := startRedis(t)

	cfg := config.RedisConfig{
		Addr:       info.Host + ":" + info.Port.Port(),
		DB:         int(redisDBCounter.Add(1)%15) + 1,
		CatalogTTL: time.Minute,
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})
	defer client.Close()
	require.NoError(t, client.FlushDB(context.Background()).Err(), "redis flush failed")

	return cfg
}

// SeedCatalog loads the shipped resort catalog and returns resort ids keyed by slug.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) map[string]uuid.UUID {
	t.Helper()

	resorts, err := seed.Parse(seed.DefaultCatalog())
	require.NoError(t, err)
	ids, err := seed.Apply(context.Background(), pool, sqlc.New(), resorts)
	require.NoError(t, err)

	out := make(map[string]uuid.UUID, len(resorts))
	for i, r := range resorts {
		out[r.Slug()] = ids[i]
	}
	return out
}

// ResetUsers clears accounts and purchases and keeps the catalog.
func ResetUsers(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE purchases, users")
	require.NoError(t, err, "truncate failed")
}
