package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"skipass-api/internal/handler/middleware"
	"skipass-api/internal/infra/db"
	"skipass-api/internal/infra/readstore"
	"skipass-api/internal/infra/redisstore"
	"skipass-api/internal/infra/seed"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/pkg/config"
)

func main() {
	file := flag.String("file", "", "catalog YAML (defaults to the embedded catalog)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	if err := run(cfg, *file, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("✅ seeding complete")
}

func run(cfg config.Config, file string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var src io.Reader = seed.DefaultCatalog()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	resorts, err := seed.Parse(src)
	if err != nil {
		return err
	}

	if cfg.DB.AutoMigrate {
		if err := db.MigrateUp(cfg.DB.BuildMigrateURL()); err != nil {
			return err
		}
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	q := sqlc.New()
	ids, err := seed.Apply(ctx, pool, q, resorts)
	if err != nil {
		return err
	}
	for i, r := range resorts {
		logger.Info("seeded resort", "slug", r.Slug(), "id", ids[i], "tiers", len(r.PriceTiers()))
	}

	// Stale catalog entries age out with the TTL when redis is unreachable.
	client, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("catalog cache not invalidated", "error", err)
		return nil
	}
	defer client.Close()

	cache := redisstore.NewResortCache(readstore.NewResortReadStore(q, pool), client, cfg.Redis.CatalogTTL, nil)
	if err := cache.Invalidate(ctx, ids...); err != nil {
		logger.Warn("catalog cache not invalidated", "error", err)
	}
	return nil
}
