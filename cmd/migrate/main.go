package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"skipass-api/internal/handler/middleware"
	"skipass-api/internal/infra/db"
	"skipass-api/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
)

const usage = `usage: migrate <command>

commands:
  up            apply all pending migrations
  down [n]      roll back n migrations (default 1)
  version       print the current schema version
  force <v>     set the version without running migrations (repairs a dirty state)`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	m, err := db.NewMigrator(cfg.DB.BuildMigrateURL())
	if err != nil {
		logger.Error("open migrator", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	if err := run(m, flag.Args()); err != nil {
		logger.Error("migration failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("schema is empty")
	case err != nil:
		logger.Error("read version", "error", err)
		os.Exit(1)
	default:
		logger.Info("schema version", "version", version, "dirty", dirty)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "down":
		n := 1
		if len(args) > 1 {
			v, err := strconv.Atoi(args[1])
			if err != nil || v < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
			n = v
		}
		if err := m.Steps(-n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	case "version":
		return nil
	case "force":
		if len(args) < 2 {
			return errors.New("force needs a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		return m.Force(v)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
