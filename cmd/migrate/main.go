package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"contacts/config"
	"contacts/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      apply all pending migrations
// - down:    roll back the latest migration
// - status:  print the applied state of each migration
// - version: print the current schema version

func main() {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	timeout := fs.Duration("timeout", time.Minute, "Maximum time allowed for the command")
	fs.Usage = printUsage

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	switch command {
	case "up":
		return migrations.Up(ctx, sqlDB)
	case "down":
		return migrations.Down(ctx, sqlDB)
	case "status":
		return migrations.Status(ctx, sqlDB)
	case "version":
		version, err := migrations.Version(ctx, sqlDB)
		if err != nil {
			return err
		}
		fmt.Printf("Schema version: %d\n", version)

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown command %q", command)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status|version> [-timeout 1m]")
}
