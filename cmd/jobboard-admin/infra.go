package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/humanlystaffing/jobboard-api/internal/aggregate"
	"github.com/humanlystaffing/jobboard-api/internal/bootstrap"
	"github.com/humanlystaffing/jobboard-api/internal/data"
	"github.com/humanlystaffing/jobboard-api/internal/devseed"
	"github.com/redis/go-redis/v9"
)

const defaultMigrationTimeout = 5 * time.Minute

func connectDB(cmdCtx *commandContext) (*sql.DB, error) {
	if !cmdCtx.Config.Postgres.Configured() {
		return nil, errors.New("no database configured; set DB_HOST")
	}
	return bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig:    cmdCtx.Config.Postgres,
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
}

//nolint:ireturn // redis.UniversalClient mirrors the bootstrap helper's return type.
func connectRedis(cmdCtx *commandContext) (redis.UniversalClient, error) {
	return bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		DBConfig:    cmdCtx.Config.Postgres,
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
}

func withDB(cmdCtx *commandContext, fn func(ctx context.Context, db *sql.DB) error) error {
	db, err := connectDB(cmdCtx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			cmdCtx.Logger.Error("close database failed", "error", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, defaultMigrationTimeout)
	defer cancel()
	return fn(ctx, db)
}

func runMigrate(cmdCtx *commandContext, _ []string) error {
	return withDB(cmdCtx, func(ctx context.Context, db *sql.DB) error {
		return bootstrap.RunMigrations(ctx, db, cmdCtx.Logger)
	})
}

func runDBSeed(cmdCtx *commandContext, _ []string) error {
	return withDB(cmdCtx, func(ctx context.Context, db *sql.DB) error {
		if err := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); err != nil {
			return err
		}
		return devseed.Seed(ctx, db, cmdCtx.Logger)
	})
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	seed := fs.Bool("seed", false, "seed development postings after resetting")
	confirm := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*confirm {
		return errors.New("db-reset drops every table; re-run with -yes to confirm")
	}

	return withDB(cmdCtx, func(ctx context.Context, db *sql.DB) error {
		if _, err := db.ExecContext(ctx, `DROP SCHEMA public CASCADE; CREATE SCHEMA public`); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
		cmdCtx.Logger.InfoContext(ctx, "database schema dropped")

		if err := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); err != nil {
			return err
		}
		if *seed {
			return devseed.Seed(ctx, db, cmdCtx.Logger)
		}
		return nil
	})
}

func runClearListingCache(cmdCtx *commandContext, _ []string) error {
	client, err := connectRedis(cmdCtx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			cmdCtx.Logger.Error("close redis failed", "error", cerr)
		}
	}()

	cache := data.NewRedisCacheRepo(client)
	deleted, err := cache.Delete(cmdCtx.Ctx, aggregate.ListingsCacheKey)
	if err != nil {
		return fmt.Errorf("delete listing snapshot: %w", err)
	}

	cmdCtx.Logger.Info("listing cache cleared", "key", aggregate.ListingsCacheKey, "existed", deleted)
	return nil
}

func runListingCacheStatus(cmdCtx *commandContext, _ []string) error {
	client, err := connectRedis(cmdCtx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			cmdCtx.Logger.Error("close redis failed", "error", cerr)
		}
	}()

	exists, err := client.Exists(cmdCtx.Ctx, aggregate.ListingsCacheKey).Result()
	if err != nil {
		return fmt.Errorf("check listing snapshot: %w", err)
	}
	if exists == 0 {
		cmdCtx.Logger.Info("no listing snapshot cached", "key", aggregate.ListingsCacheKey)
		return nil
	}

	ttl, err := client.TTL(cmdCtx.Ctx, aggregate.ListingsCacheKey).Result()
	if err != nil {
		return fmt.Errorf("read snapshot ttl: %w", err)
	}
	size, err := client.StrLen(cmdCtx.Ctx, aggregate.ListingsCacheKey).Result()
	if err != nil {
		return fmt.Errorf("read snapshot size: %w", err)
	}

	cmdCtx.Logger.Info("listing snapshot cached",
		"key", aggregate.ListingsCacheKey,
		"ttl", ttl.Truncate(time.Second).String(),
		"bytes", size,
	)
	return nil
}
