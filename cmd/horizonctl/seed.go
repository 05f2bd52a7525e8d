package main

import (
	"context"
	"fmt"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/alok944/event-horizon-college-hub/config"
	"github.com/alok944/event-horizon-college-hub/postgres"
	horizonRedis "github.com/alok944/event-horizon-college-hub/redis"
	"github.com/alok944/event-horizon-college-hub/seed"
	"github.com/go-redis/redis/v8"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var Seed = cli.Command{
	Name:  "seed",
	Usage: "Writes the seed events into postgres or redis",
	Flags: withConfigFlags(
		cli.StringFlag{Name: "target", Value: string(config.SourcePostgres), Usage: "postgres or redis"},
	),
	Action: seedEvents,
}

type eventSaver interface {
	SaveEvents(ctx context.Context, events []horizon.Event) error
}

func seedEvents(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()

	events, err := seed.NewProvider(cfg.SeedFile, logger).LoadEvents(ctx)
	if err != nil {
		return err
	}

	var saver eventSaver
	switch target := config.Source(c.String("target")); target {
	case config.SourcePostgres:
		db := postgres.NewDB(cfg.Postgres.DSN(), logger)
		if err := db.Open(ctx); err != nil {
			return fmt.Errorf("cannot open db: %w", err)
		}
		defer db.Close(ctx)
		saver = &postgres.EventService{DB: db}
	case config.SourceRedis:
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
		defer redisClient.Close()
		saver = horizonRedis.NewStorage(redisClient, logger)
	default:
		return fmt.Errorf("cannot seed into %q", target)
	}

	if err := saver.SaveEvents(ctx, events); err != nil {
		return err
	}

	logger.Info("seeded events", zap.String("target", c.String("target")), zap.Int("eventsCount", len(events)))
	return nil
}
