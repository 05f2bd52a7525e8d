package config

import (
	"context"

	horizon "github.com/alok944/event-horizon-college-hub"
	"github.com/alok944/event-horizon-college-hub/postgres"
	horizonRedis "github.com/alok944/event-horizon-college-hub/redis"
	"github.com/alok944/event-horizon-college-hub/seed"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OpenProvider connects the configured seed source. The returned func
// releases any connection it holds.
func (c Config) OpenProvider(ctx context.Context, logger *zap.Logger) (horizon.Provider, func(), error) {
	switch c.Source {
	case SourcePostgres:
		db := postgres.NewDB(c.Postgres.DSN(), logger)
		if err := db.Open(ctx); err != nil {
			return nil, nil, err
		}
		logger.Info("opened postgres connection")
		return &postgres.EventService{DB: db}, func() { db.Close(context.Background()) }, nil

	case SourceRedis:
		redisClient := redis.NewClient(&redis.Options{Addr: c.Redis.Addr()})
		logger.Info("opened redis connection")
		return horizonRedis.NewStorage(redisClient, logger), func() { redisClient.Close() }, nil

	case SourceFile:
		return seed.NewProvider(c.SeedFile, logger), func() {}, nil

	default:
		return seed.NewProvider("", logger), func() {}, nil
	}
}
