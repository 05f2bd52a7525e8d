package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alok944/event-horizon-college-hub/catalog"
	"github.com/alok944/event-horizon-college-hub/config"
	"github.com/alok944/event-horizon-college-hub/rabbitmq"
	"github.com/alok944/event-horizon-college-hub/session"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	app := cli.NewApp()
	app.Name = "horizon-api"
	app.Usage = "Serves the college tech event catalog over HTTP"
	app.Flags = config.Flags()
	app.Action = serve

	if err := app.Run(os.Args); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("error creating the logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	provider, closeProvider, err := cfg.OpenProvider(ctx, logger)
	if err != nil {
		logger.Error("cannot open event source", zap.String("source", string(cfg.Source)), zap.Error(err))
		return err
	}
	defer closeProvider()

	events, err := provider.LoadEvents(ctx)
	if err != nil {
		logger.Error("error loading seed events", zap.Error(err))
		return err
	}

	store, err := catalog.NewStore(events, logger)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", zap.String("source", string(cfg.Source)), zap.Int("eventsCount", store.Len()))

	opts := make([]session.Option, 0)
	if cfg.Publish {
		producer := rabbitmq.NewProducer(cfg.AMQP.DSN(), cfg.AMQP.Exchange)
		if err := producer.Open(); err != nil {
			logger.Error("cannot open rabbitmq connection", zap.Error(err))
			return err
		}
		defer producer.Close()
		logger.Info("opened rabbitmq connection")

		opts = append(opts, session.WithPublisher(producer))
	}

	server := NewServer(session.New(store, logger, opts...), logger)

	r := gin.Default()
	server.Routes(r)

	logger.Info("event catalog ready", zap.String("addr", cfg.Addr))

	return r.Run(cfg.Addr)
}
