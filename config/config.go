package config

import (
	"fmt"

	"github.com/urfave/cli"
	"go.uber.org/zap"
)

type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceFile     Source = "file"
	SourcePostgres Source = "postgres"
	SourceRedis    Source = "redis"
)

func ParseSource(s string) (Source, error) {
	switch src := Source(s); src {
	case SourceEmbedded, SourceFile, SourcePostgres, SourceRedis:
		return src, nil
	}
	return "", fmt.Errorf("unknown event source %q", s)
}

type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DB       string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", c.User, c.Password, c.Host, c.Port, c.DB)
}

type AMQPConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Exchange string
}

func (c AMQPConfig) DSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s", c.User, c.Password, c.Host, c.Port)
}

type RedisConfig struct {
	Host string
	Port string
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type Config struct {
	Addr     string
	Source   Source
	SeedFile string
	Publish  bool
	Debug    bool

	Postgres PostgresConfig
	AMQP     AMQPConfig
	Redis    RedisConfig
}

// Flags are the command line flags FromContext reads. Each falls back to an
// environment variable.
func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "addr", Value: ":8080", Usage: "HTTP listen address", EnvVar: "HORIZON_ADDR"},
		cli.StringFlag{Name: "source", Value: string(SourceEmbedded), Usage: "where the seed events come from: embedded, file, postgres or redis", EnvVar: "HORIZON_SOURCE"},
		cli.StringFlag{Name: "seed-file", Usage: "JSON seed file, for the file source", EnvVar: "HORIZON_SEED_FILE"},
		cli.BoolFlag{Name: "publish", Usage: "publish created events to rabbitmq", EnvVar: "HORIZON_PUBLISH"},
		cli.BoolFlag{Name: "debug", Usage: "output debug messages", EnvVar: "HORIZON_DEBUG"},

		cli.StringFlag{Name: "postgres-user", EnvVar: "POSTGRES_USER"},
		cli.StringFlag{Name: "postgres-password", EnvVar: "POSTGRES_PASSWORD"},
		cli.StringFlag{Name: "postgres-host", Value: "localhost", EnvVar: "POSTGRES_HOST"},
		cli.StringFlag{Name: "postgres-port", Value: "5432", EnvVar: "POSTGRES_PORT"},
		cli.StringFlag{Name: "postgres-db", Value: "horizon", EnvVar: "POSTGRES_DB"},

		cli.StringFlag{Name: "amqp-user", Value: "guest", EnvVar: "AMQP_USER"},
		cli.StringFlag{Name: "amqp-password", Value: "guest", EnvVar: "AMQP_PASSWORD"},
		cli.StringFlag{Name: "amqp-host", Value: "localhost", EnvVar: "AMQP_HOST"},
		cli.StringFlag{Name: "amqp-port", Value: "5672", EnvVar: "AMQP_PORT"},
		cli.StringFlag{Name: "amqp-exchange", Value: "horizon", EnvVar: "AMQP_EXCHANGE"},

		cli.StringFlag{Name: "redis-host", Value: "localhost", EnvVar: "REDIS_HOST"},
		cli.StringFlag{Name: "redis-port", Value: "6379", EnvVar: "REDIS_PORT"},
	}
}

func FromContext(c *cli.Context) (Config, error) {
	source, err := ParseSource(c.String("source"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:     c.String("addr"),
		Source:   source,
		SeedFile: c.String("seed-file"),
		Publish:  c.Bool("publish"),
		Debug:    c.Bool("debug"),
		Postgres: PostgresConfig{
			User:     c.String("postgres-user"),
			Password: c.String("postgres-password"),
			Host:     c.String("postgres-host"),
			Port:     c.String("postgres-port"),
			DB:       c.String("postgres-db"),
		},
		AMQP: AMQPConfig{
			User:     c.String("amqp-user"),
			Password: c.String("amqp-password"),
			Host:     c.String("amqp-host"),
			Port:     c.String("amqp-port"),
			Exchange: c.String("amqp-exchange"),
		},
		Redis: RedisConfig{
			Host: c.String("redis-host"),
			Port: c.String("redis-port"),
		},
	}

	if cfg.Source == SourceFile && cfg.SeedFile == "" {
		return Config{}, fmt.Errorf("--seed-file is required for the %s source", SourceFile)
	}

	return cfg, nil
}

func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
