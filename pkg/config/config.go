package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT"          envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN,required"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL"          envDefault:"info"`

	Seed   SeedConfig
	Errors ErrorsConfig
	Kafka  KafkaConfig
}

type SeedConfig struct {
	// MigrateOnStart applies pending migrations before seeding.
	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`
	Enabled        bool `env:"SEED_ENABLED"     envDefault:"true"`
	// Timeout bounds the whole startup sequence. Zero waits forever.
	Timeout time.Duration `env:"SEED_TIMEOUT" envDefault:"0s"`
	// Interval re-runs the seeder in the background. Zero disables it.
	Interval time.Duration `env:"SEED_INTERVAL" envDefault:"0s"`
}

// ErrorsConfig controls what the HTTP error mapper exposes to clients.
type ErrorsConfig struct {
	ExposeDetails bool `env:"ERRORS_EXPOSE_DETAILS" envDefault:"false"`
	LogStack      bool `env:"ERRORS_LOG_STACK"      envDefault:"true"`
}

type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKERS"          envSeparator:","`
	SeededTopic string   `env:"KAFKA_SEEDED_TOPIC"     envDefault:"reference-data-seeded"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if c.PostgresMaxConns <= 0 {
		return Config{}, fmt.Errorf("POSTGRES_MAX_CONNS must be positive, got %d", c.PostgresMaxConns)
	}

	return c, nil
}
