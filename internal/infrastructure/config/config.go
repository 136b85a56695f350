package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=3000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	Store     string `env:"STORE,     default=memory"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Store != StoreMemory && cfg.Store != StoreMongo {
		return nil, fmt.Errorf("config: unknown STORE %q (expected %s or %s)", cfg.Store, StoreMemory, StoreMongo)
	}
	return &cfg, nil
}

// Development reports whether internal error detail may be exposed to clients.
func (c *Config) Development() bool {
	return c.Env == "development"
}
