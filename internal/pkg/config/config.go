package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DevSecret is the fallback signing secret for non-production
// environments. It is obviously insecure and logged loudly at startup.
const DevSecret = "dev_secret"

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// ResolveSecret validates the signing secret. Production refuses to start
// without an explicit secret; other environments fall back to DevSecret
// and the caller is expected to warn.
func (c *Config) ResolveSecret() (secret string, insecure bool, err error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, false, nil
	}
	if c.Production() {
		return "", false, errors.New("config: JWT_SECRET must be set in production")
	}
	return DevSecret, true, nil
}
