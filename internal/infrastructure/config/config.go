package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BaseURL is the externally visible origin of this service, used to build
	// the OAuth redirect URL.
	BaseURL string `env:"BASE_URL, default=http://localhost:8080"`

	// BackendURL is the base URL of the backend API that owns user accounts
	// and courses. Required: its absence is a deployment failure.
	BackendURL string `env:"BACKEND_URL, required"`

	// SessionSecret signs session tokens. Process-wide, read-only after startup.
	SessionSecret string        `env:"SESSION_SECRET, required"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=720h"`

	Google GoogleConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type GoogleConfig struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID,     required"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET, required"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=course_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies, JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
