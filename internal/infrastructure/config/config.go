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

	JWT    JWTConfig
	SQLite SQLiteConfig
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL,  default=15m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL, default=168h"`
	Issuer     string        `env:"JWT_ISSUER,      default=todo-api"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=todo.db"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
