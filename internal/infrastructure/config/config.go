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

	Upstream UpstreamConfig
	Session  SessionConfig
	Bypass   BypassConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// UpstreamConfig points the gateway at the remote medical records REST API.
type UpstreamConfig struct {
	BaseURL string        `env:"UPSTREAM_BASE_URL, default=http://localhost:5000/api"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT,  default=15s"`
}

type SessionConfig struct {
	CookieName   string        `env:"SESSION_COOKIE_NAME, default=mrs_session"`
	MaxTTL       time.Duration `env:"SESSION_MAX_TTL,     default=24h"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

// BypassConfig enables the local login bypass. Disabled unless all three of
// enabled/password-hash/token-secret are provided.
type BypassConfig struct {
	Enabled      bool          `env:"LOGIN_BYPASS_ENABLED,       default=false"`
	Username     string        `env:"LOGIN_BYPASS_USERNAME,      default=admin"`
	PasswordHash string        `env:"LOGIN_BYPASS_PASSWORD_HASH"`
	TokenSecret  string        `env:"LOGIN_BYPASS_TOKEN_SECRET"`
	TokenTTL     time.Duration `env:"LOGIN_BYPASS_TOKEN_TTL, default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=medical_gateway"`
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

	if cfg.Bypass.Enabled && (cfg.Bypass.PasswordHash == "" || cfg.Bypass.TokenSecret == "") {
		return nil, fmt.Errorf("config: LOGIN_BYPASS_ENABLED requires LOGIN_BYPASS_PASSWORD_HASH and LOGIN_BYPASS_TOKEN_SECRET")
	}

	return &cfg, nil
}
