package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig          `envconfig:"APP"`
	Postgres     PostgresConfig     `envconfig:"POSTGRES"`
	Redis        RedisConfig        `envconfig:"REDIS"`
	Logger       LoggerConfig       `envconfig:"LOG"`
	Auth         AuthConfig         `envconfig:"AUTH"`
	Notification NotificationConfig `envconfig:"NOTIFY"`
	Seed         SeedConfig         `envconfig:"SEED"`
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `envconfig:"NAME" default:"dayflow-hr-service"`
	Env                   string `envconfig:"ENV" default:"development"`
	Host                  string `envconfig:"HOST" default:"0.0.0.0"`
	Port                  string `envconfig:"PORT" default:"8080"`
	Version               string `envconfig:"VERSION" default:"dev"`
	RequestTimeoutSeconds int    `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"30"`
	CORSAllowOrigins      string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string `envconfig:"DSN" required:"true"`
	MaxConns       int32  `envconfig:"MAX_CONNS" default:"10"`
	MinConns       int32  `envconfig:"MIN_CONNS" default:"2"`
	RunMigrations  bool   `envconfig:"RUN_MIGRATIONS" default:"true"`
	ConnMaxIdleSec int32  `envconfig:"CONN_MAX_IDLE_SECONDS" default:"30"`
	ConnMaxLifeSec int32  `envconfig:"CONN_MAX_LIFE_SECONDS" default:"300"`
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string `envconfig:"ADDR" default:"127.0.0.1:6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTLMinutes int    `envconfig:"ACCESS_TOKEN_TTL_MINUTES" default:"60"`
	BcryptCost            int    `envconfig:"BCRYPT_COST" default:"12"`
}

// NotificationConfig names the redis channel domain events are fanned out to.
type NotificationConfig struct {
	Channel string `envconfig:"CHANNEL" default:"dayflow.events"`
}

// SeedConfig points at an optional YAML file of accounts to create at startup.
type SeedConfig struct {
	AccountsFile string `envconfig:"ACCOUNTS_FILE"`
}

// Load reads configuration from the environment, optionally primed from a .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Postgres.DSN) == "" {
		return errors.New("POSTGRES_DSN must not be blank")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("AUTH_JWT_SECRET must not be blank")
	}
	if c.Auth.AccessTokenTTLMinutes <= 0 {
		return fmt.Errorf("invalid AUTH_ACCESS_TOKEN_TTL_MINUTES: %d", c.Auth.AccessTokenTTLMinutes)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("invalid AUTH_BCRYPT_COST: %d", c.Auth.BcryptCost)
	}
	return nil
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c != nil && c.App.Env == "production"
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// AccessTokenTTL returns the lifetime of issued tokens.
func (a AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(a.AccessTokenTTLMinutes) * time.Minute
}
