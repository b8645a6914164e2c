package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Auth      AuthConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Chat      ChatConfig
	Telemetry TelemetryConfig
	Jobs      JobsConfig
}

type AppConfig struct {
	Env             string        `env:"ENV" env-default:"local"`
	HTTPAddr        string        `env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type PostgresConfig struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Host        string `env:"PGHOST" env-default:"localhost"`
	Port        string `env:"PGPORT" env-default:"5432"`
	User        string `env:"PGUSER"`
	Password    string `env:"PGPASSWORD"`
	Database    string `env:"PGDATABASE"`
	SSLMode     string `env:"PGSSLMODE" env-default:"disable"`
	MaxConns    int32  `env:"PG_MAX_CONNS" env-default:"10"`
}

// AuthConfig drives token issuance and the bootstrap admin account.
type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET"`
	JWTAccessTTL time.Duration `env:"JWT_ACCESS_TTL" env-default:"24h"`
	JWTIssuer    string        `env:"JWT_ISSUER" env-default:"medilink-admin"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
}

type RateLimitConfig struct {
	LoginPerMinute int `env:"LOGIN_RATE_PER_MINUTE" env-default:"30"`
	ChatPerMinute  int `env:"CHAT_RATE_PER_MINUTE" env-default:"60"`
}

type ChatConfig struct {
	APIKey  string        `env:"AI_API_KEY"`
	Model   string        `env:"AI_MODEL" env-default:"gemini-2.0-flash"`
	Timeout time.Duration `env:"AI_TIMEOUT" env-default:"20s"`
}

type TelemetryConfig struct {
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool   `env:"OTEL_INSECURE" env-default:"true"`
	ServiceName string `env:"SERVICE_NAME" env-default:"medilink-backend"`
}

type JobsConfig struct {
	SearchHistoryRetention time.Duration `env:"SEARCH_HISTORY_RETENTION" env-default:"2160h"`
	SearchHistoryPruneSpec string        `env:"SEARCH_HISTORY_PRUNE_SPEC" env-default:"0 3 * * *"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
