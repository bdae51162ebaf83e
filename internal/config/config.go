package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// ServerConfig holds everything the demo backend reads from the environment.
// Postgres, Redis and SMTP are all optional: without them the server runs on
// seeded in-memory data, which is the normal demo setup.
type ServerConfig struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8000"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`

	// UpgradeEmail receives status-upgrade requests.
	UpgradeEmail        string `env:"UPGRADE_EMAIL" envDefault:"apppla@yandex.ru"`
	DefaultRequestLimit int    `env:"DEFAULT_REQUEST_LIMIT" envDefault:"100"`
}

// ClientConfig holds the terminal client settings.
type ClientConfig struct {
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	// AnswerMode selects the answer service: "mock" replays the canned
	// answer after MockAnswerDelay, "http" calls POST /api/query.
	AnswerMode      string        `env:"ANSWER_MODE" envDefault:"mock"`
	MockAnswerDelay time.Duration `env:"MOCK_ANSWER_DELAY" envDefault:"2s"`

	// TokenPath overrides where the bearer token is persisted. Empty means
	// the default location under the user config dir.
	TokenPath string `env:"TOKEN_PATH"`
}

// LoadServer parses the server configuration from environment variables.
func LoadServer() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient parses the client configuration from environment variables.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
