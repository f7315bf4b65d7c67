package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Remote REST API
	RemoteAPIURL     string        `env:"REMOTE_API_URL,notEmpty"`
	RemoteAPITimeout time.Duration `env:"REMOTE_API_TIMEOUT" envDefault:"10s"`
	// FanOutLimit ограничивает число параллельных запросов волонтёров, 0 - без ограничения
	FanOutLimit int `env:"FANOUT_LIMIT" envDefault:"0"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	TokenKey  string `env:"TOKEN_KEY" envDefault:"token"`

	// Session Config
	// SessionAdminKey открывает /session/token и подстановку сохраненного токена; пустой ключ выключает и то и другое
	SessionAdminKey string        `env:"SESSION_ADMIN_KEY"`
	BoardIdleTTL    time.Duration `env:"BOARD_IDLE_TTL" envDefault:"30m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Cloudinary Config
	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `env:"CLOUDINARY_FOLDER" envDefault:"incident-photos"`

	// History Config
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"50"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.FanOutLimit < 0 {
		return nil, fmt.Errorf("FANOUT_LIMIT must not be negative, got %d", cfg.FanOutLimit)
	}
	if cfg.BoardIdleTTL <= 0 {
		return nil, fmt.Errorf("BOARD_IDLE_TTL must be positive, got %s", cfg.BoardIdleTTL)
	}
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return &cfg, nil
}

// CloudinaryEnabled сообщает, заданы ли все учетные данные Cloudinary
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
