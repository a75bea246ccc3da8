package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Remote incident service
	APIBaseURL  string        `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	WSURL       string        `env:"WS_URL" envDefault:"ws://localhost:8000/ws"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// Sync engine timings
	ReconnectDelay       time.Duration `env:"RECONNECT_DELAY" envDefault:"3s"`
	HighlightWindow      time.Duration `env:"HIGHLIGHT_WINDOW" envDefault:"5s"`
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL" envDefault:"60s"`
	ToastDuration        time.Duration `env:"TOAST_DURATION" envDefault:"5s"`
	DefaultRadiusMiles   int           `env:"DEFAULT_RADIUS_MILES" envDefault:"3"`
	TombstoneCapacity    int           `env:"TOMBSTONE_CAPACITY" envDefault:"4096"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Postgres journal (optional)
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Kafka change feed (optional)
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"incident-changes"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for local API authentication
	APIKeys []string `env:"API_KEYS"`
}

const (
	MinRadiusMiles = 1
	MaxRadiusMiles = 25
)

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		APIBaseURL:             strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		WSURL:                  getEnv("WS_URL", "ws://localhost:8000/ws"),
		HTTPTimeout:            getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),
		ReconnectDelay:         getEnvAsDuration("RECONNECT_DELAY", 3*time.Second),
		HighlightWindow:        getEnvAsDuration("HIGHLIGHT_WINDOW", 5*time.Second),
		SessionCheckInterval:   getEnvAsDuration("SESSION_CHECK_INTERVAL", 60*time.Second),
		ToastDuration:          getEnvAsDuration("TOAST_DURATION", 5*time.Second),
		DefaultRadiusMiles:     getEnvAsInt("DEFAULT_RADIUS_MILES", 3),
		TombstoneCapacity:      getEnvAsInt("TOMBSTONE_CAPACITY", 4096),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		KafkaBrokers:           getEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:             getEnv("KAFKA_TOPIC", "incident-changes"),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		APIKeys:                getEnvAsList("API_KEYS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL environment variable is required")
	}
	if c.WSURL == "" {
		return fmt.Errorf("WS_URL environment variable is required")
	}
	if c.DefaultRadiusMiles < MinRadiusMiles || c.DefaultRadiusMiles > MaxRadiusMiles {
		return fmt.Errorf("DEFAULT_RADIUS_MILES must be between %d and %d, got %d", MinRadiusMiles, MaxRadiusMiles, c.DefaultRadiusMiles)
	}
	if c.TombstoneCapacity <= 0 {
		return fmt.Errorf("TOMBSTONE_CAPACITY must be positive")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
