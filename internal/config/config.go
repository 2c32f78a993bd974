package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища сессии
const (
	SessionDriverMemory   = "memory"
	SessionDriverFile     = "file"
	SessionDriverRedis    = "redis"
	SessionDriverPostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация клиента маркетплейса
type Config struct {
	API      APIConfig      `toml:"api"`
	Session  SessionConfig  `toml:"session"`
	Redis    RedisConfig    `toml:"redis"`
	Database DatabaseConfig `toml:"database"`
	Search   SearchConfig   `toml:"search"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// APIConfig параметры подключения к backend API
type APIConfig struct {
	BaseURL string `toml:"base_url"` // origin + /api
	Timeout int    `toml:"timeout"`  // секунды, 0 = без таймаута
}

// SessionConfig параметры хранилища сессии
type SessionConfig struct {
	Driver    string `toml:"driver"`
	FilePath  string `toml:"file_path"`
	Namespace string `toml:"namespace"` // изолирует сессии в общих хранилищах (redis, postgres)
}

// RedisConfig параметры Redis для драйвера redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// DatabaseConfig параметры PostgreSQL для драйвера postgres
type DatabaseConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`
	Table    string `toml:"table"`
}

// SearchConfig ограничение частоты поисковых запросов
type SearchConfig struct {
	RatePerSecond float64 `toml:"rate_per_second"` // 0 = без ограничения
	Burst         int     `toml:"burst"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	PushGateway string `toml:"push_gateway"` // адрес Pushgateway; пусто = метрики не отправляются
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000/api",
		},
		Session: SessionConfig{
			Driver:    SessionDriverFile,
			FilePath:  defaultSessionFile(),
			Namespace: "default",
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "marketplace:session",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			DBName:  "marketplace",
			SSLMode: "disable",
			Table:   "session_entries",
		},
		Search: SearchConfig{
			RatePerSecond: 4,
			Burst:         1,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "marketplace-client",
		},
	}
}

// Load загружает конфигурацию
// Порядок: значения по умолчанию -> TOML файл (если есть) -> .env -> переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	// .env опционален
	_ = godotenv.Load()

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("%w: api.base_url is required", ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("%w: api.base_url must be an http(s) URL", ErrInvalidConfig)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must not be negative", ErrInvalidConfig)
	}

	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverRedis:
	case SessionDriverFile:
		if c.Session.FilePath == "" {
			return fmt.Errorf("%w: session.file_path is required for file driver", ErrInvalidConfig)
		}
	case SessionDriverPostgres:
		if c.Database.Table == "" {
			return fmt.Errorf("%w: database.table is required for postgres driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown session.driver %q", ErrInvalidConfig, c.Session.Driver)
	}

	if c.Search.RatePerSecond < 0 {
		return fmt.Errorf("%w: search.rate_per_second must not be negative", ErrInvalidConfig)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = getEnv("MARKETPLACE_API_URL", cfg.API.BaseURL)
	cfg.API.Timeout = getInt("MARKETPLACE_API_TIMEOUT", cfg.API.Timeout)
	cfg.Session.Driver = getEnv("MARKETPLACE_SESSION_DRIVER", cfg.Session.Driver)
	cfg.Session.FilePath = getEnv("MARKETPLACE_SESSION_FILE", cfg.Session.FilePath)
	cfg.Session.Namespace = getEnv("MARKETPLACE_SESSION_NAMESPACE", cfg.Session.Namespace)
	cfg.Redis.Addr = getEnv("MARKETPLACE_REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("MARKETPLACE_REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getInt("MARKETPLACE_REDIS_DB", cfg.Redis.DB)
	cfg.Database.Host = getEnv("MARKETPLACE_DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getInt("MARKETPLACE_DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("MARKETPLACE_DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("MARKETPLACE_DB_PASSWORD", cfg.Database.Password)
	cfg.Database.DBName = getEnv("MARKETPLACE_DB_NAME", cfg.Database.DBName)
	cfg.Logs.Level = getEnv("MARKETPLACE_LOG_LEVEL", cfg.Logs.Level)
	cfg.Logs.File = getEnv("MARKETPLACE_LOG_FILE", cfg.Logs.File)
	cfg.Metrics.PushGateway = getEnv("MARKETPLACE_METRICS_PUSHGATEWAY", cfg.Metrics.PushGateway)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "session.json")
	}
	return filepath.Join(dir, "marketplace-client", "session.json")
}
