package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env"

	"github.com/Abdo0422/GestionReservation/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Source    SourceConfig    `toml:"source"`
	Backend   BackendConfig   `toml:"backend"`
	Database  DatabaseConfig  `toml:"database"`
	Cache     CacheConfig     `toml:"cache"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Calendar  CalendarConfig  `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SourceConfig откуда читаются бронирования: http (REST backend) или postgres
type SourceConfig struct {
	Kind string `toml:"kind" env:"RESERVATION_SOURCE"`
}

// BackendConfig REST backend бронирований
type BackendConfig struct {
	URL     string `toml:"url" env:"BACKEND_URL"`
	Timeout int    `toml:"timeout"` // секунды
}

// DatabaseConfig настройки подключения к БД backend'а (только чтение)
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// CacheConfig настройки Redis-кэша бронирований
type CacheConfig struct {
	Enabled  bool   `toml:"enabled" env:"CACHE_ENABLED"`
	Addr     string `toml:"addr" env:"REDIS_ADDR"`
	Password string `toml:"password" env:"REDIS_PASSWORD"`
	DB       int    `toml:"db" env:"REDIS_DB"`
	TTL      int    `toml:"ttl"` // секунды
}

// RateLimitConfig ограничение запросов на IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled" env:"RATE_LIMIT_ENABLED"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// CalendarConfig настройки календаря
type CalendarConfig struct {
	DefaultLanguage string `toml:"default_language" env:"DEFAULT_LANGUAGE"`
	Location        string `toml:"location" env:"CALENDAR_LOCATION"` // часовой пояс "сегодня"
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// TTLDuration TTL кэша
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// TimeoutDuration таймаут запросов к backend
func (b BackendConfig) TimeoutDuration() time.Duration {
	return time.Duration(b.Timeout) * time.Second
}

// LoadLocation часовой пояс, в котором вычисляется "сегодня"
func (c CalendarConfig) LoadLocation() (*time.Location, error) {
	return time.LoadLocation(c.Location)
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "reservation_calendar",
			Path:        "/metrics",
		},
		Source: SourceConfig{
			Kind: domain.SourceHTTP,
		},
		Backend: BackendConfig{
			URL:     "http://localhost:5000/api",
			Timeout: 5,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  60,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Calendar: CalendarConfig{
			DefaultLanguage: domain.DefaultLanguage,
			Location:        "Africa/Casablanca",
		},
	}
}

// Load читает конфигурацию из TOML-файла поверх значений по умолчанию,
// затем применяет переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	sections := []interface{}{
		&cfg.Server,
		&cfg.Logs,
		&cfg.Metrics,
		&cfg.Source,
		&cfg.Backend,
		&cfg.Database,
		&cfg.Cache,
		&cfg.RateLimit,
		&cfg.Calendar,
	}
	for _, section := range sections {
		if err := env.Parse(section); err != nil {
			return fmt.Errorf("failed to parse environment: %w", err)
		}
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Source.Kind {
	case domain.SourceHTTP:
		if c.Backend.URL == "" {
			return fmt.Errorf("%w: backend.url is required for source %q", ErrInvalidConfig, c.Source.Kind)
		}
		if c.Backend.Timeout <= 0 {
			return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
		}
	case domain.SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for source %q", ErrInvalidConfig, c.Source.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown source.kind %q", ErrInvalidConfig, c.Source.Kind)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	if c.Calendar.DefaultLanguage != domain.LanguageFrench && c.Calendar.DefaultLanguage != domain.LanguageArabic {
		return fmt.Errorf("%w: calendar.default_language %q", ErrInvalidConfig, c.Calendar.DefaultLanguage)
	}

	if _, err := c.Calendar.LoadLocation(); err != nil {
		return fmt.Errorf("%w: calendar.location: %v", ErrInvalidConfig, err)
	}

	return nil
}
