package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/rms-platform/table-service/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	CORS     CORSConfig     `toml:"cors"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig настройки CORS для API
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// BookingConfig политика бронирования.
// Длительность по умолчанию используется и генератором слотов, и детектором
// конфликтов — значение должно быть единым для обоих.
type BookingConfig struct {
	DefaultDurationMinutes int    `toml:"default_duration_minutes"`
	SlotIntervalMinutes    int    `toml:"slot_interval_minutes"`
	DefaultOpenTime        string `toml:"default_open_time"`
	DefaultCloseTime       string `toml:"default_close_time"`
	NumberPrefix           string `toml:"number_prefix"`
}

// Load читает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "rms-table-service",
		},
		Booking: BookingConfig{
			DefaultDurationMinutes: domain.DefaultDurationMinutes,
			SlotIntervalMinutes:    domain.DefaultSlotIntervalMinutes,
			DefaultOpenTime:        domain.DefaultOpenTime,
			DefaultCloseTime:       domain.DefaultCloseTime,
			NumberPrefix:           "BK",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Booking.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("config: booking.default_duration_minutes must be positive")
	}
	if c.Booking.SlotIntervalMinutes < domain.MinSlotIntervalMinutes ||
		c.Booking.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("config: booking.slot_interval_minutes must be between %d and %d",
			domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}
	return nil
}
