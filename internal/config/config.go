package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lexagoldenpost/reavito-sub000/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Storage    StorageConfig    `toml:"storage"`
	Telegram   TelegramConfig   `toml:"telegram"`
	Booking    BookingConfig    `toml:"booking"`
	Properties []PropertyConfig `toml:"properties"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig расположение CSV-файлов с бронями и ценами
type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// TelegramConfig настройки ретрансляции в Telegram Bot API
// Токен можно не хранить в файле: переменная окружения TELEGRAM_BOT_TOKEN имеет приоритет
type TelegramConfig struct {
	Token         string `toml:"token"`
	ChannelChatID int64  `toml:"channel_chat_id"`
	Timeout       int    `toml:"timeout"` // секунды
}

// BookingConfig бизнес-параметры расчётов
type BookingConfig struct {
	AutoDiscountThresholdNights int `toml:"auto_discount_threshold_nights"`
	MinGapNights                int `toml:"min_gap_nights"`
}

// PropertyConfig описание одного объекта размещения
type PropertyConfig struct {
	ID           string `toml:"id"`
	Name         string `toml:"name"`
	BookingsFile string `toml:"bookings_file"`
	PricesFile   string `toml:"prices_file"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	// Переменная окружения имеет приоритет над файлом
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "booking-core"
	}
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = 30
	}
	if c.Booking.AutoDiscountThresholdNights == 0 {
		c.Booking.AutoDiscountThresholdNights = domain.DefaultAutoDiscountThresholdNights
	}
	if c.Booking.MinGapNights == 0 {
		c.Booking.MinGapNights = domain.DefaultMinGapNights
	}
}

func (c *Config) validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("config: storage.data_dir is required")
	}
	if len(c.Properties) == 0 {
		return fmt.Errorf("config: at least one [[properties]] entry is required")
	}

	seen := make(map[string]struct{}, len(c.Properties))
	for i, p := range c.Properties {
		if p.ID == "" {
			return fmt.Errorf("config: properties[%d].id is required", i)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("config: duplicate property id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.BookingsFile == "" || p.PricesFile == "" {
			return fmt.Errorf("config: property %q must define bookings_file and prices_file", p.ID)
		}
	}

	if c.Booking.AutoDiscountThresholdNights < 1 {
		return fmt.Errorf("config: booking.auto_discount_threshold_nights must be positive")
	}
	if c.Booking.MinGapNights < 1 {
		return fmt.Errorf("config: booking.min_gap_nights must be positive")
	}

	return nil
}
