package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (токен хранилища, JWT secret, пароль Redis) берутся из окружения
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	SheetStore SheetStoreConfig `toml:"sheetstore"`
	Redis      RedisConfig      `toml:"redis"`
	Cache      CacheConfig      `toml:"cache"`
	Auth       AuthConfig       `toml:"auth"`
	CORS       CORSConfig       `toml:"cors"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SheetStoreConfig настройки клиента внешнего табличного хранилища
type SheetStoreConfig struct {
	URL                  string `toml:"url"`
	Timeout              int    `toml:"timeout"` // секунды
	SpreadsheetID        string `toml:"spreadsheet_id"`
	ReservationWorksheet string `toml:"reservation_worksheet"`
	CustomerWorksheet    string `toml:"customer_worksheet"`
	UserWorksheet        string `toml:"user_worksheet"`
	Token                string `toml:"-"` // из SHEETSTORE_TOKEN
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	DB       int    `toml:"db"`
	Password string `toml:"-"` // из REDIS_PASSWORD
}

// CacheConfig настройки кеша чтения реестра бронирований
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds"`
}

// AuthConfig настройки выдачи токенов доступа
type AuthConfig struct {
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
	JWTSecret       string `toml:"-"` // из JWT_SECRET
}

// CORSConfig настройки CORS для браузерного фронтенда
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load загружает конфигурацию из TOML файла и переменных окружения
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		SheetStore: SheetStoreConfig{
			Timeout:              10,
			ReservationWorksheet: "Reservas",
			CustomerWorksheet:    "Clientes",
			UserWorksheet:        "Usuarios",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 300,
		},
		Auth: AuthConfig{
			TokenTTLMinutes: 480,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.SheetStore.Token = os.Getenv("SHEETSTORE_TOKEN")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.SheetStore.URL == "" {
		return fmt.Errorf("config: sheetstore.url is required")
	}
	if c.SheetStore.SpreadsheetID == "" {
		return fmt.Errorf("config: sheetstore.spreadsheet_id is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET environment variable is required")
	}
	return nil
}
