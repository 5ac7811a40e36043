// Package config loads application settings from the environment.
//
// Variables use the FARMPET_ prefix and "__" for nesting, so FARMPET_DATABASE__HOST lands
// in Config.Database.Host. A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"strings"

	"go-farmpet-api/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FARMPET_"

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Log       LogConfig       `koanf:"log"`
	Inventory InventoryConfig `koanf:"inventory"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

type ServerConfig struct {
	Port               string `koanf:"port" validate:"required"`
	ReadTimeout        int    `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout       int    `koanf:"write_timeout" validate:"gte=0"`
	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig holds Postgres settings. URL, when set, wins over the individual fields.
type DatabaseConfig struct {
	URL             string `koanf:"url"`
	Host            string `koanf:"host" validate:"required_without=URL"`
	Port            int    `koanf:"port" validate:"required_without=URL"`
	User            string `koanf:"user" validate:"required_without=URL"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required_without=URL"`
	SSLMode         string `koanf:"ssl_mode"`
	TimeZone        string `koanf:"time_zone"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"gt=0"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gte=0"` // seconds
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

type InventoryConfig struct {
	LowStockThreshold int `koanf:"low_stock_threshold" validate:"gte=0"`
}

// DSN builds the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

// Default returns the settings used for anything the environment leaves out.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        10,
			WriteTimeout:       10,
			CORSAllowedOrigins: "*",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "farmpet",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxOpenConns:    100,
			MaxIdleConns:    10,
			ConnMaxLifetime: 3600,
		},
		Log:       LogConfig{Level: "info"},
		Inventory: InventoryConfig{LowStockThreshold: 10},
	}
}

// Load reads .env (if any) and FARMPET_* variables over the defaults, then validates.
func Load() (*Config, error) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.Validator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
