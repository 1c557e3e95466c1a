package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration, loaded from a TOML file.
type Config struct {
	Server     Server     `toml:"server"`
	Logs       Logs       `toml:"logs"`
	Metrics    Metrics    `toml:"metrics"`
	Database   Database   `toml:"database"`
	Redis      Redis      `toml:"redis"`
	Backend    Backend    `toml:"backend"`
	Booking    Booking    `toml:"booking"`
	Session    Session    `toml:"session"`
	Classifier Classifier `toml:"classifier"`
}

type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type Database struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type Redis struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	CatalogTTLHours int    `toml:"catalog_ttl_hours"`
}

// Backend selects the slot/catalog source: the built-in seed data or a
// remote scheduling backend.
type Backend struct {
	Mock         bool   `toml:"mock"`
	URL          string `toml:"url"`
	Timeout      int    `toml:"timeout"`
	BusinessSlug string `toml:"business_slug"`
}

type Booking struct {
	SlotStepMinutes               int    `toml:"slot_step_minutes"`
	AdvanceBookingDays            int    `toml:"advance_booking_days"`
	DefaultServiceDurationMinutes int    `toml:"default_service_duration_minutes"`
	ProviderID                    string `toml:"provider_id"`
	ProviderName                  string `toml:"provider_name"`
}

type Session struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// Classifier configures the service classification keyword tables. Empty
// lists fall back to the built-in Lavadero Lesan tables.
type Classifier struct {
	AddOnKeywords    []string       `toml:"addon_keywords"`
	Categories       []CategoryRule `toml:"categories"`
	AddOnCategory    string         `toml:"addon_category"`
	FallbackCategory string         `toml:"fallback_category"`
}

type CategoryRule struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// Load reads the TOML config, filling in defaults for absent values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: Logs{
			File:  "stdout",
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "lsn-bookingflow",
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: Redis{
			Addr:            "localhost:6379",
			CatalogTTLHours: 12,
		},
		Backend: Backend{
			Mock:         true,
			Timeout:      10,
			BusinessSlug: "lavadero-lesan",
		},
		Booking: Booking{
			SlotStepMinutes:               30,
			AdvanceBookingDays:            30,
			DefaultServiceDurationMinutes: 30,
			ProviderID:                    "p1",
			ProviderName:                  "Equipo Lesan",
		},
		Session: Session{
			TTLMinutes:             60,
			CleanupIntervalMinutes: 10,
		},
	}
}
