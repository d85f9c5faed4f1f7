package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config adalah konfigurasi proses, dibaca dari environment (dan .env).
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Schema   SchemaConfig   `mapstructure:"schema"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	Name           string        `mapstructure:"name"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	StoreTimeout   time.Duration `mapstructure:"store_timeout"`
}

// Configured reports whether enough is set to open a store handle.
func (c DatabaseConfig) Configured() bool {
	return c.URL != "" && c.Name != ""
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SchemaConfig mengatur mode strict: jika aktif, POST /api/create memeriksa
// data terhadap katalog skema untuk koleksi yang dikenal.
type SchemaConfig struct {
	Strict bool `mapstructure:"strict"`
}

var envBindings = map[string]string{
	"app.name":                 "APP_NAME",
	"app.version":              "APP_VERSION",
	"app.env":                  "APP_ENV",
	"server.port":              "PORT",
	"server.shutdown_timeout":  "SHUTDOWN_TIMEOUT",
	"database.url":             "DATABASE_URL",
	"database.name":            "DATABASE_NAME",
	"database.connect_timeout": "CONNECT_TIMEOUT",
	"database.store_timeout":   "STORE_TIMEOUT",
	"log.level":                "LOG_LEVEL",
	"log.format":               "LOG_FORMAT",
	"schema.strict":            "STRICT_SCHEMA",
}

// Load reads .env (if any) and the process environment.
// Priority: environment > .env > defaults.
func Load() (*Config, error) {
	// .env opsional, tidak fatal jika tidak ada
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("app.name", "SiMATA")
	v.SetDefault("app.version", "0.1")
	v.SetDefault("app.env", "development")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.url", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.store_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("schema.strict", false)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("gagal membaca konfigurasi: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Server.Port = strings.TrimSpace(c.Server.Port)
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT tidak valid: %q (json|console)", c.Log.Format)
	}
	return nil
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return "0.0.0.0:" + c.Server.Port
}
