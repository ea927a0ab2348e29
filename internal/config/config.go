package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values come from, in increasing precedence: defaults, an optional config
// file, environment variables, command-line flags.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	CORS     CORSConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	RequestTimeout  int
}

type CatalogConfig struct {
	Path string // JSON file holding {"products": [...]}
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Keys shared by defaults, environment variables and flag bindings.
// Environment variables are the upper-case form, e.g. CATALOG_PATH.
const (
	KeyPort            = "port"
	KeyHost            = "host"
	KeyReadTimeout     = "read_timeout"
	KeyWriteTimeout    = "write_timeout"
	KeyShutdownTimeout = "shutdown_timeout"
	KeyRequestTimeout  = "request_timeout"
	KeyCatalogPath     = "catalog_path"
	KeyLogLevel        = "log_level"
	KeyCORSOrigins     = "cors_allowed_origins"
	KeyConfigFile      = "config_file"
)

// New returns a viper instance with defaults and environment binding applied.
// Callers may bind flags onto it before passing it to LoadFrom.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyHost, "0.0.0.0")
	v.SetDefault(KeyReadTimeout, 15)
	v.SetDefault(KeyWriteTimeout, 15)
	v.SetDefault(KeyShutdownTimeout, 30)
	v.SetDefault(KeyRequestTimeout, 60)
	v.SetDefault(KeyCatalogPath, "products.json")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCORSOrigins, "*")
	v.SetDefault(KeyConfigFile, "")

	v.AutomaticEnv()

	return v
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return LoadFrom(New())
}

// LoadFrom builds a Config from v, reading the config file first if one is set
func LoadFrom(v *viper.Viper) (*Config, error) {
	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString(KeyPort),
			Host:            v.GetString(KeyHost),
			ReadTimeout:     v.GetInt(KeyReadTimeout),
			WriteTimeout:    v.GetInt(KeyWriteTimeout),
			ShutdownTimeout: v.GetInt(KeyShutdownTimeout),
			RequestTimeout:  v.GetInt(KeyRequestTimeout),
		},
		Catalog: CatalogConfig{
			Path: v.GetString(KeyCatalogPath),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString(KeyCORSOrigins)),
		},
		LogLevel: v.GetString(KeyLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}

	timeouts := []struct {
		name    string
		seconds int
	}{
		{"READ_TIMEOUT", c.Server.ReadTimeout},
		{"WRITE_TIMEOUT", c.Server.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout},
		{"REQUEST_TIMEOUT", c.Server.RequestTimeout},
	}
	for _, timeout := range timeouts {
		if timeout.seconds <= 0 {
			return fmt.Errorf("%s must be a positive number of seconds, got %d", timeout.name, timeout.seconds)
		}
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one CORS origin must be configured")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
