package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Sources    SourcesConfig    `mapstructure:"sources"`
	Artifact   ArtifactConfig   `mapstructure:"artifact"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" default:"0.0.0.0"`
	Port            int           `mapstructure:"port" default:"8080" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains the embedded database settings
type DatabaseConfig struct {
	Path string `mapstructure:"path" default:"data/countryfx.db" validate:"required"`
}

// SourcesConfig contains the external data source endpoints
type SourcesConfig struct {
	CountriesURL string        `mapstructure:"countries_url" default:"https://restcountries.com/v2/all" validate:"required,url"`
	RatesURL     string        `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest/USD" validate:"required,url"`
	Timeout      time.Duration `mapstructure:"timeout" default:"15s" validate:"gt=0"`
}

// ArtifactConfig contains the summary image settings
type ArtifactConfig struct {
	Path string `mapstructure:"path" default:"data/summary.png" validate:"required"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// configKeys lists every known configuration key so environment variables
// (e.g. SOURCES_RATES_URL) are picked up during Unmarshal.
var configKeys = []string{
	"server.host",
	"server.port",
	"server.read_timeout",
	"server.write_timeout",
	"server.idle_timeout",
	"server.shutdown_timeout",
	"database.path",
	"sources.countries_url",
	"sources.rates_url",
	"sources.timeout",
	"artifact.path",
	"monitoring.enabled",
	"logging.level",
	"logging.format",
	"logging.output_path",
}

// Load loads configuration from file and environment variables.
// An empty configPath skips the file and boots from defaults plus environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}
