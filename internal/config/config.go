package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/escolar/escolar-backend/internal/pkg/helpers"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	// DataSource selects and configures the backing store for all entities.
	// Mode "memory" keeps everything in an in-process store; mode "remote"
	// forwards every operation to an upstream backend over HTTP.
	DataSource struct {
		Mode    string `yaml:"mode" env:"DATASOURCE_MODE"`
		BaseURL string `yaml:"base_url" env:"DATASOURCE_BASE_URL"`
		Timeout string `yaml:"timeout" env:"DATASOURCE_TIMEOUT"`
		Seed    bool   `yaml:"seed" env:"DATASOURCE_SEED"`
	} `yaml:"datasource"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// Data source modes
const (
	DataSourceMemory = "memory"
	DataSourceRemote = "remote"
)

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.DataSource.Mode = DataSourceMemory
	config.DataSource.BaseURL = "http://localhost:9090/api"
	config.DataSource.Timeout = "10s"
	config.DataSource.Seed = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("SERVER_MODE"); v != "" {
		config.Server.Mode = v
	}
	if v := os.Getenv("DATASOURCE_MODE"); v != "" {
		config.DataSource.Mode = v
	}
	if v := os.Getenv("DATASOURCE_BASE_URL"); v != "" {
		config.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATASOURCE_TIMEOUT"); v != "" {
		config.DataSource.Timeout = v
	}
	if v := os.Getenv("DATASOURCE_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.DataSource.Seed = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}
}

// validateConfig checks that the configuration is usable before startup
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return fmt.Errorf("server port must be numeric: %q", config.Server.Port)
	}

	switch config.DataSource.Mode {
	case DataSourceMemory:
	case DataSourceRemote:
		if strings.TrimSpace(config.DataSource.BaseURL) == "" {
			return fmt.Errorf("datasource base_url is required in remote mode")
		}
	default:
		return fmt.Errorf("unknown datasource mode: %q", config.DataSource.Mode)
	}

	if _, err := time.ParseDuration(config.DataSource.Timeout); err != nil {
		return fmt.Errorf("invalid datasource timeout: %w", err)
	}

	return nil
}

// RemoteTimeout returns the parsed remote request timeout.
func (c *Config) RemoteTimeout() time.Duration {
	return helpers.ParseDuration(c.DataSource.Timeout, 10*time.Second)
}
