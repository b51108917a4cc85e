package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kerim-dauren/hostname/internal/infrastructure/hostlist"
	"github.com/kerim-dauren/hostname/internal/infrastructure/updater"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	HostList HostListConfig `yaml:"hostlist"`
	Reload   ReloadConfig   `yaml:"reload"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	GRPCPort int    `yaml:"grpc_port"`
	RESTPort int    `yaml:"rest_port"`
	Host     string `yaml:"host"`
	Env      string `yaml:"env"`
}

// HostListConfig names where the catalog is loaded from. Both locations are
// optional; with neither the service runs with an empty catalog.
type HostListConfig struct {
	Path      string        `yaml:"path"`
	URL       string        `yaml:"url"`
	Timeout   time.Duration `yaml:"timeout"`
	Normalize bool          `yaml:"normalize"`
}

type ReloadConfig struct {
	Interval         time.Duration `yaml:"interval"`
	MaxRetries       int           `yaml:"max_retries"`
	RetryDelay       time.Duration `yaml:"retry_delay"`
	Timeout          time.Duration `yaml:"timeout"`
	MaxRejectedRatio float64       `yaml:"max_rejected_ratio"` // 0 disables the check
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

const userAgent = "hostname-catalog/1.0"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort: 9090,
			RESTPort: 8080,
			Host:     "0.0.0.0",
			Env:      "development",
		},
		HostList: HostListConfig{
			Timeout:   30 * time.Second,
			Normalize: true,
		},
		Reload: ReloadConfig{
			Interval:         time.Hour,
			MaxRetries:       3,
			RetryDelay:       30 * time.Second,
			Timeout:          5 * time.Minute,
			MaxRejectedRatio: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by CONFIG_FILE if set, then environment variables.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if path := getEnvString("CONFIG_FILE", ""); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	config.applyEnv()

	return config, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() {
	c.Server.GRPCPort = getEnvInt("GRPC_PORT", c.Server.GRPCPort)
	c.Server.RESTPort = getEnvInt("REST_PORT", c.Server.RESTPort)
	c.Server.Host = getEnvString("HOST", c.Server.Host)
	c.Server.Env = getEnvString("SERVER_ENV", c.Server.Env)

	c.HostList.Path = getEnvString("HOSTLIST_PATH", c.HostList.Path)
	c.HostList.URL = getEnvString("HOSTLIST_URL", c.HostList.URL)
	c.HostList.Timeout = getEnvDuration("HOSTLIST_TIMEOUT", c.HostList.Timeout)
	c.HostList.Normalize = getEnvBool("HOSTLIST_NORMALIZE", c.HostList.Normalize)

	c.Reload.Interval = getEnvDuration("RELOAD_INTERVAL", c.Reload.Interval)
	c.Reload.MaxRetries = getEnvInt("RELOAD_MAX_RETRIES", c.Reload.MaxRetries)
	c.Reload.RetryDelay = getEnvDuration("RELOAD_RETRY_DELAY", c.Reload.RetryDelay)
	c.Reload.Timeout = getEnvDuration("RELOAD_TIMEOUT", c.Reload.Timeout)
	c.Reload.MaxRejectedRatio = getEnvFloat("RELOAD_MAX_REJECTED_RATIO", c.Reload.MaxRejectedRatio)

	c.Logging.Level = getEnvString("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnvString("LOG_FORMAT", c.Logging.Format)

	c.Metrics.Enabled = getEnvBool("METRICS_ENABLED", c.Metrics.Enabled)
}

// Sources returns the host list sources in fallback order: the local file
// first, then the HTTP mirror.
func (c *Config) Sources() []hostlist.SourceConfig {
	var sources []hostlist.SourceConfig

	if c.HostList.Path != "" {
		sources = append(sources, hostlist.SourceConfig{
			Type:     hostlist.SourceTypeFile,
			Location: c.HostList.Path,
		})
	}

	if c.HostList.URL != "" {
		sources = append(sources, hostlist.SourceConfig{
			Type:       hostlist.SourceTypeHTTP,
			Location:   c.HostList.URL,
			Timeout:    c.HostList.Timeout,
			MaxRetries: c.Reload.MaxRetries,
			RetryDelay: c.Reload.RetryDelay,
			UserAgent:  userAgent,
		})
	}

	return sources
}

func (c *Config) UpdaterConfig() updater.Config {
	return updater.Config{
		Interval:         c.Reload.Interval,
		MaxRetries:       c.Reload.MaxRetries,
		RetryDelay:       c.Reload.RetryDelay,
		UpdateTimeout:    c.Reload.Timeout,
		MaxRejectedRatio: c.Reload.MaxRejectedRatio,
	}
}

func (c *Config) Validate() error {
	if c.Server.GRPCPort < 1 || c.Server.GRPCPort > 65535 {
		return fmt.Errorf("invalid GRPC port: %d", c.Server.GRPCPort)
	}

	if c.Server.RESTPort < 1 || c.Server.RESTPort > 65535 {
		return fmt.Errorf("invalid REST port: %d", c.Server.RESTPort)
	}

	if c.Server.GRPCPort == c.Server.RESTPort {
		return fmt.Errorf("GRPC and REST ports must differ: %d", c.Server.GRPCPort)
	}

	if c.HostList.Timeout <= 0 {
		return fmt.Errorf("host list timeout must be positive")
	}

	if c.Reload.Interval <= 0 {
		return fmt.Errorf("reload interval must be positive")
	}

	if c.Reload.MaxRetries < 1 {
		return fmt.Errorf("reload max retries must be at least 1")
	}

	if c.Reload.RetryDelay < 0 {
		return fmt.Errorf("reload retry delay must not be negative")
	}

	if c.Reload.Timeout <= 0 {
		return fmt.Errorf("reload timeout must be positive")
	}

	if c.Reload.MaxRejectedRatio < 0 || c.Reload.MaxRejectedRatio > 1 {
		return fmt.Errorf("reload max rejected ratio must be between 0 and 1, got %v", c.Reload.MaxRejectedRatio)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Utility functions for reading environment variables

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
