package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds all host configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Plugin configuration
	Plugins PluginConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP admin server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// PluginConfig holds plugin discovery configuration
type PluginConfig struct {
	// Dirs are scanned in order on startup.
	Dirs []string
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       logrus.Level
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Server:        loadServerConfig(),
		Plugins:       loadPluginConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadServerConfig loads admin server configuration from environment
func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("PLUGFORGE_HOST", "0.0.0.0"),
		Port:            getEnv("PLUGFORGE_PORT", "8080"),
		ReadTimeout:     getEnvDuration("PLUGFORGE_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("PLUGFORGE_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvDuration("PLUGFORGE_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("PLUGFORGE_SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// loadPluginConfig loads plugin discovery configuration from environment
func loadPluginConfig() PluginConfig {
	dirs := strings.Split(getEnv("PLUGFORGE_PLUGIN_DIRS", DefaultPluginDir()), string(os.PathListSeparator))

	cleaned := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir = strings.TrimSpace(dir); dir != "" {
			cleaned = append(cleaned, dir)
		}
	}

	return PluginConfig{Dirs: cleaned}
}

// loadObservabilityConfig loads observability configuration from environment
func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:       parseLogLevel(getEnv("PLUGFORGE_LOG_LEVEL", "info")),
		MetricsEnabled: getEnvBool("PLUGFORGE_METRICS_ENABLED", true),
	}
}

// DefaultPluginDir returns the per-user plugin directory.
func DefaultPluginDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./plugins"
	}
	return filepath.Join(home, ".plugforge", "plugins")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if len(c.Plugins.Dirs) == 0 {
		return fmt.Errorf("at least one plugin directory is required")
	}
	return nil
}

// parseLogLevel maps a level name to a logrus level, defaulting to info
func parseLogLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// getEnv returns an environment variable or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
