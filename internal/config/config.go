package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and the single-instance lock.
	AppName = "ReelFocus"

	configFileName = "config.yaml"
)

// Config holds the complete application configuration
type Config struct {
	Storage       StorageConfig       `mapstructure:"storage"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Overlay       OverlayConfig       `mapstructure:"overlay"`

	// Dir is the directory holding config.yaml and preferences.yaml.
	Dir string `mapstructure:"-"`
}

// StorageConfig defines where day records are kept
type StorageConfig struct {
	Type          string `mapstructure:"type"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// LoggingConfig defines logging behavior
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NotificationsConfig toggles desktop notifications
type NotificationsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// OverlayConfig toggles the cooldown lock window
type OverlayConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultPath returns config.yaml inside the application directory under configDir.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, AppName, configFileName)
}

// Option adjusts the loaded values before validation.
type Option func(v *viper.Viper)

// WithLogLevel overrides logging.level when level is not empty.
func WithLogLevel(level string) Option {
	return func(v *viper.Viper) {
		if level != "" {
			v.Set("logging.level", level)
		}
	}
}

// Load loads configuration from file and environment variables.
// A missing file is not an error; defaults and environment apply.
func Load(configPath string, opts ...Option) (*Config, error) {
	v := viper.New()

	dir := filepath.Dir(configPath)
	setDefaults(v, dir)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("REELFOCUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	for _, opt := range opts {
		opt(v)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Dir = dir

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("storage.type", "file")
	v.SetDefault("storage.path", filepath.Join(dir, "days"))
	v.SetDefault("storage.retention_days", 90)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("notifications.enabled", true)
	v.SetDefault("overlay.enabled", true)
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Storage.Type {
	case "file", "bolt":
	default:
		return fmt.Errorf("unknown storage type: %q", cfg.Storage.Type)
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage path is empty")
	}
	if cfg.Storage.RetentionDays < 0 {
		return fmt.Errorf("invalid retention days: %d", cfg.Storage.RetentionDays)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %q", cfg.Logging.Format)
	}
	return nil
}
