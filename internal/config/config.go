// Package config provides configuration management for the journal
// analytics application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"journal-analyst/internal/models"
)

// Config holds all application configuration.
type Config struct {
	Analytics models.Preferences `mapstructure:"analytics"`
	Store     StoreConfig        `mapstructure:"store"`
	UI        UIConfig           `mapstructure:"ui"`
	Log       LogConfig          `mapstructure:"log"`
}

// StoreConfig holds data store configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"` // SQLite database path
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/journal-analyst"
	}
	return filepath.Join(home, ".config", "journal-analyst")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// Missing file: write a commented template and continue on defaults.
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers the contract defaults: analytics toggles enabled,
// thresholds 3/5/2000, daily insight frequency.
func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("analytics.enable_auto_insights", true)
	v.SetDefault("analytics.enable_smart_alerts", true)
	v.SetDefault("analytics.enable_auto_tagging", true)
	v.SetDefault("analytics.insight_frequency", "daily")
	v.SetDefault("analytics.alert_thresholds.losing_streak", 3)
	v.SetDefault("analytics.alert_thresholds.daily_trade_limit", 5)
	v.SetDefault("analytics.alert_thresholds.large_loss_amount", 2000)

	v.SetDefault("store.path", filepath.Join(configDir, "analyst.db"))

	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04:05")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", true)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ANALYST_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("ANALYST_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ANALYST_INSIGHT_FREQUENCY"); v != "" {
		cfg.Analytics.InsightFrequency = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Analytics.InsightFrequency {
	case "", "realtime", "daily", "weekly":
	default:
		return fmt.Errorf("invalid insight_frequency: %s (must be 'realtime', 'daily' or 'weekly')", c.Analytics.InsightFrequency)
	}

	t := c.Analytics.Thresholds
	if t.LosingStreak < 0 || t.DailyTradeLimit < 0 || t.LargeLossAmount < 0 {
		return fmt.Errorf("alert thresholds must be non-negative")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
