package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Journal Analyst Configuration

[analytics]
# Generate insights automatically when running analysis
enable_auto_insights = true
# Evaluate smart alerts (losing streak, daily volume, large loss)
enable_smart_alerts = true
# Categorize trades automatically
enable_auto_tagging = true
# How often insights should be refreshed: realtime, daily, weekly
insight_frequency = "daily"

[analytics.alert_thresholds]
# Consecutive-loss preference carried alongside the streak check
losing_streak = 3
# Trades per day before the volume alert fires
daily_trade_limit = 5
# Single-trade loss (absolute) that triggers the large loss alert
large_loss_amount = 2000

[store]
# SQLite database path. Defaults to the config directory.
# path = "/home/user/.config/journal-analyst/analyst.db"

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[log]
# Log level: debug, info, warn, error
level = "info"
# Write rotated log files in addition to console output
file = true
`

// createTemplateConfig writes a commented config template so a first run
// leaves the user something to edit.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
