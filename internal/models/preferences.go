package models

// AlertThresholds holds the user-tunable trigger values for alert checks.
type AlertThresholds struct {
	LosingStreak    int `mapstructure:"losing_streak"`
	DailyTradeLimit int `mapstructure:"daily_trade_limit"`
	LargeLossAmount int `mapstructure:"large_loss_amount"`
}

// Preferences is the caller-owned bundle of toggles and thresholds the
// engine reads. The engine never mutates it; callers sharing one bundle
// across goroutines must serialize their own writes.
type Preferences struct {
	EnableAutoInsights bool            `mapstructure:"enable_auto_insights"`
	EnableSmartAlerts  bool            `mapstructure:"enable_smart_alerts"`
	EnableAutoTagging  bool            `mapstructure:"enable_auto_tagging"`
	InsightFrequency   string          `mapstructure:"insight_frequency"`
	Thresholds         AlertThresholds `mapstructure:"alert_thresholds"`
}
