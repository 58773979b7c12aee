package analytics

import "journal-analyst/internal/models"

// Contract defaults used when the caller supplies no preferences.
const (
	defaultLosingStreak    = 3
	defaultDailyTradeLimit = 5
	defaultLargeLossAmount = 2000
	defaultFrequency       = "daily"
)

// DefaultPreferences returns the full default preference bundle: all
// feature toggles enabled and the contract threshold values.
func DefaultPreferences() models.Preferences {
	return models.Preferences{
		EnableAutoInsights: true,
		EnableSmartAlerts:  true,
		EnableAutoTagging:  true,
		InsightFrequency:   defaultFrequency,
		Thresholds: models.AlertThresholds{
			LosingStreak:    defaultLosingStreak,
			DailyTradeLimit: defaultDailyTradeLimit,
			LargeLossAmount: defaultLargeLossAmount,
		},
	}
}

// ApplyDefaults fills any zero-valued threshold or frequency field with the
// contract defaults. Boolean toggles are left as supplied; defaulting them
// is the config layer's concern, since a zero bool is indistinguishable
// from a deliberate false.
func ApplyDefaults(prefs models.Preferences) models.Preferences {
	if prefs.InsightFrequency == "" {
		prefs.InsightFrequency = defaultFrequency
	}
	prefs.Thresholds = applyThresholdDefaults(prefs.Thresholds)
	return prefs
}

func applyThresholdDefaults(t models.AlertThresholds) models.AlertThresholds {
	if t.LosingStreak <= 0 {
		t.LosingStreak = defaultLosingStreak
	}
	if t.DailyTradeLimit <= 0 {
		t.DailyTradeLimit = defaultDailyTradeLimit
	}
	if t.LargeLossAmount <= 0 {
		t.LargeLossAmount = defaultLargeLossAmount
	}
	return t
}
