package analytics

import (
	"fmt"
	"math"

	"journal-analyst/internal/models"
)

// Fixed alert identifiers, stable per kind across regenerations.
const (
	AlertLosingStreak = "losing_streak_alert"
	AlertDailyLimit   = "daily_limit_alert"
	AlertLargeLoss    = "large_loss_alert"
)

// losingStreakWindow and losingStreakTrigger define the literal 4-of-last-5
// losing streak check. The configurable losingStreak preference is carried
// alongside but does not replace this trigger.
const (
	losingStreakWindow  = 5
	losingStreakTrigger = 4
)

// GenerateAlerts evaluates short-horizon alert conditions with the default
// thresholds. The trade list is the full, unfiltered history and is assumed
// to be ordered newest-first.
func (e *Engine) GenerateAlerts(trades []models.Trade, journal []models.JournalEntry) []models.Alert {
	return e.generateAlerts(trades, DefaultPreferences().Thresholds)
}

// generateAlerts runs the three alert checks independently; a single call
// yields zero to three alerts. A trade with a missing timestamp is excluded
// from the date-dependent checks only, never the whole generator.
func (e *Engine) generateAlerts(trades []models.Trade, thresholds models.AlertThresholds) []models.Alert {
	thresholds = applyThresholdDefaults(thresholds)

	var alerts []models.Alert
	if a := e.losingStreakAlert(trades); a != nil {
		alerts = append(alerts, *a)
	}
	if a := e.dailyLimitAlert(trades, thresholds.DailyTradeLimit); a != nil {
		alerts = append(alerts, *a)
	}
	if a := e.largeLossAlert(trades, thresholds.LargeLossAmount); a != nil {
		alerts = append(alerts, *a)
	}
	return alerts
}

func (e *Engine) losingStreakAlert(trades []models.Trade) *models.Alert {
	window := losingStreakWindow
	if len(trades) < window {
		window = len(trades)
	}

	losses := 0
	for i := 0; i < window; i++ {
		if trades[i].Metrics.Net <= 0 {
			losses++
		}
	}
	if losses < losingStreakTrigger {
		return nil
	}

	a := e.alert(
		AlertLosingStreak, models.AlertCritical, models.UrgencyHigh,
		"Losing streak",
		fmt.Sprintf("%d of your last %d trades were losses.", losses, window),
		"Stop trading for today and review what changed.",
	)
	return &a
}

func (e *Engine) dailyLimitAlert(trades []models.Trade, limit int) *models.Alert {
	today := e.now().Local().Format("2006-01-02")

	count := 0
	for i := range trades {
		if trades[i].Timestamp.IsZero() {
			continue
		}
		if trades[i].Timestamp.Local().Format("2006-01-02") == today {
			count++
		}
	}
	if count < limit {
		return nil
	}

	a := e.alert(
		AlertDailyLimit, models.AlertWarning, models.UrgencyMedium,
		"Daily trade limit reached",
		fmt.Sprintf("You have placed %d trades today (limit %d).", count, limit),
		"No more entries today; quality over quantity.",
	)
	return &a
}

func (e *Engine) largeLossAlert(trades []models.Trade, lossAmount int) *models.Alert {
	cutoff := e.now().AddDate(0, 0, -1)

	for i := range trades {
		t := &trades[i]
		if t.Timestamp.IsZero() || t.Timestamp.Before(cutoff) {
			continue
		}
		if t.Metrics.Net < -float64(lossAmount) {
			a := e.alert(
				AlertLargeLoss, models.AlertCritical, models.UrgencyHigh,
				"Large loss",
				fmt.Sprintf("A recent trade lost %.2f.", math.Abs(t.Metrics.Net)),
				"Check whether the stop was honored, and size down on the next trade.",
			)
			return &a
		}
	}
	return nil
}

func (e *Engine) alert(id string, typ models.AlertType, urgency models.AlertUrgency, title, message, action string) models.Alert {
	return models.Alert{
		ID:        id,
		Type:      typ,
		Urgency:   urgency,
		Title:     title,
		Message:   message,
		Action:    action,
		Timestamp: e.now(),
	}
}
