package analytics

import (
	"sort"

	"journal-analyst/internal/models"
)

// categorizeCap bounds how many trades a single analysis call classifies.
// Classification beyond the cap is the caller's responsibility.
const categorizeCap = 10

// RunAnalysis executes the full pipeline: insight generation over the
// timeframe-filtered set, alert generation over the unfiltered set, and
// categorization of the first trades in input order.
//
// RunAnalysis never fails. A panic inside any generator is recovered here
// and degrades that generator's output to empty; the call still returns a
// valid result.
func (e *Engine) RunAnalysis(trades []models.Trade, journal []models.JournalEntry, timeframe models.Timeframe, prefs models.Preferences) models.AnalysisResult {
	prefs = ApplyDefaults(prefs)

	result := models.AnalysisResult{
		Insights:   []models.Insight{},
		Alerts:     []models.Alert{},
		Categories: map[string]models.Category{},
	}

	if prefs.EnableAutoInsights {
		result.Insights = e.recovered("insights", func() []models.Insight {
			return e.GenerateInsights(trades, journal, timeframe)
		})
	}
	if prefs.EnableSmartAlerts {
		result.Alerts = recoveredAlerts(e, func() []models.Alert {
			return e.generateAlerts(trades, prefs.Thresholds)
		})
	}
	if prefs.EnableAutoTagging {
		result.Categories = e.categorize(trades)
	}

	e.log.Debug().
		Int("trades", len(trades)).
		Int("insights", len(result.Insights)).
		Int("alerts", len(result.Alerts)).
		Str("timeframe", string(timeframe)).
		Msg("Analysis complete")

	return result
}

// categorize classifies at most the first categorizeCap trades.
func (e *Engine) categorize(trades []models.Trade) map[string]models.Category {
	categories := make(map[string]models.Category)
	for i := range trades {
		if i >= categorizeCap {
			break
		}
		categories[trades[i].ID] = e.Classify(&trades[i])
	}
	return categories
}

// recovered runs an insight generator and converts a panic into an empty
// result, logging the diagnostic.
func (e *Engine) recovered(name string, fn func() []models.Insight) (out []models.Insight) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("generator", name).Msg("Generator failed, returning empty result")
			out = []models.Insight{}
		}
	}()
	out = fn()
	if out == nil {
		out = []models.Insight{}
	}
	return out
}

func recoveredAlerts(e *Engine, fn func() []models.Alert) (out []models.Alert) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("generator", "alerts").Msg("Generator failed, returning empty result")
			out = []models.Alert{}
		}
	}()
	out = fn()
	if out == nil {
		out = []models.Alert{}
	}
	return out
}

// rankInsights orders insights by priority descending. The sort is stable
// so ties preserve generator-then-insertion order.
func rankInsights(insights []models.Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})
}
