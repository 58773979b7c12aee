package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-analyst/internal/models"
)

func TestRunAnalysisEmptyInput(t *testing.T) {
	e := testEngine(fixedNow)

	result := e.RunAnalysis(nil, nil, models.TimeframeWeek, DefaultPreferences())

	require.NotNil(t, result.Insights)
	require.NotNil(t, result.Alerts)
	require.NotNil(t, result.Categories)
	assert.Empty(t, result.Insights)
	assert.Empty(t, result.Alerts)
	assert.Empty(t, result.Categories)
}

func TestRunAnalysisFullResult(t *testing.T) {
	e := testEngine(fixedNow)

	trades := []models.Trade{
		tradeAt(1, -3000, "panic exit on the breakout"),
		tradeAt(2, -100, ""),
		tradeAt(3, -100, ""),
		tradeAt(4, -100, ""),
		tradeAt(5, -50, ""),
	}
	for i := range trades {
		trades[i].ID = fmt.Sprintf("t%d", i)
	}

	result := e.RunAnalysis(trades, nil, models.TimeframeWeek, DefaultPreferences())

	_, ok := findInsight(result.Insights, InsightLowWinRate)
	assert.True(t, ok)
	_, ok = findAlert(result.Alerts, AlertLosingStreak)
	assert.True(t, ok)
	assert.Len(t, result.Categories, 5)
	assert.Equal(t, models.EmotionNegative, result.Categories["t0"].EmotionalState)
}

func TestRunAnalysisStableIDs(t *testing.T) {
	e := testEngine(fixedNow)

	trades := []models.Trade{
		tradeAt(1, -3000, ""),
		tradeAt(2, -100, ""),
		tradeAt(3, -100, ""),
		tradeAt(4, -100, ""),
		tradeAt(5, -50, ""),
	}

	first := e.RunAnalysis(trades, nil, models.TimeframeWeek, DefaultPreferences())
	second := e.RunAnalysis(trades, nil, models.TimeframeWeek, DefaultPreferences())

	ids := func(r models.AnalysisResult) []string {
		var out []string
		for _, in := range r.Insights {
			out = append(out, in.ID)
		}
		for _, a := range r.Alerts {
			out = append(out, a.ID)
		}
		return out
	}
	assert.Equal(t, ids(first), ids(second))
}

func TestRunAnalysisCategorizeCap(t *testing.T) {
	e := testEngine(fixedNow)

	var trades []models.Trade
	for i := 0; i < 15; i++ {
		tr := tradeAt(i+1, 100, "")
		tr.ID = fmt.Sprintf("t%02d", i)
		trades = append(trades, tr)
	}

	result := e.RunAnalysis(trades, nil, models.TimeframeWeek, DefaultPreferences())

	assert.Len(t, result.Categories, categorizeCap)
	// Input order decides which trades get classified.
	_, ok := result.Categories["t00"]
	assert.True(t, ok)
	_, ok = result.Categories["t14"]
	assert.False(t, ok)
}

func TestRunAnalysisToggles(t *testing.T) {
	e := testEngine(fixedNow)

	trades := []models.Trade{
		tradeAt(1, -3000, ""),
		tradeAt(2, -100, ""),
		tradeAt(3, -100, ""),
		tradeAt(4, -100, ""),
		tradeAt(5, -50, ""),
	}

	prefs := DefaultPreferences()
	prefs.EnableAutoInsights = false
	result := e.RunAnalysis(trades, nil, models.TimeframeWeek, prefs)
	assert.Empty(t, result.Insights)
	assert.NotEmpty(t, result.Alerts)
	assert.NotEmpty(t, result.Categories)

	prefs = DefaultPreferences()
	prefs.EnableSmartAlerts = false
	result = e.RunAnalysis(trades, nil, models.TimeframeWeek, prefs)
	assert.NotEmpty(t, result.Insights)
	assert.Empty(t, result.Alerts)

	prefs = DefaultPreferences()
	prefs.EnableAutoTagging = false
	result = e.RunAnalysis(trades, nil, models.TimeframeWeek, prefs)
	assert.Empty(t, result.Categories)
}

func TestRunAnalysisThresholdOverride(t *testing.T) {
	e := testEngine(fixedNow)

	trades := []models.Trade{tradeAt(1, -1500, "")}

	// Default threshold leaves a 1500 loss alone.
	result := e.RunAnalysis(trades, nil, models.TimeframeWeek, DefaultPreferences())
	_, ok := findAlert(result.Alerts, AlertLargeLoss)
	assert.False(t, ok)

	prefs := DefaultPreferences()
	prefs.Thresholds.LargeLossAmount = 1000
	result = e.RunAnalysis(trades, nil, models.TimeframeWeek, prefs)
	_, ok = findAlert(result.Alerts, AlertLargeLoss)
	assert.True(t, ok)
}

func TestApplyDefaults(t *testing.T) {
	got := ApplyDefaults(models.Preferences{})

	assert.Equal(t, "daily", got.InsightFrequency)
	assert.Equal(t, 3, got.Thresholds.LosingStreak)
	assert.Equal(t, 5, got.Thresholds.DailyTradeLimit)
	assert.Equal(t, 2000, got.Thresholds.LargeLossAmount)
	// Toggles stay as supplied; a zero bool is a deliberate false here.
	assert.False(t, got.EnableAutoInsights)

	custom := models.Preferences{
		InsightFrequency: "realtime",
		Thresholds:       models.AlertThresholds{DailyTradeLimit: 2},
	}
	got = ApplyDefaults(custom)
	assert.Equal(t, "realtime", got.InsightFrequency)
	assert.Equal(t, 2, got.Thresholds.DailyTradeLimit)
	assert.Equal(t, 3, got.Thresholds.LosingStreak)
}

func TestRankInsightsStable(t *testing.T) {
	insights := []models.Insight{
		{ID: "a", Priority: 6},
		{ID: "b", Priority: 9},
		{ID: "c", Priority: 8},
		{ID: "d", Priority: 8},
	}

	rankInsights(insights)

	var ids []string
	for _, in := range insights {
		ids = append(ids, in.ID)
	}
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids)
}
