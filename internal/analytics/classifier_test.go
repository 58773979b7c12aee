package analytics

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"journal-analyst/internal/models"
)

func testEngine(now time.Time) *Engine {
	return NewEngine(zerolog.Nop(), WithClock(func() time.Time { return now }))
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestClassifyNilTrade(t *testing.T) {
	e := testEngine(time.Now())

	got := e.Classify(nil)

	assert.Equal(t, models.DefaultCategory(), got)
	assert.Equal(t, models.SetupUnknown, got.Setup)
	assert.Equal(t, models.RiskLow, got.RiskLevel)
	assert.Equal(t, models.MarketNormal, got.MarketCondition)
	assert.Equal(t, models.TimeRegularHours, got.TimeOfDay)
	assert.Equal(t, models.EmotionUnknown, got.EmotionalState)
	assert.Equal(t, models.QualityPoor, got.Quality)
}

func TestClassifyBreakoutTrade(t *testing.T) {
	e := testEngine(time.Now())

	trade := &models.Trade{
		ID:        "t1",
		Symbol:    "AAPL",
		Timestamp: time.Date(2025, 6, 16, 10, 15, 0, 0, time.Local),
		Notes:     "breakout above resistance",
		Metrics: models.TradeMetrics{
			Net:        1500,
			RiskReward: floatPtr(2.2),
		},
	}

	got := e.Classify(trade)

	assert.Equal(t, models.SetupBreakout, got.Setup)
	assert.Equal(t, models.RiskLow, got.RiskLevel)
	assert.Equal(t, models.QualityGood, got.Quality)
	assert.Equal(t, models.TimeMarketOpen, got.TimeOfDay)
}

func TestDetectSetupPriorityOrder(t *testing.T) {
	e := testEngine(time.Now())

	// "support" appears in the text but breakout is higher priority.
	trade := &models.Trade{Notes: "breakout through support level"}
	assert.Equal(t, models.SetupBreakout, e.Classify(trade).Setup)

	// Support alone resolves to support/resistance, not pattern.
	trade = &models.Trade{Notes: "bought at support"}
	assert.Equal(t, models.SetupSupportResistance, e.Classify(trade).Setup)
}

func TestDetectSetupDeclaredFallback(t *testing.T) {
	e := testEngine(time.Now())

	trade := &models.Trade{Notes: "nothing special here", Setup: "pullback"}
	assert.Equal(t, models.SetupPullback, e.Classify(trade).Setup)

	trade = &models.Trade{Notes: "nothing special here", Setup: "my custom setup"}
	assert.Equal(t, models.SetupUnknown, e.Classify(trade).Setup)
}

func TestAssessRiskBrackets(t *testing.T) {
	tests := []struct {
		name string
		net  float64
		rr   *float64
		want models.RiskLevel
	}{
		{"small magnitude no rr", 999, nil, models.RiskLow},
		{"low bracket", 1001, nil, models.RiskLow},
		{"mid bracket", 2001, nil, models.RiskLow},
		{"high bracket alone", 5001, nil, models.RiskMedium},
		{"high bracket bad rr", -5001, floatPtr(0.8), models.RiskHigh},
		{"mid bracket bad rr", -2500, floatPtr(0.5), models.RiskHigh},
		{"low bracket weak rr", 1200, floatPtr(1.2), models.RiskLow},
		{"mid bracket weak rr", 2500, floatPtr(1.2), models.RiskMedium},
		{"good rr large size", 5001, floatPtr(3.0), models.RiskMedium},
	}

	e := testEngine(time.Now())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := &models.Trade{Metrics: models.TradeMetrics{Net: tt.net, RiskReward: tt.rr}}
			assert.Equal(t, tt.want, e.Classify(trade).RiskLevel)
		})
	}
}

func TestDetectCondition(t *testing.T) {
	tests := []struct {
		notes string
		want  models.MarketCondition
	}{
		{"strong trending day", models.MarketTrending},
		{"stuck in a range all morning", models.MarketRanging},
		{"very choppy tape", models.MarketVolatile},
		{"ordinary session", models.MarketNormal},
		{"", models.MarketNormal},
	}

	e := testEngine(time.Now())
	for _, tt := range tests {
		trade := &models.Trade{Notes: tt.notes}
		assert.Equal(t, tt.want, e.Classify(trade).MarketCondition, "notes=%q", tt.notes)
	}
}

func TestDetectEmotion(t *testing.T) {
	tests := []struct {
		notes string
		want  models.EmotionalState
	}{
		{"felt calm and in control", models.EmotionPositive},
		{"pure fomo entry", models.EmotionNegative},
		{"stayed disciplined", models.EmotionNeutral},
		{"no feelings recorded", models.EmotionUnknown},
	}

	e := testEngine(time.Now())
	for _, tt := range tests {
		trade := &models.Trade{Notes: tt.notes}
		assert.Equal(t, tt.want, e.Classify(trade).EmotionalState, "notes=%q", tt.notes)
	}
}

func TestBucketTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want models.TimeOfDay
	}{
		{9, models.TimeMarketOpen},
		{10, models.TimeMarketOpen},
		{11, models.TimeMidDay},
		{13, models.TimeMidDay},
		{14, models.TimeMarketClose},
		{15, models.TimeMarketClose},
		{16, models.TimeAfterHours},
		{8, models.TimeAfterHours},
		{0, models.TimeAfterHours},
		{22, models.TimeAfterHours},
	}

	e := testEngine(time.Now())
	for _, tt := range tests {
		trade := &models.Trade{Timestamp: time.Date(2025, 6, 16, tt.hour, 30, 0, 0, time.Local)}
		assert.Equal(t, tt.want, e.Classify(trade).TimeOfDay, "hour=%d", tt.hour)
	}

	// A missing timestamp is a distinct outcome from after hours.
	trade := &models.Trade{}
	assert.Equal(t, models.TimeRegularHours, e.Classify(trade).TimeOfDay)
}

func TestGradeQualityBands(t *testing.T) {
	e := testEngine(time.Now())

	// Winner, strong rr, documented, with evidence: the full score.
	excellent := &models.Trade{
		Notes:    "clean breakout with volume confirmation",
		Evidence: 2,
		Metrics:  models.TradeMetrics{Net: 800, RiskReward: floatPtr(2.5)},
	}
	assert.Equal(t, models.QualityExcellent, e.Classify(excellent).Quality)

	// Loser with decent rr and notes.
	fair := &models.Trade{
		Notes:   "stopped out on the retest",
		Metrics: models.TradeMetrics{Net: -300, RiskReward: floatPtr(1.6)},
	}
	assert.Equal(t, models.QualityFair, e.Classify(fair).Quality)

	// Nothing going for it.
	poor := &models.Trade{Metrics: models.TradeMetrics{Net: -100}}
	assert.Equal(t, models.QualityPoor, e.Classify(poor).Quality)
}
