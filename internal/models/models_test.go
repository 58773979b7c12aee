package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeframeDays(t *testing.T) {
	assert.Equal(t, 1, TimeframeDay.Days())
	assert.Equal(t, 7, TimeframeWeek.Days())
	assert.Equal(t, 30, TimeframeMonth.Days())
	assert.Equal(t, 7, Timeframe("quarter").Days(), "unknown timeframes fall back to a week")
	assert.Equal(t, 7, Timeframe("").Days())
}

func TestTradeRiskReward(t *testing.T) {
	var trade Trade
	_, ok := trade.RiskReward()
	assert.False(t, ok, "absent ratio is reported as unset, not zero")

	rr := 1.5
	trade.Metrics.RiskReward = &rr
	got, ok := trade.RiskReward()
	assert.True(t, ok)
	assert.Equal(t, 1.5, got)
}

func TestTradeIsWin(t *testing.T) {
	assert.True(t, (&Trade{Metrics: TradeMetrics{Net: 0.01}}).IsWin())
	assert.False(t, (&Trade{Metrics: TradeMetrics{Net: 0}}).IsWin(), "breakeven is not a win")
	assert.False(t, (&Trade{Metrics: TradeMetrics{Net: -10}}).IsWin())

	var nilTrade *Trade
	assert.False(t, nilTrade.IsWin())
}

func TestDefaultCategory(t *testing.T) {
	c := DefaultCategory()

	assert.Equal(t, SetupUnknown, c.Setup)
	assert.Equal(t, RiskLow, c.RiskLevel)
	assert.Equal(t, MarketNormal, c.MarketCondition)
	assert.Equal(t, TimeRegularHours, c.TimeOfDay)
	assert.Equal(t, EmotionUnknown, c.EmotionalState)
	assert.Equal(t, QualityPoor, c.Quality)
}
