package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"journal-analyst/internal/models"
)

var fixedNow = time.Date(2025, 6, 16, 10, 30, 0, 0, time.Local)

func TestFilterRecentWindow(t *testing.T) {
	e := testEngine(fixedNow)

	trades := []models.Trade{
		{ID: "in-today", Timestamp: fixedNow.Add(-2 * time.Hour)},
		{ID: "in-edge", Timestamp: fixedNow.AddDate(0, 0, -7)},
		{ID: "out-old", Timestamp: fixedNow.AddDate(0, 0, -8)},
		{ID: "out-zero"},
	}

	recent := e.FilterRecent(trades, models.TimeframeWeek)

	ids := make([]string, 0, len(recent))
	for _, tr := range recent {
		ids = append(ids, tr.ID)
	}
	assert.Equal(t, []string{"in-today", "in-edge"}, ids)
}

func TestFilterRecentTimeframes(t *testing.T) {
	e := testEngine(fixedNow)

	trades := []models.Trade{
		{ID: "hours-ago", Timestamp: fixedNow.Add(-6 * time.Hour)},
		{ID: "days-ago", Timestamp: fixedNow.AddDate(0, 0, -5)},
		{ID: "weeks-ago", Timestamp: fixedNow.AddDate(0, 0, -20)},
	}

	assert.Len(t, e.FilterRecent(trades, models.TimeframeDay), 1)
	assert.Len(t, e.FilterRecent(trades, models.TimeframeWeek), 2)
	assert.Len(t, e.FilterRecent(trades, models.TimeframeMonth), 3)

	// An unrecognized timeframe falls back to the weekly window.
	assert.Len(t, e.FilterRecent(trades, models.Timeframe("fortnight")), 2)
}

func TestFilterRecentNilInput(t *testing.T) {
	e := testEngine(fixedNow)

	recent := e.FilterRecent(nil, models.TimeframeWeek)

	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}

func TestWinRate(t *testing.T) {
	_, ok := winRate(nil)
	assert.False(t, ok, "rate is undefined for an empty set")

	trades := []models.Trade{
		{Metrics: models.TradeMetrics{Net: 100}},
		{Metrics: models.TradeMetrics{Net: -50}},
		{Metrics: models.TradeMetrics{Net: 0}},
		{Metrics: models.TradeMetrics{Net: 25}},
	}
	rate, ok := winRate(trades)
	assert.True(t, ok)
	assert.InDelta(t, 50.0, rate, 1e-9)
}
