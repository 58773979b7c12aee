// Package models provides domain models for the journal analytics application.
package models

import "time"

// Timeframe is a trailing window used to select trades before aggregation.
type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

// Days returns the window length in days. Unknown timeframes fall back to
// the weekly window.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeDay:
		return 1
	case TimeframeWeek:
		return 7
	case TimeframeMonth:
		return 30
	default:
		return 7
	}
}

// TradeMetrics carries the performance numbers attached to a trade.
type TradeMetrics struct {
	Net        float64  // signed net profit
	RiskReward *float64 // targeted gain / risked loss, nil when not recorded
}

// Trade represents a recorded transaction. The engine treats it as
// read-only input; normalization from raw import formats happens once at
// the store boundary.
type Trade struct {
	ID        string
	Symbol    string
	Timestamp time.Time
	Entry     string // free-text entry description
	Notes     string
	Metrics   TradeMetrics
	Evidence  int    // attached evidence count (screenshots etc.)
	Setup     string // declared setup label, may be empty
}

// RiskReward returns the risk-reward ratio and whether one was recorded.
func (t *Trade) RiskReward() (float64, bool) {
	if t == nil || t.Metrics.RiskReward == nil {
		return 0, false
	}
	return *t.Metrics.RiskReward, true
}

// IsWin reports whether the trade closed with a positive net profit.
func (t *Trade) IsWin() bool {
	return t != nil && t.Metrics.Net > 0
}

// JournalEntry represents a free-text trading journal entry.
type JournalEntry struct {
	ID        string
	TradeID   string
	Date      time.Time
	Content   string
	Mood      string
	CreatedAt time.Time
}

// AnalysisResult is the combined output of a full engine run.
type AnalysisResult struct {
	Insights   []Insight
	Alerts     []Alert
	Categories map[string]Category
}
