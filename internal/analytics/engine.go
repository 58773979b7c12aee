package analytics

import (
	"time"

	"github.com/rs/zerolog"

	"journal-analyst/internal/models"
)

// Engine runs the analytics pipeline. It holds no cross-call state, so a
// single Engine is safe to invoke concurrently from multiple callers.
type Engine struct {
	log zerolog.Logger
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's clock. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an analytics engine.
func NewEngine(logger zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		log: logger,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FilterRecent selects trades whose timestamp falls within the trailing
// window for the given timeframe. Trades with a missing timestamp are
// silently excluded; nil input yields an empty result.
func (e *Engine) FilterRecent(trades []models.Trade, timeframe models.Timeframe) []models.Trade {
	cutoff := e.now().AddDate(0, 0, -timeframe.Days())

	recent := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Timestamp.IsZero() {
			continue
		}
		if !t.Timestamp.Before(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}

// winRate returns the percentage of winning trades in the set. The second
// return is false for an empty set, where a rate is undefined.
func winRate(trades []models.Trade) (float64, bool) {
	if len(trades) == 0 {
		return 0, false
	}
	wins := 0
	for i := range trades {
		if trades[i].IsWin() {
			wins++
		}
	}
	return float64(wins) / float64(len(trades)) * 100, true
}
