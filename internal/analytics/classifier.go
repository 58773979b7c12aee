// Package analytics implements the rule-based trade-analytics engine: it
// classifies individual trades, aggregates them into behavioral and
// performance signals, and emits ranked insight and alert objects.
//
// The engine is a single-pass, synchronous, pure computation. It performs
// no network or disk I/O; its only injected state is a logger and a clock.
package analytics

import (
	"math"
	"strings"

	"journal-analyst/internal/models"
)

// setupRule binds a setup type to the keywords that identify it.
type setupRule struct {
	setup    models.SetupType
	keywords []string
}

// setupRules is scanned in order; the first matching group wins. Order
// matters because groups share vocabulary ("support" alone must resolve to
// SUPPORT_RESISTANCE, not PATTERN).
var setupRules = []setupRule{
	{models.SetupBreakout, []string{"breakout", "break out", "breaking out", "resistance break"}},
	{models.SetupPullback, []string{"pullback", "pull back", "retracement", "dip buy"}},
	{models.SetupReversal, []string{"reversal", "reverse", "bounce", "rejection"}},
	{models.SetupMomentum, []string{"momentum", "momo", "runner", "squeeze"}},
	{models.SetupGapFill, []string{"gap fill", "gap up", "gap down", "gapper"}},
	{models.SetupSupportResistance, []string{"support", "resistance", "key level", "demand zone", "supply zone"}},
	{models.SetupPattern, []string{"flag", "pennant", "triangle", "wedge", "cup and handle", "head and shoulders"}},
	{models.SetupNews, []string{"news", "earnings", "catalyst", "announcement", "fda"}},
}

// keywordRule maps notes keywords to an inferred label.
type keywordRule[T ~string] struct {
	label    T
	keywords []string
}

var conditionRules = []keywordRule[models.MarketCondition]{
	{models.MarketTrending, []string{"trending", "momentum"}},
	{models.MarketRanging, []string{"range", "sideways"}},
	{models.MarketVolatile, []string{"volatile", "choppy"}},
}

var emotionRules = []keywordRule[models.EmotionalState]{
	{models.EmotionPositive, []string{"confident", "calm"}},
	{models.EmotionNegative, []string{"fear", "panic", "fomo"}},
	{models.EmotionNeutral, []string{"neutral", "disciplined"}},
}

// Classify derives the full category tuple for a single trade. It never
// fails: a nil trade yields DefaultCategory.
func (e *Engine) Classify(trade *models.Trade) models.Category {
	if trade == nil {
		return models.DefaultCategory()
	}

	return models.Category{
		Setup:           detectSetup(trade),
		RiskLevel:       assessRisk(trade),
		MarketCondition: detectCondition(trade.Notes),
		TimeOfDay:       bucketTimeOfDay(trade),
		EmotionalState:  detectEmotion(trade.Notes),
		Quality:         gradeQuality(trade),
	}
}

func detectSetup(trade *models.Trade) models.SetupType {
	text := strings.ToLower(trade.Entry + " " + trade.Notes)
	for _, rule := range setupRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.setup
			}
		}
	}
	if label := declaredSetup(trade.Setup); label != models.SetupUnknown {
		return label
	}
	return models.SetupUnknown
}

// declaredSetup maps a trade's own setup label onto the known setup types.
func declaredSetup(label string) models.SetupType {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(label), " ", "_"))
	switch models.SetupType(normalized) {
	case models.SetupBreakout, models.SetupPullback, models.SetupReversal,
		models.SetupMomentum, models.SetupGapFill, models.SetupSupportResistance,
		models.SetupPattern, models.SetupNews:
		return models.SetupType(normalized)
	}
	return models.SetupUnknown
}

// Risk score brackets for absolute net profit. Only the single highest
// matching bracket contributes.
const (
	riskBracketLow  = 1000
	riskBracketMid  = 2000
	riskBracketHigh = 5000
)

func assessRisk(trade *models.Trade) models.RiskLevel {
	score := 0

	magnitude := math.Abs(trade.Metrics.Net)
	switch {
	case magnitude >= riskBracketHigh:
		score += 3
	case magnitude >= riskBracketMid:
		score += 2
	case magnitude >= riskBracketLow:
		score++
	}

	if rr, ok := trade.RiskReward(); ok {
		switch {
		case rr < 1.0:
			score += 3
		case rr < 1.5:
			score++
		}
	}

	switch {
	case score >= 5:
		return models.RiskHigh
	case score >= 3:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func detectCondition(notes string) models.MarketCondition {
	text := strings.ToLower(notes)
	for _, rule := range conditionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.label
			}
		}
	}
	return models.MarketNormal
}

// bucketTimeOfDay maps the trade's local hour onto a session bucket.
// A missing timestamp means the session is unknowable, which is distinct
// from a trade known to sit outside regular hours.
func bucketTimeOfDay(trade *models.Trade) models.TimeOfDay {
	if trade.Timestamp.IsZero() {
		return models.TimeRegularHours
	}
	hour := trade.Timestamp.Local().Hour()
	switch {
	case hour >= 9 && hour < 11:
		return models.TimeMarketOpen
	case hour >= 11 && hour < 14:
		return models.TimeMidDay
	case hour >= 14 && hour < 16:
		return models.TimeMarketClose
	default:
		return models.TimeAfterHours
	}
}

func detectEmotion(notes string) models.EmotionalState {
	text := strings.ToLower(notes)
	for _, rule := range emotionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.label
			}
		}
	}
	return models.EmotionUnknown
}

func gradeQuality(trade *models.Trade) models.QualityGrade {
	score := 0

	if trade.Metrics.Net > 0 {
		score += 2
	}
	if rr, ok := trade.RiskReward(); ok {
		if rr >= 2 {
			score += 2
		} else if rr >= 1.5 {
			score++
		}
	}
	if len(trade.Notes) > 10 {
		score++
	}
	if trade.Evidence > 0 {
		score++
	}

	switch {
	case score >= 6:
		return models.QualityExcellent
	case score >= 3:
		return models.QualityGood
	case score >= 1:
		return models.QualityFair
	default:
		return models.QualityPoor
	}
}
