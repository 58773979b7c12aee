package models

// SetupType is a named trade-entry pattern inferred from free text.
type SetupType string

const (
	SetupBreakout          SetupType = "BREAKOUT"
	SetupPullback          SetupType = "PULLBACK"
	SetupReversal          SetupType = "REVERSAL"
	SetupMomentum          SetupType = "MOMENTUM"
	SetupGapFill           SetupType = "GAP_FILL"
	SetupSupportResistance SetupType = "SUPPORT_RESISTANCE"
	SetupPattern           SetupType = "PATTERN"
	SetupNews              SetupType = "NEWS"
	SetupUnknown           SetupType = "UNKNOWN"
)

// RiskLevel grades a trade's risk from position size and risk-reward.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// MarketCondition is the market environment inferred from trade notes.
type MarketCondition string

const (
	MarketTrending MarketCondition = "TRENDING"
	MarketRanging  MarketCondition = "RANGING"
	MarketVolatile MarketCondition = "VOLATILE"
	MarketNormal   MarketCondition = "NORMAL"
)

// TimeOfDay buckets a trade by session hour.
type TimeOfDay string

const (
	TimeMarketOpen   TimeOfDay = "MARKET_OPEN"
	TimeMidDay       TimeOfDay = "MID_DAY"
	TimeMarketClose  TimeOfDay = "MARKET_CLOSE"
	TimeAfterHours   TimeOfDay = "AFTER_HOURS"
	TimeRegularHours TimeOfDay = "REGULAR_HOURS"
)

// EmotionalState is the trader's state guessed from notes keywords.
type EmotionalState string

const (
	EmotionPositive EmotionalState = "POSITIVE"
	EmotionNegative EmotionalState = "NEGATIVE"
	EmotionNeutral  EmotionalState = "NEUTRAL"
	EmotionUnknown  EmotionalState = "UNKNOWN"
)

// QualityGrade scores overall trade execution quality.
type QualityGrade string

const (
	QualityExcellent QualityGrade = "EXCELLENT"
	QualityGood      QualityGrade = "GOOD"
	QualityFair      QualityGrade = "FAIR"
	QualityPoor      QualityGrade = "POOR"
)

// Category is the derived classification of a single trade. It is
// recomputed on every engine call and never persisted. Every field always
// carries a value, even for malformed input.
type Category struct {
	Setup           SetupType
	RiskLevel       RiskLevel
	MarketCondition MarketCondition
	TimeOfDay       TimeOfDay
	EmotionalState  EmotionalState
	Quality         QualityGrade
}

// DefaultCategory returns the classification used when nothing about a
// trade can be inferred.
func DefaultCategory() Category {
	return Category{
		Setup:           SetupUnknown,
		RiskLevel:       RiskLow,
		MarketCondition: MarketNormal,
		TimeOfDay:       TimeRegularHours,
		EmotionalState:  EmotionUnknown,
		Quality:         QualityPoor,
	}
}
