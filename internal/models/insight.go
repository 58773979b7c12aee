package models

import "time"

// InsightType is the tone of an insight.
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightInfo     InsightType = "info"
)

// InsightCategory groups insights by the generator that produced them.
type InsightCategory string

const (
	CategoryPerformance InsightCategory = "performance"
	CategoryPattern     InsightCategory = "pattern"
	CategoryRisk        InsightCategory = "risk"
	CategoryBehavior    InsightCategory = "behavior"
	CategoryTiming      InsightCategory = "timing"
)

// Insight is a descriptive finding about trading performance or behavior.
// The ID is stable per insight kind, not per instance, so callers can
// deduplicate or dismiss a kind across regenerations.
type Insight struct {
	ID        string
	Type      InsightType
	Category  InsightCategory
	Title     string
	Message   string
	Action    string
	Priority  int // higher = more urgent, used only for sort order
	Timestamp time.Time
}

// AlertType is the severity class of an alert.
type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// AlertUrgency ranks how quickly an alert should be acted on.
type AlertUrgency string

const (
	UrgencyHigh   AlertUrgency = "high"
	UrgencyMedium AlertUrgency = "medium"
	UrgencyLow    AlertUrgency = "low"
)

// Alert is a time-sensitive finding intended to prompt immediate action.
// Same stable-ID-per-kind lifecycle as Insight.
type Alert struct {
	ID        string
	Type      AlertType
	Urgency   AlertUrgency
	Title     string
	Message   string
	Action    string
	Timestamp time.Time
}
