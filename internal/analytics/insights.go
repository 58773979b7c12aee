package analytics

import (
	"fmt"
	"math"
	"strings"

	"journal-analyst/internal/models"
)

// Fixed insight identifiers. Repeated runs produce the same ID for the same
// kind of finding so callers can deduplicate or dismiss across refreshes.
const (
	InsightHighWinRate     = "high_win_rate"
	InsightLowWinRate      = "low_win_rate"
	InsightProfitablePer   = "profitable_period"
	InsightTopSetup        = "top_setup"
	InsightWeakSetup       = "underperforming_setup"
	InsightHighRisk        = "high_risk_trading"
	InsightLargePositions  = "large_position_size"
	InsightOvertrading     = "overtrading"
	InsightEmotionalTrades = "emotional_trading"
	InsightOptimalTiming   = "optimal_trading_time"
)

// Generator thresholds. These are contract constants, not preferences.
const (
	highWinRateThreshold  = 70.0
	lowWinRateThreshold   = 40.0
	setupMinTrades        = 3
	weakSetupWinRate      = 30.0
	highRiskShare         = 0.30
	largeAvgPosition      = 3000.0
	overtradingPerDay     = 5
	emotionalJournalShare = 0.30
	optimalBucketWinRate  = 70.0
)

// GenerateInsights runs all five insight generators over the
// timeframe-filtered trade set and returns the merged, priority-ranked list.
func (e *Engine) GenerateInsights(trades []models.Trade, journal []models.JournalEntry, timeframe models.Timeframe) []models.Insight {
	recent := e.FilterRecent(trades, timeframe)

	insights := make([]models.Insight, 0, 8)
	insights = append(insights, e.performanceInsights(recent)...)
	insights = append(insights, e.patternInsights(recent)...)
	insights = append(insights, e.riskInsights(recent)...)
	insights = append(insights, e.behavioralInsights(recent, journal)...)
	insights = append(insights, e.timingInsights(recent)...)

	rankInsights(insights)
	return insights
}

// performanceInsights reports on win rate and net profitability.
func (e *Engine) performanceInsights(trades []models.Trade) []models.Insight {
	var insights []models.Insight

	rate, ok := winRate(trades)
	if !ok {
		return nil
	}

	if rate >= highWinRateThreshold {
		insights = append(insights, e.insight(
			InsightHighWinRate, models.InsightPositive, models.CategoryPerformance, 9,
			"High win rate",
			fmt.Sprintf("Your win rate over this period is %.1f%%.", rate),
			"Keep executing the setups that are working; document them so the edge is repeatable.",
		))
	} else if rate < lowWinRateThreshold {
		insights = append(insights, e.insight(
			InsightLowWinRate, models.InsightWarning, models.CategoryPerformance, 8,
			"Low win rate",
			fmt.Sprintf("Your win rate over this period is %.1f%%.", rate),
			"Review recent losers for a common mistake before placing new trades.",
		))
	}

	var total float64
	for i := range trades {
		total += trades[i].Metrics.Net
	}
	if total > 0 {
		insights = append(insights, e.insight(
			InsightProfitablePer, models.InsightPositive, models.CategoryPerformance, 7,
			"Profitable period",
			fmt.Sprintf("You are net profitable for this period: %+.2f.", total),
			"Protect the gains: avoid increasing size just because the period is green.",
		))
	}

	return insights
}

// setupGroup accumulates per-setup statistics in encounter order.
type setupGroup struct {
	setup  models.SetupType
	count  int
	wins   int
	profit float64
}

func (g *setupGroup) winRate() float64 {
	if g.count == 0 {
		return 0
	}
	return float64(g.wins) / float64(g.count) * 100
}

// patternInsights surfaces the best and worst performing setups. With a
// single qualifying group, both checks still apply to it independently.
func (e *Engine) patternInsights(trades []models.Trade) []models.Insight {
	byIndex := make(map[models.SetupType]int)
	var groups []*setupGroup

	for i := range trades {
		setup := detectSetup(&trades[i])
		idx, ok := byIndex[setup]
		if !ok {
			idx = len(groups)
			byIndex[setup] = idx
			groups = append(groups, &setupGroup{setup: setup})
		}
		g := groups[idx]
		g.count++
		g.profit += trades[i].Metrics.Net
		if trades[i].IsWin() {
			g.wins++
		}
	}

	var best, worst *setupGroup
	for _, g := range groups {
		if g.count < setupMinTrades {
			continue
		}
		// Strict comparisons keep the first group reaching the extreme.
		if best == nil || g.winRate() > best.winRate() {
			best = g
		}
		if worst == nil || g.winRate() < worst.winRate() {
			worst = g
		}
	}

	var insights []models.Insight
	if best != nil {
		insights = append(insights, e.insight(
			InsightTopSetup, models.InsightPositive, models.CategoryPattern, 8,
			"Top performing setup",
			fmt.Sprintf("%s is your best setup: %.1f%% win rate over %d trades (%+.2f net).",
				setupLabel(best.setup), best.winRate(), best.count, best.profit),
			"Look for more of these entries; this setup carries your edge.",
		))
	}
	if worst != nil && worst.winRate() < weakSetupWinRate {
		insights = append(insights, e.insight(
			InsightWeakSetup, models.InsightWarning, models.CategoryPattern, 7,
			"Underperforming setup",
			fmt.Sprintf("%s is underperforming: %.1f%% win rate over %d trades (%+.2f net).",
				setupLabel(worst.setup), worst.winRate(), worst.count, worst.profit),
			"Pause this setup or cut its size until you find what is failing.",
		))
	}
	return insights
}

// riskInsights flags risk concentration and oversized average positions.
// Both checks are independent and can co-fire.
func (e *Engine) riskInsights(trades []models.Trade) []models.Insight {
	if len(trades) == 0 {
		return nil
	}

	var insights []models.Insight

	highRisk := 0
	var sumMagnitude float64
	for i := range trades {
		if assessRisk(&trades[i]) == models.RiskHigh {
			highRisk++
		}
		sumMagnitude += math.Abs(trades[i].Metrics.Net)
	}

	if float64(highRisk)/float64(len(trades)) >= highRiskShare {
		insights = append(insights, e.insight(
			InsightHighRisk, models.InsightWarning, models.CategoryRisk, 9,
			"High risk trading",
			fmt.Sprintf("%d of %d trades in this period are classified high risk.", highRisk, len(trades)),
			"Reduce position size or tighten risk-reward until the share of high-risk trades drops.",
		))
	}

	if avg := sumMagnitude / float64(len(trades)); avg > largeAvgPosition {
		insights = append(insights, e.insight(
			InsightLargePositions, models.InsightInfo, models.CategoryRisk, 6,
			"Large average position",
			fmt.Sprintf("Average trade magnitude is %.2f for this period.", avg),
			"Confirm the account can absorb a losing streak at this size.",
		))
	}

	return insights
}

// behavioralInsights checks trade frequency and journal sentiment.
func (e *Engine) behavioralInsights(trades []models.Trade, journal []models.JournalEntry) []models.Insight {
	var insights []models.Insight

	if len(trades) > 0 {
		days := make(map[string]struct{})
		for i := range trades {
			days[trades[i].Timestamp.Local().Format("2006-01-02")] = struct{}{}
		}
		perDay := float64(len(trades)) / float64(len(days))
		if perDay > overtradingPerDay {
			insights = append(insights, e.insight(
				InsightOvertrading, models.InsightWarning, models.CategoryBehavior, 8,
				"Overtrading",
				fmt.Sprintf("You averaged %.1f trades per trading day this period.", perDay),
				"Set a daily trade cap and stop when you reach it.",
			))
		}
	}

	if len(journal) > 0 {
		emotional := 0
		for i := range journal {
			text := strings.ToLower(journal[i].Content)
			if strings.Contains(text, "fear") || strings.Contains(text, "frustrated") {
				emotional++
			}
		}
		if float64(emotional)/float64(len(journal)) >= emotionalJournalShare {
			insights = append(insights, e.insight(
				InsightEmotionalTrades, models.InsightWarning, models.CategoryBehavior, 7,
				"Emotional trading concern",
				fmt.Sprintf("%d of %d journal entries mention fear or frustration.", emotional, len(journal)),
				"Step away after a loss; journal the feeling before placing the next trade.",
			))
		}
	}

	return insights
}

// timingInsights finds the session bucket where the trader performs best.
func (e *Engine) timingInsights(trades []models.Trade) []models.Insight {
	type bucketStats struct {
		count int
		wins  int
	}
	buckets := make(map[models.TimeOfDay]*bucketStats)
	var order []models.TimeOfDay

	for i := range trades {
		bucket := bucketTimeOfDay(&trades[i])
		stats, ok := buckets[bucket]
		if !ok {
			stats = &bucketStats{}
			buckets[bucket] = stats
			order = append(order, bucket)
		}
		stats.count++
		if trades[i].IsWin() {
			stats.wins++
		}
	}

	var best models.TimeOfDay
	bestRate := -1.0
	for _, bucket := range order {
		stats := buckets[bucket]
		if stats.count < setupMinTrades {
			continue
		}
		rate := float64(stats.wins) / float64(stats.count) * 100
		if rate > bestRate {
			bestRate = rate
			best = bucket
		}
	}

	if bestRate < optimalBucketWinRate {
		return nil
	}
	return []models.Insight{e.insight(
		InsightOptimalTiming, models.InsightPositive, models.CategoryTiming, 6,
		"Optimal trading time",
		fmt.Sprintf("Your %s trades win %.1f%% of the time (%d trades).",
			timeOfDayLabel(best), bestRate, buckets[best].count),
		"Concentrate trading in this session and scale back outside it.",
	)}
}

func (e *Engine) insight(id string, typ models.InsightType, category models.InsightCategory, priority int, title, message, action string) models.Insight {
	return models.Insight{
		ID:        id,
		Type:      typ,
		Category:  category,
		Title:     title,
		Message:   message,
		Action:    action,
		Priority:  priority,
		Timestamp: e.now(),
	}
}

func setupLabel(s models.SetupType) string {
	words := strings.Split(strings.ToLower(string(s)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func timeOfDayLabel(t models.TimeOfDay) string {
	return strings.ToLower(strings.ReplaceAll(string(t), "_", " "))
}
