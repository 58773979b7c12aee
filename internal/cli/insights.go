package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"journal-analyst/internal/models"
	"journal-analyst/internal/store"
)

// addInsightsCommand adds the insights command group.
func addInsightsCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show insights about your trading",
		Long:  "Generate performance, pattern, risk, behavioral, and timing insights over a trailing window.",
		Example: `  analyst insights
  analyst insights --timeframe month
  analyst insights dismiss high_win_rate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized. No trade data available.")
				return nil
			}

			timeframe, _ := cmd.Flags().GetString("timeframe")

			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}
			journal, err := app.Store.GetJournal(ctx, store.JournalFilter{})
			if err != nil {
				output.Error("Failed to fetch journal entries: %v", err)
				return err
			}

			insights := app.Engine.GenerateInsights(trades, journal, models.Timeframe(timeframe))
			insights = filterDismissed(ctx, app, insights)

			if output.IsJSON() {
				return output.JSON(insights)
			}

			output.Bold("Insights (%s)", models.Timeframe(timeframe))
			output.Println()

			if len(insights) == 0 {
				output.Info("No insights for this period.")
				output.Dim("Tip: insights need a handful of trades in the window to fire.")
				return nil
			}

			for _, ins := range insights {
				output.Printf("%s  %s\n", output.InsightTag(string(ins.Type)), ins.Title)
				output.Printf("  %s\n", ins.Message)
				output.Dim("  → %s", ins.Action)
				output.Dim("  id=%s  category=%s  priority=%d", ins.ID, ins.Category, ins.Priority)
				output.Println()
			}
			return nil
		},
	}

	cmd.Flags().String("timeframe", "week", "Trailing window (day, week, month)")
	cmd.AddCommand(newInsightsDismissCmd(app))
	rootCmd.AddCommand(cmd)
}

func newInsightsDismissCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <insight-id>",
		Short: "Dismiss an insight kind",
		Long:  "Hide an insight kind from future listings. The engine keeps regenerating it; the listing filters it out.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			if err := app.Store.DismissInsight(ctx, args[0]); err != nil {
				output.Error("Failed to dismiss insight: %v", err)
				return err
			}
			output.Success("✓ Dismissed %s", args[0])
			return nil
		},
	}
}

// filterDismissed drops insight kinds the user has dismissed. Failures to
// read dismissals degrade to showing everything.
func filterDismissed(ctx context.Context, app *App, insights []models.Insight) []models.Insight {
	if app.Store == nil {
		return insights
	}
	ids, err := app.Store.GetDismissedInsights(ctx)
	if err != nil || len(ids) == 0 {
		return insights
	}

	dismissed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		dismissed[id] = struct{}{}
	}

	kept := insights[:0]
	for _, ins := range insights {
		if _, ok := dismissed[ins.ID]; !ok {
			kept = append(kept, ins)
		}
	}
	return kept
}
