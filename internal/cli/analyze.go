package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"journal-analyst/internal/models"
	"journal-analyst/internal/store"
	"journal-analyst/pkg/utils"
)

// addAnalyzeCommand adds the analyze command: the full pipeline in one run.
func addAnalyzeCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis pipeline",
		Long:  "Generate insights, alerts, and trade categories in a single pass, honoring the configured preferences.",
		Example: `  analyst analyze
  analyst analyze --timeframe day --json`,
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

			result := app.Engine.RunAnalysis(trades, journal, models.Timeframe(timeframe), app.Config.Analytics)
			result.Insights = filterDismissed(ctx, app, result.Insights)

			if output.IsJSON() {
				return output.JSON(result)
			}

			status := utils.GetSessionStatus(time.Now())
			output.Bold("Journal Analysis: %s", FormatDate(time.Now()))
			output.Dim("  market session: %s", status)
			output.Println()

			output.Bold("Insights (%d)", len(result.Insights))
			for _, ins := range result.Insights {
				output.Printf("  %s  %s: %s\n", output.InsightTag(string(ins.Type)), ins.Title, ins.Message)
			}
			if len(result.Insights) == 0 {
				output.Dim("  none")
			}
			output.Println()

			output.Bold("Alerts (%d)", len(result.Alerts))
			for _, a := range result.Alerts {
				output.Printf("  %s  %s: %s\n", output.InsightTag(string(a.Type)), a.Title, a.Message)
			}
			if len(result.Alerts) == 0 {
				output.Dim("  none")
			}
			output.Println()

			if len(result.Categories) > 0 {
				output.Bold("Categories (%d most recent trades)", len(result.Categories))
				table := NewTable(output, "Trade", "Setup", "Risk", "Quality")
				for i := range trades {
					c, ok := result.Categories[trades[i].ID]
					if !ok {
						continue
					}
					table.AddRow(
						utils.TruncateString(trades[i].ID, 8),
						string(c.Setup),
						string(c.RiskLevel),
						string(c.Quality),
					)
				}
				table.Render()
			}
			return nil
		},
	}

	cmd.Flags().String("timeframe", "week", "Trailing window (day, week, month)")
	rootCmd.AddCommand(cmd)
}
