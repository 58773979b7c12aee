package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"journal-analyst/internal/logging"
	"journal-analyst/internal/store"
)

// addAlertsCommand adds the alerts command.
func addAlertsCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Check for active risk alerts",
		Long:  "Evaluate losing streak, daily volume, and large loss conditions against your recent trades.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized. No trade data available.")
				return nil
			}

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

			alerts := app.Engine.GenerateAlerts(trades, journal)

			if output.IsJSON() {
				return output.JSON(alerts)
			}

			output.Bold("Risk Alerts")
			output.Println()

			if len(alerts) == 0 {
				output.Success("No active alerts.")
				return nil
			}

			for _, a := range alerts {
				logging.LogAlert(app.Logger, a.ID, string(a.Urgency))
				output.Printf("%s  %s (urgency: %s)\n", output.InsightTag(string(a.Type)), a.Title, a.Urgency)
				output.Printf("  %s\n", a.Message)
				output.Dim("  → %s", a.Action)
				output.Println()
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
