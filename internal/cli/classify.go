package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"journal-analyst/internal/store"
	"journal-analyst/pkg/utils"
)

// addClassifyCommand adds the classify command.
func addClassifyCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "classify [trade-id]",
		Short: "Categorize trades",
		Long: `Derive the category tuple for one trade or the most recent trades:
setup, risk level, market condition, time of day, emotional state, quality.`,
		Example: `  analyst classify 4f7c2a
  analyst classify --recent 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized. No trade data available.")
				return nil
			}

			limit, _ := cmd.Flags().GetInt("recent")

			filter := store.TradeFilter{Limit: limit}
			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if len(args) == 1 {
				id := args[0]
				kept := trades[:0]
				for _, t := range trades {
					if t.ID == id {
						kept = append(kept, t)
						break
					}
				}
				trades = kept
				if len(trades) == 0 {
					output.Info("No trade found with id %s.", id)
					return nil
				}
			}

			if output.IsJSON() {
				categories := make(map[string]interface{}, len(trades))
				for i := range trades {
					categories[trades[i].ID] = app.Engine.Classify(&trades[i])
				}
				return output.JSON(categories)
			}

			table := NewTable(output, "Trade", "Symbol", "Net", "Setup", "Risk", "Condition", "Session", "Emotion", "Quality")
			for i := range trades {
				t := &trades[i]
				c := app.Engine.Classify(t)
				table.AddRow(
					utils.TruncateString(t.ID, 8),
					t.Symbol,
					output.FormatPnL(t.Metrics.Net),
					string(c.Setup),
					string(c.RiskLevel),
					string(c.MarketCondition),
					string(c.TimeOfDay),
					string(c.EmotionalState),
					string(c.Quality),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().Int("recent", 20, "Number of recent trades to classify")
	rootCmd.AddCommand(cmd)
}
