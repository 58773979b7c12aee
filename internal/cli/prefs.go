package cli

import (
	"github.com/spf13/cobra"

	"journal-analyst/internal/analytics"
)

// addPrefsCommand adds the prefs command.
func addPrefsCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show effective analysis preferences",
		Long:  "Display the preference bundle the engine will use: toggles, frequency, and alert thresholds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			prefs := analytics.ApplyDefaults(app.Config.Analytics)

			if output.IsJSON() {
				return output.JSON(prefs)
			}

			output.Bold("Preferences")
			output.Printf("  Auto insights:      %v\n", prefs.EnableAutoInsights)
			output.Printf("  Smart alerts:       %v\n", prefs.EnableSmartAlerts)
			output.Printf("  Auto tagging:       %v\n", prefs.EnableAutoTagging)
			output.Printf("  Insight frequency:  %s\n", prefs.InsightFrequency)
			output.Println()
			output.Bold("Alert Thresholds")
			output.Printf("  Losing streak:      %d\n", prefs.Thresholds.LosingStreak)
			output.Printf("  Daily trade limit:  %d\n", prefs.Thresholds.DailyTradeLimit)
			output.Printf("  Large loss amount:  %d\n", prefs.Thresholds.LargeLossAmount)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
