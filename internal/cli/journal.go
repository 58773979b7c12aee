package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"journal-analyst/internal/models"
	"journal-analyst/internal/store"
	"journal-analyst/pkg/utils"
)

// addJournalCommands adds journal commands.
func addJournalCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Trading journal management",
		Long:  "Record and review free-text journal entries.",
	}

	cmd.AddCommand(newJournalAddCmd(app))
	cmd.AddCommand(newJournalListCmd(app))

	rootCmd.AddCommand(cmd)
}

func newJournalAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a journal entry",
		Long:  "Record a free-text journal entry, optionally linked to a trade.",
		Example: `  analyst journal add "Felt disciplined today, skipped two marginal setups"
  analyst journal add "Chased the open, pure fomo" --trade 4f7c2a --mood anxious`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			tradeID, _ := cmd.Flags().GetString("trade")
			mood, _ := cmd.Flags().GetString("mood")

			entry := &models.JournalEntry{
				TradeID: tradeID,
				Date:    time.Now(),
				Content: args[0],
				Mood:    mood,
			}
			if err := app.Store.SaveJournalEntry(ctx, entry); err != nil {
				output.Error("Failed to save journal entry: %v", err)
				return err
			}

			output.Success("✓ Journal entry saved (%s)", utils.TruncateString(entry.ID, 8))
			return nil
		},
	}

	cmd.Flags().String("trade", "", "Trade ID this entry relates to")
	cmd.Flags().String("mood", "", "Mood label for the entry")
	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long:  "List recent journal entries, optionally filtered by a content query.",
		Example: `  analyst journal list
  analyst journal list --query breakout --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			query, _ := cmd.Flags().GetString("query")
			limit, _ := cmd.Flags().GetInt("limit")

			entries, err := app.Store.GetJournal(ctx, store.JournalFilter{Limit: limit})
			if err != nil {
				output.Error("Failed to fetch journal entries: %v", err)
				return err
			}

			if query != "" {
				kept := entries[:0]
				for _, e := range entries {
					if containsIgnoreCase(e.Content, query) {
						kept = append(kept, e)
					}
				}
				entries = kept
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}

			if len(entries) == 0 {
				output.Info("No matching journal entries found.")
				return nil
			}

			table := NewTable(output, "Date", "Trade", "Mood", "Content")
			for _, e := range entries {
				table.AddRow(
					FormatDate(e.Date),
					utils.TruncateString(e.TradeID, 8),
					e.Mood,
					utils.TruncateString(e.Content, 48),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("query", "", "Filter by content substring")
	cmd.Flags().Int("limit", 50, "Maximum entries to list")
	return cmd
}

// containsIgnoreCase checks if s contains substr (case-insensitive)
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
