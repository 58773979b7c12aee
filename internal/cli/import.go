package cli

import (
	"context"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	apperrors "journal-analyst/internal/errors"
	"journal-analyst/internal/models"
)

// csvTrade is the raw import row. Normalization into models.Trade happens
// once here, at the boundary; the engine never sees alternate spellings or
// unparsed fields.
type csvTrade struct {
	ID         string   `csv:"id"`
	Symbol     string   `csv:"symbol"`
	Timestamp  string   `csv:"timestamp"`
	Entry      string   `csv:"entry"`
	Notes      string   `csv:"notes"`
	Net        float64  `csv:"net"`
	RiskReward *float64 `csv:"risk_reward,omitempty"`
	Evidence   int      `csv:"evidence"`
	Setup      string   `csv:"setup"`
}

// timestampLayouts are tried in order when parsing import timestamps.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func (r *csvTrade) normalize() models.Trade {
	var ts time.Time
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, r.Timestamp, time.Local); err == nil {
			ts = parsed
			break
		}
	}
	// An unparsable timestamp stays zero; the engine excludes the trade
	// from date-dependent checks and classifies it as REGULAR_HOURS.
	return models.Trade{
		ID:        r.ID,
		Symbol:    r.Symbol,
		Timestamp: ts,
		Entry:     r.Entry,
		Notes:     r.Notes,
		Metrics: models.TradeMetrics{
			Net:        r.Net,
			RiskReward: r.RiskReward,
		},
		Evidence: r.Evidence,
		Setup:    r.Setup,
	}
}

// addImportCommand adds the import command.
func addImportCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import trades from a CSV file",
		Long: `Import trade records from a CSV export.

Expected columns: id, symbol, timestamp, entry, notes, net, risk_reward,
evidence, setup. Missing optional columns are tolerated.`,
		Example: `  analyst import trades.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Warning("Store not initialized.")
				return nil
			}

			path := args[0]
			file, err := os.Open(path)
			if err != nil {
				output.Error("Failed to open %s: %v", path, err)
				return apperrors.Wrap(err, "opening import file")
			}
			defer file.Close()

			var rows []*csvTrade
			if err := gocsv.UnmarshalFile(file, &rows); err != nil {
				output.Error("Failed to parse %s: %v", path, err)
				return apperrors.NewImportError(path, 0, "parsing CSV", err)
			}

			imported := 0
			for _, row := range rows {
				trade := row.normalize()
				if err := app.Store.SaveTrade(ctx, &trade); err != nil {
					app.Logger.Warn().Err(err).Str("symbol", trade.Symbol).Msg("Skipping trade")
					continue
				}
				imported++
			}

			output.Success("✓ Imported %d of %d trades from %s", imported, len(rows), path)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
