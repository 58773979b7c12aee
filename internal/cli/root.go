package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"journal-analyst/internal/analytics"
	"journal-analyst/internal/config"
	"journal-analyst/internal/logging"
	"journal-analyst/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
	Engine *analytics.Engine
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Engine: analytics.NewEngine(logger),
	}

	dataStore, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, some features may be unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Str("path", cfg.Store.Path).Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:     "analyst",
		Short:   "Trading journal analytics",
		Long:    "Analyze your trading journal: categorize trades, surface insights, and raise risk alerts.",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logging.SetDebugLevel()
			}
		},
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	addInsightsCommand(rootCmd, app)
	addAlertsCommand(rootCmd, app)
	addClassifyCommand(rootCmd, app)
	addAnalyzeCommand(rootCmd, app)
	addJournalCommands(rootCmd, app)
	addImportCommand(rootCmd, app)
	addPrefsCommand(rootCmd, app)

	return rootCmd
}
