package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarjCP365/rota-DomSL-sub003/cmd/cli/commands"
	"github.com/sarjCP365/rota-DomSL-sub003/internal/config"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/postgres"
	"github.com/sarjCP365/rota-DomSL-sub003/pkg/utils/logging"
)

var (
	configPath string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rota",
		Short: "Rota CLI - Match staff to visits and plan care rounds",
		Long:  `A CLI tool for domiciliary care rota management: staff suitability matching, round planning, attendance monitoring and recurring visit expansion.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Database != nil {
					app.Database.Close()
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: rota_config.yaml in cwd or home)")

	rootCmd.AddCommand(commands.MatchStaffCmd(appRef()))
	rootCmd.AddCommand(commands.PlanRoundsCmd(appRef()))
	rootCmd.AddCommand(commands.AttendanceBoardCmd(appRef()))
	rootCmd.AddCommand(commands.ExpandRecurrencesCmd(appRef()))
	rootCmd.AddCommand(commands.ListStaffCmd(appRef()))
	rootCmd.AddCommand(commands.MigrateCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared context that initApp fills in before any RunE
// executes. Commands capture the pointer, not the contents.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and the database store
func initApp() error {
	ref := appRef()
	ref.Ctx = context.Background()

	logger, err := logging.InitLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ref.Logger = logger

	logger.Info("Starting application")

	logger.Info("Loading configuration")
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ref.Cfg = cfg
	logger.Debug("Configuration loaded successfully")

	logger.Info("Connecting to database")
	database, err := postgres.NewDB(ref.Ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	ref.Database = database
	ref.Store = database
	logger.Info("Database connection established", zap.String("driver", "pgx"))

	return nil
}
