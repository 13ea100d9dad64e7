package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgoodall/brigade/cmd/cli/commands"
	"github.com/rgoodall/brigade/internal/config"
	"github.com/rgoodall/brigade/pkg/postgres"
	"github.com/rgoodall/brigade/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "brigade",
		Short: "Brigade CLI - Restaurant shift scheduling",
		Long:  `A CLI tool for generating restaurant staff schedules from demand forecasts, managing the roster, and recording time off.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.GenerateScheduleCmd(appContext()))
	rootCmd.AddCommand(commands.ViewScheduleCmd(appContext()))
	rootCmd.AddCommand(commands.ListStaffCmd(appContext()))
	rootCmd.AddCommand(commands.AddTimeOffCmd(appContext()))
	rootCmd.AddCommand(commands.InteractiveCmd(appContext()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appContext returns the shared AppContext, allocating it before initApp has
// populated it so commands can capture the pointer at registration time.
func appContext() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{Ctx: context.Background()}
	}
	return app
}

// initApp sets up logger, config, and database
func initApp() error {
	var err error
	appContext()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Connect to the database
	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Apply any pending migrations
	app.Logger.Info("Running database migrations")
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = database
	app.Logger.Info("Database initialized successfully")

	return nil
}
