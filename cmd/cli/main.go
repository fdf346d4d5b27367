package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/awayboard/awayboard/cmd/cli/commands"
	"github.com/awayboard/awayboard/internal/config"
	"github.com/awayboard/awayboard/pkg/store"
	"github.com/awayboard/awayboard/pkg/store/postgres"
	"github.com/awayboard/awayboard/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "awayboard",
		Short: "Awayboard - track who is out of office and who covers what",
		Long:  `A CLI tool for a small team's out-of-office tracker: leave entries, coverage checklists, a shared month calendar and a cross-team coverage board.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				// Let scheduled persists finish before the process exits
				if app.Store != nil {
					app.Store.Flush()
				}
				if app.Logger != nil {
					app.Logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment suffix for config files (e.g. test)")

	rootCmd.AddCommand(commands.AddEntryCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveEntryCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateEntryCmd(appRef()))
	rootCmd.AddCommand(commands.ListEntriesCmd(appRef()))
	rootCmd.AddCommand(commands.AddCoverageCmd(appRef()))
	rootCmd.AddCommand(commands.AddTaskCmd(appRef()))
	rootCmd.AddCommand(commands.ToggleTaskCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveTaskCmd(appRef()))
	rootCmd.AddCommand(commands.BoardCmd(appRef()))
	rootCmd.AddCommand(commands.CalendarCmd(appRef()))
	rootCmd.AddCommand(commands.ImportCalendarCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating the empty shell early
// so command constructors can hold a stable pointer while initApp fills
// it in during PersistentPreRunE
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, persistence backend and the entry store
func initApp() error {
	appRef()
	app.Ctx = context.Background()

	var err error
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Loading configuration", zap.String("environment", env))
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	persister, err := buildPersister()
	if err != nil {
		return err
	}

	app.Store = store.New(app.Ctx, persister, app.Logger)
	app.Logger.Debug("Store initialized", zap.String("backend", app.Cfg.Store.Backend))

	return nil
}

// buildPersister creates the persistence backend selected in config
func buildPersister() (store.Persister, error) {
	switch app.Cfg.Store.Backend {
	case "postgres":
		app.Logger.Info("Connecting to database")
		pg, err := postgres.New(app.Ctx, app.Cfg.Store.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := pg.RunMigrations(app.Ctx); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return pg, nil
	default:
		return store.NewFilePersister(app.Cfg.Store.Path), nil
	}
}
