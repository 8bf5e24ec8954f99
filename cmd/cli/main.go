package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/scholarship-allocator/cmd/cli/commands"
	"github.com/jakechorley/scholarship-allocator/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
	app        *commands.AppContext
)

func main() {
	app = &commands.AppContext{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "allocator",
		Short: "Scholarship allocator - rank candidates and share a budget",
		Long: `A CLI tool that ranks scholarship candidates with the Weighted Product Model
and distributes a budget among the top candidates in proportion to their scores.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects allocator_config.<env>.yaml, oauthClient.<env>.json and the log file prefix)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (overrides the --env lookup)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")

	rootCmd.AddCommand(commands.InspectCmd(app))
	rootCmd.AddCommand(commands.ScoreCmd(app))
	rootCmd.AddCommand(commands.AllocateCmd(app))
	rootCmd.AddCommand(commands.OptimalCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))
	rootCmd.AddCommand(commands.SheetCmd(app))
	rootCmd.AddCommand(commands.GuideCmd())
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads .env files and sets up the logger
func initApp() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	logger, err := logging.New(logging.Options{Env: env, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Env = env
	app.ConfigPath = configPath
	app.Logger = logger

	app.Logger.Debug("Starting application", zap.String("environment", env))
	return nil
}
