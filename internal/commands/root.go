// Package commands wires the spendview CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendview-dev/spendview/internal/buildinfo"
	"github.com/spendview-dev/spendview/internal/config"
	"github.com/spendview-dev/spendview/internal/docs"
	"github.com/spendview-dev/spendview/internal/logger"
	"github.com/spendview-dev/spendview/internal/statement"
	"github.com/spendview-dev/spendview/internal/store"
)

// configEnvVar overrides the default config location; a .env file in the
// working directory is honored.
const configEnvVar = "SPENDVIEW_CONFIG"

const defaultConfigFile = "spendview.yaml"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "spendview",
		Short:   "Spending dashboard from bank and card statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to spendview.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand(&configPath))
	rootCmd.AddCommand(newListCommand(&configPath))
	rootCmd.AddCommand(newDeleteCommand(&configPath))
	rootCmd.AddCommand(newReportCommand(&configPath))
	rootCmd.AddCommand(newExportCommand(&configPath))

	return rootCmd
}

// resolveConfigPath picks the config location: flag, then environment
// (loading .env first), then the default file name.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	_ = godotenv.Load()
	if env := os.Getenv(configEnvVar); env != "" {
		return env
	}
	return defaultConfigFile
}

// app bundles the collaborators a subcommand needs.
type app struct {
	cfg     *config.Config
	service *docs.Service
	logger  zerolog.Logger
}

// loadApp loads config and constructs the document service.
func loadApp(configFlag string) (*app, error) {
	path := resolveConfigPath(configFlag)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s (run 'spendview init' first?): %w", path, err)
	}

	log := logger.New()
	builder := statement.NewBuilder(cfg.Import.DatePolicy(), log)
	fileStore := store.NewFileStore(cfg.Data.Dir, cfg.Data.AppKey)
	service := docs.NewService(fileStore, builder, cfg.Data.Dir, log)

	return &app{cfg: cfg, service: service, logger: log}, nil
}
