package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jogos-org/jogos/internal/config"
)

const envPrefix = "JOGOS"

func NewRootCommand() *cobra.Command {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	root := &cobra.Command{
		Use:           "jogos",
		Short:         "Catalog your video game collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, args []string) error {
				if cfg.DataFolder == "" {
					home, err := os.UserHomeDir()
					if err != nil {
						return fmt.Errorf("failed to resolve data folder: %w", err)
					}
					cfg.DataFolder = filepath.Join(home, ".jogos")
				}
				return setupLogger(cfg.LogLevel, cfg.LogFormat)
			},
		),
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.DataFolder, "data-folder", cfg.DataFolder, "folder holding the database, preferences and covers (default $HOME/.jogos)")
	flags.StringVar(&cfg.DatabaseName, "database-name", cfg.DatabaseName, "database file name inside the data folder")
	flags.StringVar(&cfg.CoversFolder, "covers-folder", cfg.CoversFolder, "cover images folder (default <data-folder>/covers)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")
	flags.StringVar(&cfg.Metadata.ClientID, "igdb-client-id", cfg.Metadata.ClientID, "IGDB (Twitch) client id")
	flags.StringVar(&cfg.Metadata.ClientSecret, "igdb-client-secret", cfg.Metadata.ClientSecret, "IGDB (Twitch) client secret")
	flags.IntVar(&cfg.Metadata.Workers, "metadata-workers", cfg.Metadata.Workers, "workers for remote metadata and cover downloads")
	flags.DurationVar(&cfg.Metadata.Timeout, "metadata-timeout", cfg.Metadata.Timeout, "timeout of a metadata search or cover download")

	root.AddCommand(
		newMigrateCommand(cfg),
		newListCommand(cfg),
		newAddCommand(cfg),
		newEditCommand(cfg),
		newFavoriteCommand(cfg),
		newDeleteCommand(cfg),
		newPlatformsCommand(cfg),
		newSearchCommand(cfg),
		newExportCommand(cfg),
		newServeCommand(cfg),
	)

	return root
}

// setupLogger installs the global zap logger used by every package.
func setupLogger(level, format string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zcfg zap.Config
	switch format {
	case "json":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
