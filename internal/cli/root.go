// Package cli holds the agroconsult command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agroconsult/internal/config"
	"agroconsult/internal/database"
)

type options struct {
	envFiles []string
}

// NewRootCommand builds the command tree. Without a subcommand it serves
// the API.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "agroconsult",
		Short: "Farm consulting API: clients, properties, visits and sales orders",
		Long: `agroconsult serves the REST API used by agronomists to manage growers,
their properties and plots, technical visits, plot evaluations, the product
catalog and sales orders.

Configuration is read from .env (when present) and the environment.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before the environment (default .env)")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newSeedCommand(opts),
		newTokenCommand(opts),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	var h slog.Handler
	if cfg.IsProdLike() {
		level = slog.LevelInfo
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(h)
}

func gormLogLevel(cfg *config.Config) logger.LogLevel {
	if cfg.AppEnv == "dev" {
		return logger.Info
	}
	return logger.Warn
}

// bootstrap loads the configuration and opens the database.
func bootstrap(opts *options) (*config.Config, *gorm.DB, *slog.Logger, error) {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := newLogger(cfg)
	slog.SetDefault(log)

	db, err := database.Connect(cfg.DatabaseURL, database.WithLogLevel(gormLogLevel(cfg)))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, db, log, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
