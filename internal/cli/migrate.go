package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agroconsult/internal/database"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			log.Info("schema migrated")
			return nil
		},
	}
}
