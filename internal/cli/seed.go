package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agroconsult/internal/database"
	"agroconsult/internal/domain/seed"
)

func newSeedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Ensure the demo client, property, plot, product, visit and order exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, _, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}

			res, err := seed.NewService(db).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "client %s\nproperty %s\nplot %s\nproduct %s\nvisit %s\norder %s\n",
				res.Client.ID, res.Property.ID, res.Plot.ID, res.Product.ID, res.Visit.ID, res.Order.ID)
			return nil
		},
	}
}
