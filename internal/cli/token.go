package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agroconsult/internal/config"
	"agroconsult/internal/pkg/jwt"
)

func newTokenCommand(opts *options) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed caller identity token",
		Long: `Print a bearer token naming the caller. Send it as
"Authorization: Bearer <token>"; the actor becomes created_by on new rows.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.envFiles...)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			token, err := jwt.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(actor)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&actor, "actor", "", "caller identity stored as created_by")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}
