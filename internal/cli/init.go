package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create missing collections and seed the default categories",
		Long: `Create the todos, categories and users collections if they do not exist.
Existing collections are left untouched, so running init twice is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svcs, cfg, closeFn, err := rootOpts.openServices(ctx, cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			if err := svcs.Init(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s store\n", cfg.Store.Driver)
			return nil
		},
	}
}
