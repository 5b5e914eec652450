package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techpark-119/Todo-App/internal/service"
)

type exportOptions struct {
	user   string
	format string
	output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a user's todos, categories and profile as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "user id (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", service.FormatJSON, "output format (json|yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runExport(rootOpts *RootOptions, opts *exportOptions, cmd *cobra.Command) error {
	format := strings.ToLower(opts.format)
	if format != service.FormatJSON && format != service.FormatYAML {
		return fmt.Errorf("invalid format %q: must be json or yaml", opts.format)
	}

	ctx := cmd.Context()
	svcs, _, closeFn, err := rootOpts.openServices(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	e, err := svcs.Export.Export(ctx, opts.user)
	if err != nil {
		return fmt.Errorf("export %s: %w", opts.user, err)
	}
	body, err := service.Encode(e, format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(body)
		return err
	}
	if err := os.WriteFile(opts.output, body, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d todos to %s\n", len(e.Todos), opts.output)
	return nil
}
