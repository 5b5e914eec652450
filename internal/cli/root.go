// Package cli implements todoctl, the maintenance command for the todo store.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/techpark-119/Todo-App/internal/app"
	"github.com/techpark-119/Todo-App/internal/config"
	"github.com/techpark-119/Todo-App/internal/logging"
	"github.com/techpark-119/Todo-App/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	loadConfig func() (config.Config, error)
}

// NewRootCommand creates the root command for todoctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(config.Load)
}

func newRootCommand(load func() (config.Config, error)) *cobra.Command {
	opts := &RootOptions{loadConfig: load}

	cmd := &cobra.Command{
		Use:   "todoctl",
		Short: "Maintenance commands for the todo store",
		Long: `todoctl works directly on the configured store (STORE_DRIVER and friends,
or the file named by CONFIG_PATH) without going through the HTTP API.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand(opts))

	return cmd
}

func (o *RootOptions) logger(w io.Writer, cfg config.Config) *log.Logger {
	lc := cfg.Log
	if o.Verbose {
		lc.Level = "debug"
	} else {
		lc.Level = "warn"
	}
	return logging.NewWithWriter(w, lc)
}

// openServices loads config and opens the store. The returned func closes it.
func (o *RootOptions) openServices(ctx context.Context, cmd *cobra.Command) (*app.Services, config.Config, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	logger := o.logger(cmd.ErrOrStderr(), cfg)

	var st *store.Store
	if cfg.Store.Driver == config.DriverRedis {
		rdb, err := app.NewRedis(cfg.Redis)
		if err != nil {
			return nil, config.Config{}, nil, err
		}
		st, err = app.OpenStore(ctx, cfg, rdb, logger)
		if err != nil {
			_ = rdb.Close()
			return nil, config.Config{}, nil, err
		}
	} else {
		st, err = app.OpenStore(ctx, cfg, nil, logger)
		if err != nil {
			return nil, config.Config{}, nil, err
		}
	}

	closeFn := func() {
		if err := st.Close(); err != nil {
			logger.Warn("close store", "err", err)
		}
	}
	return app.NewServices(st, logger), cfg, closeFn, nil
}
