package oascan

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/oascan/pkg/cobrax/topics"
	"github.com/arthur-debert/oascan/pkg/config"
	"github.com/arthur-debert/oascan/pkg/logging"
	"github.com/arthur-debert/oascan/pkg/ui"
	"github.com/arthur-debert/oascan/pkg/ui/display"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
	}

	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigDefaultsCmd(opts))
	cmd.AddCommand(newConfigDocsCmd(opts))
	cmd.AddCommand(newConfigWatchCmd(opts))
	cmd.AddCommand(newConfigInitCmd(opts))
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   MsgConfigShowShort,
		Example: MsgConfigShowExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return r.RenderResult(display.NewConfigResult("show", cfg))
		},
	}
}

func newConfigDefaultsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: MsgConfigDefaultsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(display.NewConfigResult("defaults", config.Default()))
		},
	}
}

func newConfigDocsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: MsgConfigDocsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat(cmd)
			if err != nil {
				return err
			}

			docs := config.GenerateDocs()
			if format == ui.FormatTerminal {
				docs = topics.NewGlamourRenderer().Render(docs, ".md")
			}
			_, err = io.WriteString(cmd.OutOrStdout(), docs)
			return err
		},
	}
}

func newConfigWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: MsgConfigWatchShort,
		Long:  MsgConfigWatchLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.config.watch")

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			loadOpts, err := opts.loadOptions()
			if err != nil {
				return err
			}

			cfg, err := config.Load(loadOpts)
			if err != nil {
				return err
			}
			config.Initialize(cfg)
			if err := r.RenderResult(display.NewConfigResult("watch", cfg)); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = config.Watch(ctx, loadOpts, func(cfg *config.Config, err error) {
				if err != nil {
					logger.Warn().Err(err).Msg("reload failed")
					_ = r.RenderError(err)
					return
				}
				config.Initialize(cfg)
				logger.Info().Msg(MsgReloaded)
				_ = r.RenderResult(display.NewConfigResult("watch", cfg))
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgWatching+"\n", len(config.DiscoverSources(loadOpts)))
			<-ctx.Done()
			return nil
		},
	}
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			path, err := config.WriteProjectConfig(opts.project, force)
			if err != nil {
				return err
			}
			return r.RenderMessage(fmt.Sprintf(MsgConfigWritten, path))
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
