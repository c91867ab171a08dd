package oascan

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/oascan/internal/version"
	"github.com/arthur-debert/oascan/pkg/cobrax/topics"
	"github.com/arthur-debert/oascan/pkg/config"
	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/logging"
	"github.com/arthur-debert/oascan/pkg/pattern"
	"github.com/arthur-debert/oascan/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	verbosity    int
	project      string
	format       string
	engine       string
	noUserConfig bool
	properties   []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "oascan",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.project, "project", "p", ".", MsgFlagProject)
	flags.StringVar(&opts.format, "format", ui.FormatAuto.String(), MsgFlagFormat)
	flags.StringVar(&opts.engine, "engine", string(pattern.EngineRE2), MsgFlagEngine)
	flags.BoolVar(&opts.noUserConfig, "no-user-config", false, MsgFlagNoUserConfig)
	flags.StringArrayVarP(&opts.properties, "property", "D", nil, MsgFlagProperty)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("engine", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(pattern.Engines()))
		for _, e := range pattern.Engines() {
			names = append(names, string(e))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("property", propertyCompletion)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newPatternCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	helpFiles, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, helpFiles, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.ForTerminal(stdoutIsTerminal()),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}

// loadOptions turns the persistent flags into loader options
func (o *rootOptions) loadOptions() (config.LoadOptions, error) {
	engine, err := pattern.ParseEngine(o.engine)
	if err != nil {
		return config.LoadOptions{}, errors.Wrap(err, errors.ErrInvalidInput, "invalid --engine")
	}

	props, err := parseProperties(o.properties)
	if err != nil {
		return config.LoadOptions{}, err
	}

	return config.LoadOptions{
		ProjectDir:     o.project,
		SkipUserConfig: o.noUserConfig,
		Properties:     props,
		Engine:         engine,
	}, nil
}

// load resolves the configuration and makes it the process-wide one
func (o *rootOptions) load() (*config.Config, error) {
	opts, err := o.loadOptions()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}
	config.Initialize(cfg)
	return cfg, nil
}

// outputFormat resolves --format against the command's output
func (o *rootOptions) outputFormat(cmd *cobra.Command) (ui.Format, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return ui.FormatAuto, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return ui.Resolve(format, cmd.OutOrStdout()), nil
}

func (o *rootOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := o.outputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// parseProperties splits key=value pairs. Later pairs win.
func parseProperties(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	props := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrBadProperty, pair).
				WithDetail("property", pair)
		}
		props[key] = value
	}
	return props, nil
}

// propertyCompletion completes -D with the known property names
func propertyCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, o := range config.Options() {
		if !strings.HasPrefix(o.Property, toComplete) {
			continue
		}
		if o.Prefix {
			names = append(names, o.Property)
		} else {
			names = append(names, o.Property+"=")
		}
	}
	return names, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}
