package oascan

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/oascan/pkg/errors"
	"github.com/arthur-debert/oascan/pkg/logging"
	"github.com/arthur-debert/oascan/pkg/pattern"
	"github.com/arthur-debert/oascan/pkg/ui/display"
)

func newPatternCmd(opts *rootOptions) *cobra.Command {
	var builtin string

	cmd := &cobra.Command{
		Use:     "pattern <value> [candidate...]",
		Short:   MsgPatternShort,
		Long:    MsgPatternLong,
		Example: MsgPatternExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.pattern")

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			engine, err := pattern.ParseEngine(opts.engine)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --engine")
			}

			raw, candidates := args[0], args[1:]
			builtIns := pattern.CSVToSet(builtin)

			p, err := pattern.Compile(raw, builtIns, pattern.WithEngine(engine))
			if err != nil {
				return err
			}

			result := display.NewPatternResult(raw, builtIns.Sorted(), p, candidates)
			logger.Debug().
				Str("mode", result.Mode).
				Str("source", result.Source).
				Int("matched", result.MatchedCount()).
				Int("candidates", len(candidates)).
				Msg(MsgPatternShort)
			return r.RenderResult(result)
		},
	}
	cmd.Flags().StringVar(&builtin, "builtin", "", MsgFlagBuiltin)
	return cmd
}
