package commands

import (
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var opts evalOptions
	cmd := &cobra.Command{
		Use:   "eval <function> <x>...",
		Short: "Evaluate a function at one or more points",
		Long: `Evaluate a function at one or more points.

With --table the function is sampled over [start, end) first and the
points are interpolated from the table. Outside of the table domain this
is an error, unless --clamp is given: then the CDF tables saturate to 0
and 1, the PDF table to 0 and the other tables return their edge samples.
Use -- before negative arguments.`,
		Example: `  fxeval eval exp 1 2.5
  fxeval eval --precision 10 --table cdf -- -1.12313512
  fxeval eval pow --exponent 0.5 2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(a.cfg, a.logger)
			if err != nil {
				return err
			}
			return s.eval(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.table, "table", false, "interpolate from a table built over [start, end)")
	cmd.Flags().BoolVar(&opts.clamp, "clamp", false, "use the table bounds outside of the table domain")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "interpolate from a table file written by the table command")
	cmd.Flags().StringVar(&opts.exponent, "exponent", "", "exponent of pow")
	return cmd
}
