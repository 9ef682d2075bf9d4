package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		out      string
		exponent string
	)
	cmd := &cobra.Command{
		Use:   "table <function>",
		Short: "Sample a function over [start, end) and write the table as JSON",
		Example: `  fxeval table --start=-5 --end=5 --step=0.01 cdf --out cdf.json
  fxeval eval --snapshot cdf.json cdf 1.96`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(a.cfg, a.logger)
			if err != nil {
				return err
			}
			if out == "" {
				return s.tabulate(cmd.Context(), cmd.OutOrStdout(), args[0], exponent)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := s.tabulate(cmd.Context(), f, args[0], exponent); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %v: %w", out, err)
			}
			a.logger.Info("table written", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default: standard output)")
	cmd.Flags().StringVar(&exponent, "exponent", "", "exponent of pow")
	return cmd
}
