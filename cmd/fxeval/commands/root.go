// Package commands implements the fxeval command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/govalues/fixed/cmd/fxeval/config"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  log.Logger
}

// NewRootCmd returns the fxeval command with all of its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: log.NewNopLogger()}
	def := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "fxeval",
		Short: "Evaluate fixed-point special functions and lookup tables",
		Long: `fxeval evaluates exp, ln, sqrt, the normal CDF and PDF and powers
on fixed-point numbers with a chosen number of fractional digits.
Results are bit-for-bit reproducible on every platform.

Functions:
  exp   - e^x
  ln    - natural logarithm
  sqrt  - square root
  cdf   - normal CDF, logistic approximation
  pcdf  - normal CDF, polynomial approximation
  pdf   - normal PDF
  pow   - x^y, see --exponent`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./fxeval.yaml)")
	flags.Int("precision", def.Precision, fmt.Sprintf("number of fractional digits, one of %v", config.Precisions))
	flags.String("log-level", def.LogLevel, "log level: debug, info, error or none")
	flags.StringP("output", "o", def.Output, "output format: text or json")
	flags.Int("workers", def.Workers, "goroutines used to build tables, 0 means one per CPU")
	flags.Int("exp-order", def.ExpOrder, "order of the Taylor series of exp, also used by cdf and pow")
	flags.Int("ln-depth", def.LnDepth, "number of series terms of ln, also used by pow")
	flags.Int("sqrt-depth", def.SqrtDepth, "number of Newton iterations of sqrt, also used by pdf")
	flags.Int("dist-order", def.DistOrder, "order of the Taylor series of exp used by pcdf and pdf")
	flags.String("start", def.Start, "first grid point of a table")
	flags.String("end", def.End, "end of a table domain, exclusive")
	flags.String("step", def.Step, "distance between grid points of a table")

	cmd.AddCommand(
		newEvalCmd(a),
		newTableCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// load binds the flags, reads the configuration and sets up the logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	config.Setup(a.v, a.cfgFile)
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger := log.NewTMLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	opt, err := log.AllowLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = log.NewFilter(logger, opt).With("module", "fxeval")
	a.logger.Debug("config loaded", "file", a.v.ConfigFileUsed(), "precision", cfg.Precision)
	return nil
}
