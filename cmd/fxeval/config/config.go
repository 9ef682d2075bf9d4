// Package config holds the settings of the fxeval command.
// Values come from flags, FXEVAL_* environment variables and an optional
// fxeval.yaml file, in that order of priority.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/govalues/fixed/special"
)

const (
	// EnvPrefix is the prefix of environment variables, e.g. FXEVAL_PRECISION.
	EnvPrefix = "FXEVAL"
	// FileName is the name of the config file looked up in the working directory.
	FileName = "fxeval"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Precisions lists the supported numbers of fractional digits.
var Precisions = []int{0, 2, 4, 6, 8, 9, 10, 12, 14, 16, 18, 24, 30, 38}

var logLevels = []string{"debug", "info", "error", "none"}

// Config is the fxeval configuration.
// Workers is the number of goroutines used to build tables, 0 means one per CPU.
// DistOrder is the order of the exponential used by pcdf and pdf.
type Config struct {
	Precision int    `mapstructure:"precision" yaml:"precision"`
	LogLevel  string `mapstructure:"log-level" yaml:"log-level"`
	Output    string `mapstructure:"output" yaml:"output"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`
	ExpOrder  int    `mapstructure:"exp-order" yaml:"exp-order"`
	LnDepth   int    `mapstructure:"ln-depth" yaml:"ln-depth"`
	SqrtDepth int    `mapstructure:"sqrt-depth" yaml:"sqrt-depth"`
	DistOrder int    `mapstructure:"dist-order" yaml:"dist-order"`
	Start     string `mapstructure:"start" yaml:"start"`
	End       string `mapstructure:"end" yaml:"end"`
	Step      string `mapstructure:"step" yaml:"step"`
}

// DefaultConfig returns the configuration used when no file, environment
// variable or flag overrides a key.
func DefaultConfig() *Config {
	return &Config{
		Precision: 18,
		LogLevel:  "info",
		Output:    OutputText,
		Workers:   0,
		ExpOrder:  special.DefaultExpOrder,
		LnDepth:   special.DefaultLnDepth,
		SqrtDepth: special.DefaultSqrtDepth,
		DistOrder: special.DefaultPolynomialCDFExpOrder,
		Start:     "-5",
		End:       "5",
		Step:      "0.01",
	}
}

// Setup prepares v to read environment variables and the config file.
// An empty file means FileName in the working directory.
func Setup(v *viper.Viper, file string) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		return
	}
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
}

// Load reads the config file, if any, and returns the validated settings.
// Keys missing from v keep their default values.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on the precision.
func (c *Config) Validate() error {
	if !slices.Contains(Precisions, c.Precision) {
		return fmt.Errorf("precision %v is not supported, use one of %v", c.Precision, Precisions)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log level %q is not supported, use one of %v", c.LogLevel, logLevels)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output %q is not supported, use %q or %q", c.Output, OutputText, OutputJSON)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %v must not be negative", c.Workers)
	}
	iters := []struct {
		name string
		n    int
	}{
		{"exp-order", c.ExpOrder},
		{"ln-depth", c.LnDepth},
		{"sqrt-depth", c.SqrtDepth},
		{"dist-order", c.DistOrder},
	}
	for _, it := range iters {
		if it.n < 1 || it.n > special.MaxIterations {
			return fmt.Errorf("%v %v is outside of [1, %v]", it.name, it.n, special.MaxIterations)
		}
	}
	return nil
}
