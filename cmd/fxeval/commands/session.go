package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/govalues/fixed"
	"github.com/govalues/fixed/cmd/fxeval/config"
	"github.com/govalues/fixed/special"
	"github.com/govalues/fixed/table"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Functions lists the function names accepted by eval and table.
var Functions = []string{"exp", "ln", "sqrt", "cdf", "pcdf", "pdf", "pow"}

// evalOptions are the flags of the eval command.
type evalOptions struct {
	table    bool
	clamp    bool
	snapshot string
	exponent string
}

// result is one evaluated point.
type result[P fixed.Precision] struct {
	Function string         `json:"function"`
	X        fixed.Fixed[P] `json:"x"`
	Y        fixed.Fixed[P] `json:"y"`
}

// snapshotFile is the file format written by the table command.
type snapshotFile[P fixed.Precision] struct {
	Function  string            `json:"function"`
	Precision int               `json:"precision"`
	Exponent  string            `json:"exponent,omitempty"`
	Table     table.Snapshot[P] `json:"table"`
}

// session runs the commands at a fixed precision.
type session interface {
	eval(ctx context.Context, w io.Writer, name string, args []string, opts evalOptions) error
	tabulate(ctx context.Context, w io.Writer, name, exponent string) error
}

func newSession(cfg *config.Config, logger log.Logger) (session, error) {
	switch cfg.Precision {
	case 0:
		return &runner[fixed.P0]{cfg: cfg, logger: logger}, nil
	case 2:
		return &runner[fixed.P2]{cfg: cfg, logger: logger}, nil
	case 4:
		return &runner[fixed.P4]{cfg: cfg, logger: logger}, nil
	case 6:
		return &runner[fixed.P6]{cfg: cfg, logger: logger}, nil
	case 8:
		return &runner[fixed.P8]{cfg: cfg, logger: logger}, nil
	case 9:
		return &runner[fixed.P9]{cfg: cfg, logger: logger}, nil
	case 10:
		return &runner[fixed.P10]{cfg: cfg, logger: logger}, nil
	case 12:
		return &runner[fixed.P12]{cfg: cfg, logger: logger}, nil
	case 14:
		return &runner[fixed.P14]{cfg: cfg, logger: logger}, nil
	case 16:
		return &runner[fixed.P16]{cfg: cfg, logger: logger}, nil
	case 18:
		return &runner[fixed.P18]{cfg: cfg, logger: logger}, nil
	case 24:
		return &runner[fixed.P24]{cfg: cfg, logger: logger}, nil
	case 30:
		return &runner[fixed.P30]{cfg: cfg, logger: logger}, nil
	case 38:
		return &runner[fixed.P38]{cfg: cfg, logger: logger}, nil
	}
	return nil, fmt.Errorf("precision %v is not supported", cfg.Precision)
}

type runner[P fixed.Precision] struct {
	cfg    *config.Config
	logger log.Logger
}

// function returns the named function and the bounds of its tables.
func (r *runner[P]) function(name, exponent string) (special.Function[P], table.Bounds[P], error) {
	var (
		f      special.Function[P]
		bounds = table.EdgeSamples[P]()
		err    error
	)
	switch name {
	case "exp":
		f, err = special.NewExp[P](r.cfg.ExpOrder)
	case "ln":
		f, err = special.NewLn[P](r.cfg.LnDepth)
	case "sqrt":
		f, err = special.NewSqrt[P](r.cfg.SqrtDepth)
	case "cdf":
		f, err = special.NewRationalCDF[P](r.cfg.ExpOrder)
		bounds = special.CDFBounds[P]()
	case "pcdf":
		f, err = special.NewPolynomialCDF[P](r.cfg.DistOrder)
		bounds = special.CDFBounds[P]()
	case "pdf":
		f, err = special.NewPDF[P](r.cfg.SqrtDepth, r.cfg.DistOrder)
		bounds = special.PDFBounds[P]()
	case "pow":
		if exponent == "" {
			return nil, table.Bounds[P]{}, fmt.Errorf("pow requires --exponent")
		}
		var y fixed.Fixed[P]
		y, err = fixed.Parse[P](exponent)
		if err != nil {
			return nil, table.Bounds[P]{}, fmt.Errorf("exponent: %w", err)
		}
		var pow *special.Pow[P]
		pow, err = special.NewPow[P](r.cfg.LnDepth, r.cfg.ExpOrder)
		if err == nil {
			f = pow.WithExponent(y)
		}
	default:
		return nil, table.Bounds[P]{}, fmt.Errorf("unknown function %q, use one of %v", name, Functions)
	}
	if err != nil {
		return nil, table.Bounds[P]{}, err
	}
	return f, bounds, nil
}

// build samples f over the configured table domain.
func (r *runner[P]) build(ctx context.Context, name string, f special.Function[P], bounds table.Bounds[P]) (*special.Tabulated[P], error) {
	start, err := fixed.Parse[P](r.cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := fixed.Parse[P](r.cfg.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	step, err := fixed.Parse[P](r.cfg.Step)
	if err != nil {
		return nil, fmt.Errorf("step: %w", err)
	}
	workers := r.cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	r.logger.Info("building table", "function", name, "start", start, "end", end, "step", step, "workers", workers)
	began := time.Now()
	tab, err := special.NewTabulatedConcurrent(ctx, f, start, end, step, bounds, workers)
	if err != nil {
		return nil, fmt.Errorf("building %v table: %w", name, err)
	}
	r.logger.Info("table built", "function", name, "samples", tab.Table().Len(), "elapsed", time.Since(began))
	return tab, nil
}

// restore reads a table written by the table command.
func (r *runner[P]) restore(path, name, exponent string, bounds table.Bounds[P]) (*special.Tabulated[P], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s snapshotFile[P]
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding %v: %w", path, err)
	}
	if s.Function != name {
		return nil, fmt.Errorf("%v holds a %v table, not %v", path, s.Function, name)
	}
	if name == "pow" && s.Exponent != exponent {
		return nil, fmt.Errorf("%v holds a table of x^%v, not x^%v", path, s.Exponent, exponent)
	}
	if s.Precision != r.cfg.Precision {
		return nil, fmt.Errorf("%v holds a table with precision %v, not %v", path, s.Precision, r.cfg.Precision)
	}
	t, err := table.FromSnapshot(s.Table)
	if err != nil {
		return nil, fmt.Errorf("restoring %v: %w", path, err)
	}
	r.logger.Debug("table restored", "file", path, "function", name, "samples", t.Len())
	return special.FromTable(t, bounds), nil
}

func (r *runner[P]) eval(ctx context.Context, w io.Writer, name string, args []string, opts evalOptions) error {
	f, bounds, err := r.function(name, opts.exponent)
	if err != nil {
		return err
	}

	var tab *special.Tabulated[P]
	switch {
	case opts.snapshot != "":
		tab, err = r.restore(opts.snapshot, name, opts.exponent, bounds)
	case opts.table:
		tab, err = r.build(ctx, name, f, bounds)
	case opts.clamp:
		return fmt.Errorf("--clamp requires --table or --snapshot")
	}
	if err != nil {
		return err
	}

	evalf := f.Eval
	if tab != nil {
		evalf = tab.Eval
		if opts.clamp {
			evalf = func(x fixed.Fixed[P]) (fixed.Fixed[P], error) {
				return tab.Table().LookupBounded(x, bounds)
			}
		}
	}

	results := make([]result[P], 0, len(args))
	for _, arg := range args {
		x, err := fixed.Parse[P](arg)
		if err != nil {
			return err
		}
		y, err := evalf(x)
		if err != nil {
			return err
		}
		results = append(results, result[P]{Function: name, X: x, Y: y})
	}

	if r.cfg.Output == config.OutputJSON {
		return json.NewEncoder(w).Encode(results)
	}
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%v(%v) = %v\n", res.Function, res.X, res.Y); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner[P]) tabulate(ctx context.Context, w io.Writer, name, exponent string) error {
	f, bounds, err := r.function(name, exponent)
	if err != nil {
		return err
	}
	tab, err := r.build(ctx, name, f, bounds)
	if err != nil {
		return err
	}
	s := snapshotFile[P]{
		Function:  name,
		Precision: r.cfg.Precision,
		Table:     tab.Table().Snapshot(),
	}
	if name == "pow" {
		s.Exponent = exponent
	}
	return json.NewEncoder(w).Encode(s)
}
