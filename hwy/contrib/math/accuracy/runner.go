// Package accuracy measures the functions of package math against an
// arbitrary-precision oracle, in units in the last place.
//
// A run sweeps a list of Cases. Each Case names a function, the types to
// check it at and a matrix of argument axes. Every argument is first
// rounded to the tested precision; the oracle is evaluated at the rounded
// argument and the function's result is measured against it. Vector types
// broadcast the argument to all lanes and keep the worst lane.
//
// Failures are collected, never fatal. Run returns an error only when the
// oracle itself fails or the context ends.
package accuracy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-highway/hwymath/hwy"
	hwymath "github.com/go-highway/hwymath/hwy/contrib/math"
	"github.com/go-highway/hwymath/hwy/contrib/math/oracle"
	"github.com/go-highway/hwymath/hwy/contrib/workerpool"
)

// ErrInvalidCase is returned for a case whose function is unknown or whose
// axis count does not match the function's arity.
var ErrInvalidCase = errors.New("accuracy: invalid case")

// Runner executes accuracy cases against an oracle.
type Runner struct {
	Oracle    oracle.Oracle
	Precision uint
	Logger    *slog.Logger
	Tolerance Tolerance
	// Workers is the number of concurrent oracle evaluations; zero or less
	// means GOMAXPROCS. Results do not depend on it.
	Workers int
}

// Option configures a Runner.
type Option func(*Runner)

// WithPrecision sets the oracle working precision in bits.
func WithPrecision(bits uint) Option {
	return func(r *Runner) { r.Precision = bits }
}

// WithLogger sets the logger. Case summaries are logged at Info, per-type
// detail at Debug and failures at Warn.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.Logger = l }
}

// WithTolerance sets the tolerance used for the default cases.
func WithTolerance(tol Tolerance) Option {
	return func(r *Runner) { r.Tolerance = tol }
}

// WithWorkers sets the number of concurrent oracle evaluations. Zero or
// less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.Workers = n }
}

// NewRunner returns a Runner over o with the given options applied.
func NewRunner(o oracle.Oracle, opts ...Option) *Runner {
	r := &Runner{
		Oracle:    o,
		Precision: oracle.DefaultPrecision,
		Logger:    oracle.Logger(),
		Tolerance: DefaultTolerance,
		Workers:   1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run sweeps cases, or DefaultCases(r.Tolerance) when cases is nil. The
// oracle precision scope is held for the whole run and released on return.
// On error the partial report is returned alongside it.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	if cases == nil {
		cases = DefaultCases(r.Tolerance)
	}
	logger := r.Logger
	if logger == nil {
		logger = oracle.Logger()
	}
	pool := workerpool.New(r.Workers)
	defer pool.Close()

	scope := r.Oracle.Acquire(r.Precision)
	defer scope.Release()

	report := &Report{Precision: scope.Precision(), Dispatch: hwy.CurrentName()}
	logger.Info("accuracy run started",
		"cases", len(cases), "precision", report.Precision, "dispatch", report.Dispatch)

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res, err := r.runCase(ctx, logger, pool, scope, c)
		if err != nil {
			return report, fmt.Errorf("accuracy: case %q: %w", c.Name, err)
		}
		report.Cases = append(report.Cases, res)
		logger.Info("case finished", "case", c.Name, "checked", res.Checked(),
			"failed", len(res.Failures), "worst_ulp", res.WorstULP(), "bound", c.Bound)
	}
	logger.Info("accuracy run finished", "checked", report.Checked(), "failed", len(report.Failures()))
	return report, nil
}

func (r *Runner) runCase(ctx context.Context, logger *slog.Logger, pool *workerpool.Pool, scope oracle.Scope, c Case) (CaseResult, error) {
	f, ok := hwymath.Lookup(c.Func)
	if !ok {
		return CaseResult{}, fmt.Errorf("%w: unknown function %q", ErrInvalidCase, c.Func)
	}
	if len(c.Axes) != f.Arity {
		return CaseResult{}, fmt.Errorf("%w: %s takes %d argument(s), case has %d axes", ErrInvalidCase, f.Name, f.Arity, len(c.Axes))
	}

	points := c.Points()
	refs := map[int][]oracle.Value{}
	for _, t := range c.Types {
		if _, done := refs[t.Bits]; done {
			continue
		}
		vals, err := references(ctx, pool, scope, f.Name, t, points)
		if err != nil {
			return CaseResult{}, err
		}
		refs[t.Bits] = vals
	}

	res := CaseResult{Case: c}
	for _, t := range c.Types {
		tr := TypeResult{Type: t}
		next := 0
		err := Matrix(c.Axes, func(p []float64) error {
			ref := refs[t.Bits][next]
			next++
			args := t.Round(p)
			u, got := measure(f, t, args, ref)
			tr.Checked++
			if tr.Checked == 1 || worse(u, tr.WorstULP) {
				tr.WorstULP, tr.WorstArgs = u, args
			}
			if !Passing(u, c.Bound) {
				tr.Failed++
				fail := Failure{
					Case: c.Name, Func: f.Name, Type: t, Args: args,
					Got: got, Ref: ref, ULP: u, Bound: c.Bound,
				}
				res.Failures = append(res.Failures, fail)
				logger.Warn("accuracy failure", "case", c.Name, "detail", fail.String())
			}
			return ctx.Err()
		})
		if err != nil {
			return res, err
		}
		logger.Debug("type finished", "case", c.Name, "type", t.Name,
			"checked", tr.Checked, "failed", tr.Failed, "worst_ulp", tr.WorstULP)
		res.Types = append(res.Types, tr)
	}
	return res, nil
}

// references evaluates the oracle at every point rounded to t's precision.
func references(ctx context.Context, pool *workerpool.Pool, scope oracle.Scope, fn string, t Type, points [][]float64) ([]oracle.Value, error) {
	refs := make([]oracle.Value, len(points))
	err := pool.ForEach(ctx, len(points), func(_ context.Context, i int) error {
		v, err := scope.Eval(fn, t.Round(points[i])...)
		if err != nil {
			return err
		}
		refs[i] = v
		return nil
	})
	return refs, err
}

// measure evaluates f at args with type t and returns the ULP error and
// the measured value (the worst lane for vectors).
func measure(f hwymath.Func, t Type, args []float64, ref oracle.Value) (ulp, got float64) {
	if t.Bits == 32 {
		return measureAt[float32](f, t.Width, args, ref)
	}
	return measureAt[float64](f, t.Width, args, ref)
}

func measureAt[T hwy.Floats](f hwymath.Func, w hwy.Width, args []float64, ref oracle.Value) (float64, float64) {
	in := make([]T, len(args))
	for i, a := range args {
		in[i] = T(a)
	}
	if w == 0 {
		got := hwymath.Apply(f, in...)
		return ULP(got, ref), float64(got)
	}
	vs := make([]hwy.Vec[T], len(in))
	for i, a := range in {
		vs[i] = hwy.SetN(w, a)
	}
	out := hwymath.ApplyVec(f, vs...)
	u, lane := LanesULP(out, ref)
	return u, float64(out.Lane(lane))
}

// Passing reports whether u is strictly under bound. NaN never passes.
func Passing(u, bound float64) bool {
	return !math.IsNaN(u) && u < bound
}
