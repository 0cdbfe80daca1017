package accuracy

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/go-highway/hwymath/hwy/contrib/math/oracle"
)

// Failure is one measurement at or above its bound.
type Failure struct {
	Case  string
	Func  string
	Type  Type
	Args  []float64
	Got   float64
	Ref   oracle.Value
	ULP   float64
	Bound float64
}

func (f Failure) String() string {
	args := lo.Map(f.Args, func(a float64, _ int) string { return fmt.Sprintf("%v", a) })
	return fmt.Sprintf("%s<%s>(%s) = %v, reference %s: %.3g ULP (bound %g)",
		f.Func, f.Type, strings.Join(args, ", "), f.Got, f.Ref, f.ULP, f.Bound)
}

// TypeResult summarises one case at one type.
type TypeResult struct {
	Type      Type
	Checked   int
	Failed    int
	WorstULP  float64
	WorstArgs []float64
}

// CaseResult summarises one case across its types.
type CaseResult struct {
	Case     Case
	Types    []TypeResult
	Failures []Failure
}

// Checked returns the number of measurements made.
func (c CaseResult) Checked() int {
	return lo.SumBy(c.Types, func(t TypeResult) int { return t.Checked })
}

// WorstULP returns the largest measurement over all types. NaN dominates.
func (c CaseResult) WorstULP() float64 {
	if len(c.Types) == 0 {
		return 0
	}
	return lo.MaxBy(c.Types, func(a, b TypeResult) bool { return worse(a.WorstULP, b.WorstULP) }).WorstULP
}

// Passed reports whether every measurement stayed under the bound.
func (c CaseResult) Passed() bool { return len(c.Failures) == 0 }

// Report is the outcome of a Runner.Run.
type Report struct {
	Precision uint
	Dispatch  string
	Cases     []CaseResult
}

// Passed reports whether no case recorded a failure.
func (r *Report) Passed() bool {
	return lo.EveryBy(r.Cases, func(c CaseResult) bool { return c.Passed() })
}

// Checked returns the total number of measurements.
func (r *Report) Checked() int {
	return lo.SumBy(r.Cases, func(c CaseResult) int { return c.Checked() })
}

// Failures returns every failure in run order.
func (r *Report) Failures() []Failure {
	return lo.FlatMap(r.Cases, func(c CaseResult, _ int) []Failure { return c.Failures })
}

// FailuresByFunc groups failures by function name.
func (r *Report) FailuresByFunc() map[string][]Failure {
	return lo.GroupBy(r.Failures(), func(f Failure) string { return f.Func })
}

// WorstByFunc returns the largest measurement per function over all cases.
func (r *Report) WorstByFunc() map[string]float64 {
	byFunc := lo.GroupBy(r.Cases, func(c CaseResult) string { return c.Case.Func })
	return lo.MapValues(byFunc, func(cs []CaseResult, _ string) float64 {
		worst := 0.0
		for _, c := range cs {
			if u := c.WorstULP(); worse(u, worst) {
				worst = u
			}
		}
		return worst
	})
}

func (r *Report) String() string {
	var b strings.Builder
	for _, c := range r.Cases {
		status := "ok"
		if !c.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%-4s %-36s checked=%-5d failed=%-4d worst=%.3f bound=%g\n",
			status, c.Case.Name, c.Checked(), len(c.Failures), c.WorstULP(), c.Case.Bound)
	}
	fmt.Fprintf(&b, "%d measurements, %d failures", r.Checked(), len(r.Failures()))
	return b.String()
}
