// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-highway/hwymath/hwy"
	hwymath "github.com/go-highway/hwymath/hwy/contrib/math"
	"github.com/go-highway/hwymath/hwy/contrib/math/accuracy"
	"github.com/go-highway/hwymath/hwy/contrib/math/oracle"
)

type options struct {
	precision uint
	arcULP    float64
	tanULP    float64
	funcs     []string
	types     []string
	workers   int
	verbose   bool
	list      bool
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.UintVar(&o.precision, "precision", oracle.DefaultPrecision, "oracle working precision in bits")
	fs.Float64Var(&o.arcULP, "arc-ulp", accuracy.DefaultTolerance.Arc, "ULP bound for asin, acos, atan and atan2")
	fs.Float64Var(&o.tanULP, "tan-ulp", accuracy.DefaultTolerance.TanWide, "ULP bound for f32 tan over [-100, 100)")
	fs.StringSliceVar(&o.funcs, "func", nil, "only check these functions (repeatable)")
	fs.StringSliceVar(&o.types, "type", nil, "only check these types (repeatable)")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "concurrent oracle evaluations")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log per-type detail")
	fs.BoolVar(&o.list, "list", false, "list functions and types, then exit")
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "ulpcheck",
		Short:         "Measure hwymath accuracy against an arbitrary-precision oracle",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.list {
				printList(cmd.OutOrStdout())
				return nil
			}
			return run(cmd, opts)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func printList(w io.Writer) {
	fmt.Fprintln(w, "functions:", strings.Join(hwymath.Names(), " "))
	names := make([]string, len(accuracy.AllTypes))
	for i, t := range accuracy.AllTypes {
		names[i] = t.Name
	}
	fmt.Fprintln(w, "types:    ", strings.Join(names, " "))
}

// selectCases filters the default matrix by function and type.
func selectCases(opts *options) ([]accuracy.Case, error) {
	for _, fn := range opts.funcs {
		if _, ok := hwymath.Lookup(fn); !ok {
			return nil, fmt.Errorf("unknown function %q (have %s)", fn, strings.Join(hwymath.Names(), ", "))
		}
	}
	var types []accuracy.Type
	for _, name := range opts.types {
		t, err := accuracy.ParseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	all := accuracy.DefaultCases(accuracy.Tolerance{Arc: opts.arcULP, TanWide: opts.tanULP})
	var selected []accuracy.Case
	for _, c := range all {
		if len(opts.funcs) > 0 && !slices.Contains(opts.funcs, c.Func) {
			continue
		}
		if len(types) > 0 {
			c.Types = slices.DeleteFunc(slices.Clone(c.Types), func(t accuracy.Type) bool {
				return !slices.Contains(types, t)
			})
		}
		if len(c.Types) > 0 {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no cases match the selected functions and types")
	}
	return selected, nil
}

func run(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	oracle.SetLogger(logger)
	defer oracle.SetLogger(nil)

	selected, err := selectCases(opts)
	if err != nil {
		return &exitCodeError{code: exitError, err: err}
	}

	fmt.Fprintf(out, "hwymath on %s, oracle precision %d bits\n", hwy.Describe(), opts.precision)

	runner := accuracy.NewRunner(oracle.NewDecimal(),
		accuracy.WithPrecision(opts.precision),
		accuracy.WithLogger(logger),
		accuracy.WithWorkers(opts.workers),
	)
	report, err := runner.Run(cmd.Context(), selected)
	if report != nil {
		printReport(out, report)
	}
	if err != nil {
		return &exitCodeError{code: exitError, err: err}
	}
	if !report.Passed() {
		return &exitCodeError{code: exitFailures}
	}
	return nil
}

func printReport(w io.Writer, report *accuracy.Report) {
	title := cases.Title(language.English)
	current := ""
	for _, c := range report.Cases {
		if c.Case.Func != current {
			current = c.Case.Func
			fmt.Fprintf(w, "\n%s\n", title.String(current))
		}
		status := "ok"
		if !c.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %-4s %-32s checked=%-5d worst=%.3f ULP (bound %g)\n",
			status, c.Case.Name, c.Checked(), c.WorstULP(), c.Case.Bound)
		for _, tr := range c.Types {
			if tr.Failed > 0 {
				fmt.Fprintf(w, "       %-7s %d of %d failed, worst %.3f ULP at %v\n",
					tr.Type, tr.Failed, tr.Checked, tr.WorstULP, tr.WorstArgs)
			}
		}
	}

	failures := report.Failures()
	if len(failures) > 0 {
		fmt.Fprintf(w, "\nFailures\n")
		for _, f := range failures {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	fmt.Fprintf(w, "\n%d measurements, %d failures\n", report.Checked(), len(failures))
}
