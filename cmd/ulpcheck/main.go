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

// Command ulpcheck measures the hwymath functions against an
// arbitrary-precision decimal oracle and reports every result that misses
// its ULP bound.
//
// Usage:
//
//	ulpcheck                          # full matrix at 128 bits
//	ulpcheck --func sin --func cos    # only sin and cos
//	ulpcheck --type f32 --type f64x4  # only these types
//	ulpcheck --arc-ulp 2.5            # relax the inverse-trig bound
//	ulpcheck --list                   # list functions and types
//
// The exit status is 0 when every measurement passes, 1 when any fails and
// 2 when the run itself could not complete.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

const (
	exitFailures = 1
	exitError    = 2
)

// exitCodeError carries the process exit status through cobra.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec *exitCodeError
	if errors.As(err, &ec) {
		if ec.err != nil {
			fmt.Fprintln(os.Stderr, "ulpcheck:", ec.err)
		}
		return ec.code
	}
	fmt.Fprintln(os.Stderr, "ulpcheck:", err)
	return exitError
}
