// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"
)

// Runner owns the registered test-case factories and executes them
// strictly sequentially in registration order, each against a fresh
// [Result].  Failing results are collected and detailed after all
// tests ran so the per-test progress output stays readable.
type Runner struct {
	tests  []Factory
	out    io.Writer
	errOut io.Writer
}

// NewRunner returns a runner reporting progress and failure detail to
// stdout and usage errors to stderr.
func NewRunner() *Runner {
	return &Runner{out: os.Stdout, errOut: os.Stderr}
}

// SetOut replaces the writer progress lines, failure detail and the
// summary go to; leveraged by the runner's own tests.  Returned is the
// runner for chaining.
func (r *Runner) SetOut(w io.Writer) *Runner {
	r.out = w
	return r
}

// SetErr replaces the writer usage errors go to.  Returned is the
// runner for chaining.
func (r *Runner) SetErr(w io.Writer) *Runner {
	r.errOut = w
	return r
}

// Add registers given test-case factory and returns the runner for
// chaining.
func (r *Runner) Add(f Factory) *Runner {
	r.tests = append(r.tests, f)
	return r
}

// TestCount returns the number of registered test cases.
func (r *Runner) TestCount() int { return len(r.tests) }

// TestNameAt returns the name of the test case at given index.
func (r *Runner) TestNameAt(idx int) string { return r.tests[idx]().Name() }

// RunTestAt runs the test case at given index against given result,
// printing its "Testing <name>: OK|FAILED" progress line.  The line's
// prefix is written and flushed before the body runs so it is visible
// even if the test hangs.  A panicking test body is recovered into a
// single synthetic failure instead of taking down the whole run.
func (r *Runner) RunTestAt(idx int, result *Result) {
	test := r.tests[idx]()
	result.SetTestName(test.Name())
	fmt.Fprintf(r.out, "Testing %s: ", test.Name())
	r.flush()
	runProtected(test, result)
	status := "OK"
	if result.Failed() {
		status = "FAILED"
	}
	fmt.Fprintf(r.out, "%s\n", status)
	r.flush()
}

// runProtected recovers a panicking test body into a failure carrying
// the panic's description.
func runProtected(test TestCase, result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result.AddFailure("", 0, "Unexpected panic caught:").
				Append(rec)
		}
	}()
	test.Run(result)
}

// RunAllTests runs every registered test case; failing results are
// detailed after the run, with test-name headers iff more than one
// test ran.  If printSummary is set an aggregate "All <N> tests
// passed" respectively "<P>/<N> tests passed (<F> failure(s))" line
// concludes the report.  Returned is true iff all tests passed.
func (r *Runner) RunAllTests(printSummary bool) bool {
	count := r.TestCount()
	var failures []*Result
	for idx := 0; idx < count; idx++ {
		result := NewResult()
		r.RunTestAt(idx, result)
		if result.Failed() {
			failures = append(failures, result)
		}
	}

	if len(failures) == 0 {
		if printSummary {
			fmt.Fprintf(r.out, "All %d tests passed\n", count)
		}
		return true
	}

	for _, result := range failures {
		result.WriteFailure(r.out, count > 1)
	}
	if printSummary {
		failed := len(failures)
		fmt.Fprintf(r.out, "%d/%d tests passed (%d failure(s))\n",
			count-failed, count, failed)
	}
	return false
}

// RunCommandLine interprets given command-line arguments, args[0]
// being the invoked executable's name:
//
//   - no further arguments: run all registered tests,
//   - "--list-tests": print the registered test names and exit,
//   - "--test TESTNAME": run exactly the named test; may be repeated.
//
// Unrecognized invocations print the usage to the error writer.
// Returned is the process exit status: 0 iff the selected tests
// passed, 1 on test failure, 2 on a usage error.
func (r *Runner) RunCommandLine(args []string) int {
	if len(args) == 0 {
		PrintUsage(r.errOut, "minitest")
		return 2
	}
	selected := &Runner{out: r.out, errOut: r.errOut}
	for idx := 1; idx < len(args); idx++ {
		switch args[idx] {
		case "--list-tests":
			r.listTests()
			return 0
		case "--test":
			idx++
			if idx >= len(args) {
				PrintUsage(r.errOut, args[0])
				return 2
			}
			testIdx, ok := r.testIndex(args[idx])
			if !ok {
				fmt.Fprintf(r.errOut,
					"Test '%s' does not exist!\n", args[idx])
				return 2
			}
			selected.Add(r.tests[testIdx])
		default:
			PrintUsage(r.errOut, args[0])
			return 2
		}
	}
	runner := r
	printSummary := true
	if selected.TestCount() > 0 {
		runner = selected
		printSummary = selected.TestCount() > 1
	}
	if runner.RunAllTests(printSummary) {
		return 0
	}
	return 1
}

// listTests prints all registered test-case names in registration
// order.
func (r *Runner) listTests() {
	for idx := 0; idx < r.TestCount(); idx++ {
		fmt.Fprintln(r.out, r.TestNameAt(idx))
	}
}

// testIndex returns the index of the test case with given name.
func (r *Runner) testIndex(name string) (int, bool) {
	idx := slices.IndexFunc(r.tests, func(f Factory) bool {
		return f().Name() == name
	})
	return idx, idx >= 0
}

// flusher is implemented by buffering writers, e.g. bufio.Writer.
type flusher interface{ Flush() error }

// flush forces out a buffering output writer so progress lines are
// visible before a potentially hanging test body runs.
func (r *Runner) flush() {
	if f, ok := r.out.(flusher); ok {
		f.Flush()
	}
}

// PrintUsage writes the command-line usage of a minitest driver for
// given application name to given writer.
func PrintUsage(w io.Writer, appName string) {
	fmt.Fprintf(w, "Usage: %s [options]\n"+
		"\n"+
		"If --test is not specified, then all the test cases are run.\n"+
		"\n"+
		"Valid options:\n"+
		"--list-tests: print the name of all test cases on the standard\n"+
		"              output and exit.\n"+
		"--test TESTNAME: executes the test case with the specified name.\n"+
		"                 May be repeated.\n", appName)
}
