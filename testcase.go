// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest

// TestCase is the unit of test logic executed by a [Runner].  A test
// case's Run is handed a fresh [Result] per execution and reports all
// assertion outcomes there; it must not retain the result beyond the
// call.
type TestCase interface {

	// Name identifies the test case in progress lines and failure
	// reports.
	Name() string

	// Run executes the test body against given result.
	Run(r *Result)
}

// Factory creates a fresh TestCase instance.  Runners register
// factories instead of instances so no test-case state survives across
// runs.
type Factory func() TestCase

// Func adapts a named function to the TestCase interface which is the
// common way to define a test case without a dedicated fixture type:
//
//	runner.Add(minitest.NewTest("value/numbers", func(r *minitest.Result) {
//	    minitest.Assert(r, 1+1 == 2, "1+1 == 2")
//	}))
type Func struct {
	name string
	run  func(*Result)
}

// NewTest returns a factory producing test cases with given name
// running given function.
func NewTest(name string, run func(*Result)) Factory {
	return func() TestCase { return &Func{name: name, run: run} }
}

// Name implements TestCase.
func (f *Func) Name() string { return f.name }

// Run implements TestCase.
func (f *Func) Run(r *Result) { f.run(r) }
