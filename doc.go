// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package minitest is a minimal unit-testing framework whose assertion
path never panics: assertions record failures on a [Result] and the
test body keeps running, so a single test may report several
independent problems.  Its distinguishing feature is the predicate
stack which reconstructs a callstack-like trace of nested assertion
helpers without relying on stack unwinding.

A test case is anything implementing [TestCase]; most of the time the
[NewTest] adapter suffices.  Test cases are registered as factories
with a [Runner] which executes them strictly sequentially, each against
a fresh [Result]:

	runner := minitest.NewRunner()
	runner.Add(minitest.NewTest("value/numbers", func(r *minitest.Result) {
	    minitest.Assert(r, 1+1 == 2, "1+1 == 2")
	}))
	os.Exit(runner.RunCommandLine(os.Args))

Assertion helpers composing other assertions wrap themselves in a
predicate context so a failure deep inside reports the whole chain of
helper calls leading to it:

	func checkRange(r *minitest.Result, x int) {
	    defer r.Predicate("checkRange(x)")()
	    minitest.Assert(r, 0 <= x, "0 <= x")
	    minitest.Assert(r, x < 10, "x < 10")
	}

If x is 12 the failure report shows the checkRange call at nesting
level 0 and the failed range check indented beneath it.  The deferred
pop keeps the predicate stack balanced on every exit path which is a
hard requirement of the push/pop contract.

Diagnostic text is streamed onto the most recent failure through
[Result.Append] whose rendering rules are deterministic, notably
round-trip safe for floating-point values; see [Render].

Test execution is single-threaded and synchronous: no parallelism, no
isolation, no timeouts.  A panicking test body is recovered by the
runner into a single synthetic failure so one misbehaving test doesn't
take down the whole suite.
*/
package minitest
