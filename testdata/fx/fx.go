// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides test-case fixtures for minitest's own tests.
package fx

import "github.com/whr4935/minitest"

// Passing returns a factory for a test case with given name whose body
// records no failure.
func Passing(name string) minitest.Factory {
	return minitest.NewTest(name, func(r *minitest.Result) {})
}

// Failing returns a factory for a test case with given name asserting
// 1 == 2.
func Failing(name string) minitest.Factory {
	return minitest.NewTest(name, func(r *minitest.Result) {
		minitest.Assert(r, 1 == 2, "1 == 2")
	})
}

// checkRange asserts x < 10 beneath a "checkRange(x)" predicate
// context.
func checkRange(r *minitest.Result, x int) {
	defer r.Predicate("checkRange(x)")()
	minitest.Assert(r, x < 10, "x < 10")
}

// NestedPredicate returns a factory for a test case with given name
// running a predicate-wrapped range check against given value, i.e.
// failing for x >= 10 with a two-level failure chain.
func NestedPredicate(name string, x int) minitest.Factory {
	return minitest.NewTest(name, func(r *minitest.Result) {
		checkRange(r, x)
	})
}

// Panicking returns a factory for a test case with given name whose
// body panics with given value.
func Panicking(name string, value interface{}) minitest.Factory {
	return minitest.NewTest(name, func(r *minitest.Result) {
		panic(value)
	})
}
