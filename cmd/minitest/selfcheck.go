// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/whr4935/minitest"
)

// register adds the self-check suite to given runner exercising value
// rendering, the equality checkers, JSON quoting, panic assertion and
// predicate-wrapped helpers end to end.
func register(r *minitest.Runner) *minitest.Runner {
	r.Add(minitest.NewTest("render/booleans", func(r *minitest.Result) {
		minitest.CheckEqual(r, "true", minitest.Render(true),
			`Render(true) == "true"`)
		minitest.CheckEqual(r, "false", minitest.Render(false),
			`Render(false) == "false"`)
	}))
	r.Add(minitest.NewTest("render/integers", func(r *minitest.Result) {
		minitest.CheckEqual(r, "-42", minitest.Render(-42),
			`Render(-42) == "-42"`)
		minitest.CheckEqual(r, "18446744073709551615",
			minitest.Render(uint64(1<<64-1)),
			`Render(max uint64) is decimal`)
	}))
	r.Add(minitest.NewTest("render/floats", func(r *minitest.Result) {
		minitest.CheckEqual(r, "0.1", minitest.Render(0.1),
			`Render(0.1) == "0.1"`)
	}))
	r.Add(minitest.NewTest("strings/json", func(r *minitest.Result) {
		minitest.CheckStringEqual(r, `"a\nb"`,
			minitest.ToJSONString("a\nb"), "quoted == ToJSONString")
	}))
	r.Add(minitest.NewTest("assert/panics", func(r *minitest.Result) {
		minitest.AssertPanics(r, func() { panic("expected") },
			`panic("expected")`)
	}))
	r.Add(minitest.NewTest("predicate/balanced", func(r *minitest.Result) {
		checkPositive(r, 7)
		minitest.Assert(r, !r.Failed(), "!r.Failed()")
	}))
	r.Add(minitest.NewTest("errors/render", func(r *minitest.Result) {
		err := errors.New("some condition")
		minitest.CheckEqual(r, "some condition", minitest.Render(err),
			"Render(err) == err.Error()")
	}))
	return r
}

// checkPositive asserts x > 0 beneath its own predicate context.
func checkPositive(r *minitest.Result, x int) {
	defer r.Predicate("checkPositive(x)")()
	minitest.Assert(r, x > 0, "x > 0")
}
