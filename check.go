// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Assert records a failure for given expression at the caller's
// location iff ok is false.  Assertions never abort the running test
// case; a single run may report several independent problems.
// Returned is the result for message chaining:
//
//	minitest.Assert(r, x == y, "x == y").
//	    Append("x=").Append(x).Append(", y=").Append(y)
func Assert(r *Result, ok bool, expr string) *Result {
	if ok {
		return r
	}
	file, line := caller(1)
	return r.AddFailure(file, line, expr)
}

// CheckEqual records a failure for given expression at the caller's
// location iff the diagnostic-text representations (see [Render]) of
// expected and actual differ, streaming both values into the failure's
// message.
func CheckEqual(
	r *Result, expected, actual interface{}, expr string,
) *Result {
	if Render(expected) == Render(actual) {
		return r
	}
	file, line := caller(1)
	r.AddFailure(file, line, expr)
	r.Append("Expected: ").Append(expected).Append("\n")
	r.Append("Actual  : ").Append(actual)
	return r
}

// CheckStringEqual records a failure for given expression at the
// caller's location iff expected and actual differ, streaming both
// strings JSON-quoted (see [ToJSONString]) plus a line-based diff of
// the two into the failure's message.
func CheckStringEqual(
	r *Result, expected, actual string, expr string,
) *Result {
	if expected == actual {
		return r
	}
	file, line := caller(1)
	r.AddFailure(file, line, expr)
	r.Append("Expected: ").Append(ToJSONString(expected)).Append("\n")
	r.Append("Actual  : ").Append(ToJSONString(actual)).Append("\n")
	r.Append(cmp.Diff(expected, actual))
	return r
}

// ToJSONString converts given string into its JSON string-literal
// representation including the enclosing quotes.
func ToJSONString(s string) string {
	bb, err := json.Marshal(s)
	if err != nil { // a plain string always marshals
		return fmt.Sprintf("%q", s)
	}
	return string(bb)
}

// AssertPanics records a failure for given expression at the caller's
// location iff given function returns without panicking.
func AssertPanics(r *Result, f func(), expr string) *Result {
	file, line := caller(1)
	panicked := func() (panicked bool) {
		defer func() {
			if rec := recover(); rec != nil {
				panicked = true
			}
		}()
		f()
		return false
	}()
	if !panicked {
		r.AddFailure(file, line, "expected panic: "+expr)
	}
	return r
}
