// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest_test

import (
	"strings"
	"testing"

	"github.com/whr4935/minitest"
)

func Test_assert_records_nothing_for_passing_expressions(t *testing.T) {
	t.Parallel()
	r := minitest.NewResult()
	minitest.Assert(r, 1+1 == 2, "1+1 == 2")
	if r.Failed() {
		t.Error("expected passing assertion to record no failure")
	}
}

func Test_assert_records_the_caller_s_location(t *testing.T) {
	t.Parallel()
	r := minitest.NewResult()
	minitest.Assert(r, 1 == 2, "1 == 2")
	ff := r.Failures()
	if len(ff) != 1 {
		t.Fatalf("expected exactly one failure; got %d", len(ff))
	}
	if ff[0].Expr != "1 == 2" {
		t.Errorf("expected expression %q; got %q", "1 == 2", ff[0].Expr)
	}
	if ff[0].File != "check_test.go" {
		t.Errorf("expected failure located in check_test.go; got %q",
			ff[0].File)
	}
	if ff[0].Line == 0 {
		t.Error("expected a non-zero failure line")
	}
}

func Test_check_equal_streams_expected_and_actual(t *testing.T) {
	t.Parallel()
	r := minitest.NewResult()
	minitest.CheckEqual(r, 42, 43, "answer == computed")
	ff := r.Failures()
	if len(ff) != 1 {
		t.Fatalf("expected exactly one failure; got %d", len(ff))
	}
	exp := "Expected: 42\nActual  : 43"
	if ff[0].Message != exp {
		t.Errorf("expected message %q; got %q", exp, ff[0].Message)
	}
}

func Test_check_equal_passes_on_equal_representations(t *testing.T) {
	t.Parallel()
	r := minitest.NewResult()
	minitest.CheckEqual(r, 42, 42, "answer == computed")
	minitest.CheckEqual(r, "abc", "abc", "a == b")
	if r.Failed() {
		t.Error("expected equal values to record no failure")
	}
}

func Test_check_string_equal_reports_quoted_operands_and_diff(
	t *testing.T,
) {
	t.Parallel()
	r := minitest.NewResult()
	minitest.CheckStringEqual(r, "a\nb", "a\nc", "want == got")
	ff := r.Failures()
	if len(ff) != 1 {
		t.Fatalf("expected exactly one failure; got %d", len(ff))
	}
	msg := ff[0].Message
	if !strings.Contains(msg, `Expected: "a\nb"`) {
		t.Errorf("expected JSON-quoted expected value in %q", msg)
	}
	if !strings.Contains(msg, `Actual  : "a\nc"`) {
		t.Errorf("expected JSON-quoted actual value in %q", msg)
	}
	// go-cmp's diff must point out the differing line
	if !strings.Contains(msg, "b") || !strings.Contains(msg, "c") {
		t.Errorf("expected a diff of both operands in %q", msg)
	}
}

func Test_strings_convert_to_json_literals(t *testing.T) {
	t.Parallel()
	for _, fx := range []struct{ in, exp string }{
		{"", `""`},
		{"plain", `"plain"`},
		{"a\"b", `"a\"b"`},
		{"a\nb\t", `"a\nb\t"`},
		{"a\\b", `"a\\b"`},
	} {
		if got := minitest.ToJSONString(fx.in); got != fx.exp {
			t.Errorf("expected %q to convert to %s; got %s",
				fx.in, fx.exp, got)
		}
	}
}

func Test_assert_panics_passes_on_panicking_function(t *testing.T) {
	t.Parallel()
	r := minitest.NewResult()
	minitest.AssertPanics(r, func() { panic("boom") }, `panic("boom")`)
	if r.Failed() {
		t.Error("expected panicking function to record no failure")
	}
}

func Test_assert_panics_fails_on_returning_function(t *testing.T) {
	t.Parallel()
	r := minitest.NewResult()
	minitest.AssertPanics(r, func() {}, "noop()")
	ff := r.Failures()
	if len(ff) != 1 {
		t.Fatalf("expected exactly one failure; got %d", len(ff))
	}
	if ff[0].Expr != "expected panic: noop()" {
		t.Errorf("unexpected expression %q", ff[0].Expr)
	}
}

// checkInterval is a composite assertion helper nesting a second
// predicate beneath the first.
func checkInterval(r *minitest.Result, low, high int) {
	defer r.Predicate("checkInterval(low, high)")()
	checkOrder(r, low, high)
}

func checkOrder(r *minitest.Result, low, high int) {
	defer r.Predicate("checkOrder(low, high)")()
	minitest.Assert(r, low <= high, "low <= high")
}

func Test_nested_predicates_report_the_whole_helper_chain(t *testing.T) {
	t.Parallel()
	r := minitest.NewResult()
	checkInterval(r, 9, 3)
	ff := r.Failures()
	if len(ff) != 3 {
		t.Fatalf("expected three failures; got %d", len(ff))
	}
	for i, exp := range []string{
		"checkInterval(low, high)", "checkOrder(low, high)", "low <= high",
	} {
		if ff[i].Expr != exp {
			t.Errorf("expected failure %d to report %q; got %q",
				i, exp, ff[i].Expr)
		}
		if ff[i].NestingLevel != i {
			t.Errorf("expected failure %d at nesting level %d; got %d",
				i, i, ff[i].NestingLevel)
		}
	}
	if !r.TailIsRoot() {
		t.Error("expected a balanced predicate stack after the helpers")
	}
}
