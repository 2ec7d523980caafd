// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Result accumulates the failures of one test-case execution.  A
// Result instance is created fresh for each run (see
// [Runner.RunTestAt]) and read afterwards through [Result.Failed] and
// [Result.WriteFailure].  Assertions never abort the test body; they
// record Failure instances instead, so a single run may report several
// independent problems.
//
// A Result also maintains the predicate stack which turns into a
// pseudo-callstack of predicate-wrapped assertion helpers whenever an
// assertion beneath them fails; see [Result.Predicate].  A Result must
// not be copied after first use since its predicate stack is rooted in
// the instance itself.
type Result struct {
	failures []*Failure
	name     string

	// root is the predicate stack's sentinel with id 0; the stack is
	// singly linked from root to tail.
	root predicateContext
	tail *predicateContext

	// nextPredicateID is assigned to the next pushed context.
	nextPredicateID uint

	// lastUsedPredicateID is the high-water mark of context ids
	// already converted into failures; it keeps a context from being
	// re-materialized when several descendants fail beneath it.
	lastUsedPredicateID uint

	// messageTarget receives the text of Append calls; nil until a
	// failure was recorded.
	messageTarget *Failure
}

// NewResult returns a fresh Result ready for one test-case execution.
func NewResult() *Result {
	r := &Result{nextPredicateID: 1}
	r.tail = &r.root
	return r
}

// SetTestName sets the name reported by a failure-detail header (see
// [Result.WriteFailure]).
func (r *Result) SetTestName(name string) { r.name = name }

// TestName returns the name of the test case this result belongs to.
func (r *Result) TestName() string { return r.name }

// Failed reports whether at least one failure was recorded.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the recorded failures in discovery order.  Returned
// slice must not be modified.
func (r *Result) Failures() []*Failure { return r.failures }

// PushPredicateContext enters a predicate assertion for given
// expression at given location.  Entering a predicate records no
// failure; a context only turns into one once an assertion beneath it
// fails.  Every push must be paired with exactly one
// [Result.PopPredicateContext] call on all exit paths of the predicate
// evaluation; [Result.Predicate] guarantees the pairing.
func (r *Result) PushPredicateContext(file string, line int, expr string) {
	ctx := &predicateContext{
		id:   r.nextPredicateID,
		file: file,
		line: line,
		expr: expr,
	}
	r.nextPredicateID++
	r.tail.next = ctx
	r.tail = ctx
}

// PopPredicateContext removes the last pushed predicate context from
// the stack.  If the popped context was converted into a failure,
// subsequent [Result.Append] calls target that failure instead of
// whatever failed beneath the context.  Popping without a matching
// push violates the usage contract and leaves the result in an
// undefined state.
func (r *Result) PopPredicateContext() *Result {
	// the stack is singly linked with a tail pointer only, hence the
	// walk from the root for the tail's predecessor
	node := &r.root
	for node.next != nil && node.next.next != nil {
		node = node.next
	}
	tail := node.next
	if tail != nil && tail.failure != nil {
		r.messageTarget = tail.failure
	}
	r.tail = node
	node.next = nil
	return r
}

// Predicate pushes a predicate context for given expression at the
// caller's location and returns the matching pop, allowing the
// push/pop pairing to be guaranteed across all exit paths of an
// assertion helper:
//
//	func checkRange(r *minitest.Result, x int) {
//	    defer r.Predicate("checkRange(x)")()
//	    minitest.Assert(r, x < 10, "x < 10")
//	}
func (r *Result) Predicate(expr string) func() {
	file, line := caller(1)
	r.PushPredicateContext(file, line, expr)
	return func() { r.PopPredicateContext() }
}

// AddFailure records an assertion failure at given location.  Every
// active predicate context not converted yet is materialized into a
// Failure first, outermost first at nesting levels counted from the
// outermost unconverted context, so a failing nested assertion helper
// reports the chain of predicate calls leading to it.  Each context is
// converted at most once even if several descendants fail beneath it.
// The failure of the assertion itself is added last and becomes the
// target of subsequent [Result.Append] calls.
func (r *Result) AddFailure(file string, line int, expr string) *Result {
	nestingLevel := 0
	for node := r.root.next; node != nil; node = node.next {
		if node.id > r.lastUsedPredicateID { // not materialized yet
			r.lastUsedPredicateID = node.id
			r.addFailureInfo(node.file, node.line, node.expr, nestingLevel)
			// converted contexts redirect streamed messages to their
			// own failure once popped
			node.failure = r.failures[len(r.failures)-1]
		}
		nestingLevel++
	}
	r.addFailureInfo(file, line, expr, nestingLevel)
	r.messageTarget = r.failures[len(r.failures)-1]
	return r
}

// addFailureInfo appends a failure for an assertion or a materialized
// predicate context.
func (r *Result) addFailureInfo(
	file string, line int, expr string, nestingLevel int,
) {
	r.failures = append(r.failures, &Failure{
		File:         file,
		Line:         line,
		Expr:         expr,
		NestingLevel: nestingLevel,
	})
}

// Append renders given values (see [Render]) and appends them to the
// message of the current message target which is the most recently
// recorded failure or the failure of the most recently popped
// predicate context.  Append is a no-op as long as no failure was
// recorded.  Returned is the result to allow chaining:
//
//	minitest.Assert(r, x == y, "x == y").
//	    Append("x=").Append(x).Append(", y=").Append(y)
func (r *Result) Append(values ...interface{}) *Result {
	if r.messageTarget == nil {
		return r
	}
	for _, v := range values {
		r.messageTarget.Message += Render(v)
	}
	return r
}

// WriteFailure writes all recorded failures in discovery order to
// given writer.  Each failure is indented two spaces per nesting
// level; failures with a location are prefixed "<file>(<line>): "
// followed by the expression; message text is re-indented with two
// additional spaces after every embedded line break.  If printTestName
// is true a "* Detail of <name> test failure:" header precedes the
// block, used to disambiguate reports of several failing tests.
func (r *Result) WriteFailure(w io.Writer, printTestName bool) {
	if len(r.failures) == 0 {
		return
	}
	if printTestName {
		fmt.Fprintf(w, "* Detail of %s test failure:\n", r.name)
	}
	for _, f := range r.failures {
		indent := strings.Repeat("  ", f.NestingLevel)
		if f.File != "" {
			fmt.Fprintf(w, "%s%s(%d): ", indent, f.File, f.Line)
		}
		if f.Expr != "" {
			fmt.Fprintf(w, "%s\n", f.Expr)
		} else if f.File != "" {
			fmt.Fprintln(w)
		}
		if f.Message != "" {
			fmt.Fprintf(w, "%s\n", indentText(f.Message, indent+"  "))
		}
	}
}

// PrintFailure writes all recorded failures to stdout; see
// [Result.WriteFailure].
func (r *Result) PrintFailure(printTestName bool) {
	r.WriteFailure(os.Stdout, printTestName)
}

// indentText prefixes every line of given text with given indent
// keeping embedded line breaks.
func indentText(text, indent string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	lastIndex := 0
	for lastIndex < len(text) {
		nextIndex := strings.IndexByte(text[lastIndex:], '\n')
		if nextIndex < 0 {
			nextIndex = len(text) - 1
		} else {
			nextIndex += lastIndex
		}
		b.WriteString(indent)
		b.WriteString(text[lastIndex : nextIndex+1])
		lastIndex = nextIndex + 1
	}
	return b.String()
}
