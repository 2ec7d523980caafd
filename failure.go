// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest

// Failure is a single reported problem of a test-case execution: where
// it happened, the asserted expression's text and a free-form message
// which is extended through [Result.Append] for as long as the failure
// is its result's message target.  A Failure without a file is
// synthetic, i.e. has no source location attached (e.g. a recovered
// panic).
type Failure struct {

	// File is the source file of the failing assertion; empty for
	// synthetic failures.
	File string

	// Line is the failing assertion's line in File.
	Line int

	// Expr is the asserted expression's text; may be empty.
	Expr string

	// Message is free-form diagnostic text streamed through
	// [Result.Append].
	Message string

	// NestingLevel is the depth in the predicate stack at the time
	// the failure was recorded.
	NestingLevel int
}

// predicateContext is a node of a result's predicate stack which
// materializes an assertion callstack on failure.  Each node is owned
// by exactly one predicate evaluation for its dynamic extent and must
// not be accessed after the predicate was popped.
type predicateContext struct {

	// id orders contexts strictly increasing from the root sentinel
	// (id 0) to the stack's tail.
	id uint

	file string
	line int
	expr string

	// next links to the more recently pushed context.
	next *predicateContext

	// failure is set once the context was converted into a Failure;
	// it becomes the message target when the context is popped.
	failure *Failure
}
