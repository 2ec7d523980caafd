// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest

// LastUsedPredicateID exposes the high-water mark of predicate
// contexts already converted into failures to the tests.
func (r *Result) LastUsedPredicateID() uint { return r.lastUsedPredicateID }

// TailIsRoot reports to the tests whether the predicate stack is back
// at its root sentinel.
func (r *Result) TailIsRoot() bool { return r.tail == &r.root }

// StackDepth reports the number of currently active predicate contexts
// to the tests.
func (r *Result) StackDepth() int {
	depth := 0
	for node := r.root.next; node != nil; node = node.next {
		depth++
	}
	return depth
}

// IndentText exposes the message re-indentation to the tests.
var IndentText = indentText
