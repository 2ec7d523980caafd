// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Minitest runs the framework's built-in self-check suite.

Usage:

	minitest
	minitest --list-tests
	minitest --test TESTNAME

Without arguments all self-check tests are run and summarized; the
process exits non-zero if any of them fails.
*/
package main

import (
	"os"

	"github.com/whr4935/minitest"
)

func main() {
	os.Exit(register(minitest.NewRunner()).RunCommandLine(os.Args))
}
