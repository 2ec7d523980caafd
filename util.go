// Copyright (c) 2023 the minitest authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package minitest

import (
	"path/filepath"
	"runtime"
)

// caller reports the file base-name and line of the source location
// skip frames above caller's caller.  It reports the zero location if
// the runtime can't provide one, resulting in a synthetic, i.e.
// location-less, failure.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0
	}
	return filepath.Base(file), line
}
