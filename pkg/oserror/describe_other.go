// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build !unix && !windows

package oserror

import (
	"runtime"
)

func describe(code int32) string {
	return placeholder(code, "no message lookup on "+runtime.GOOS)
}

func lastError() int32 {
	return 0
}
