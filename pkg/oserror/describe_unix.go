// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build unix

package oserror

import (
	"github.com/cilium/oserror/pkg/strerror"
)

func describe(code int32) string {
	return strerror.Resolve(code)
}

func lastError() int32 {
	return 0
}
