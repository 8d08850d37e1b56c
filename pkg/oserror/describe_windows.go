// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package oserror

import (
	"golang.org/x/sys/windows"

	"github.com/cilium/oserror/pkg/winmsg"
)

func describe(code int32) string {
	return winmsg.Default().Resolve(code)
}

func lastError() int32 {
	return int32(winmsg.LastError())
}

// FromCodeWithModules describes code using the message tables of modules,
// tried in order, before the system message table. The first module that
// has a message for code wins.
//
// The handles stay owned by the caller and must remain valid for the
// duration of the call.
func FromCodeWithModules(code int32, modules ...windows.Handle) OSError {
	candidates := make([]winmsg.Module, len(modules))
	for i, h := range modules {
		candidates[i] = winmsg.FromHandle(h)
	}
	return OSError{
		code: code,
		desc: winmsg.Default().ResolveWithModules(code, candidates),
	}
}
