// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build windows && !uwp

package winmsg

import (
	"golang.org/x/sys/windows"
)

const ntdll = "ntdll.dll"

var ntModuleLocator = locateNtdll

// locateNtdll returns the handle of the already loaded ntdll.dll without
// taking a reference on it.
func locateNtdll() (Module, bool) {
	name, err := windows.UTF16PtrFromString(ntdll)
	if err != nil {
		return 0, false
	}
	var h windows.Handle
	err = windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, name, &h)
	if err != nil || h == 0 {
		return 0, false
	}
	return Module(h), true
}
