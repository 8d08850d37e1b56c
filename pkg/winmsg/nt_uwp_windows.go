// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build windows && uwp

package winmsg

// Store apps can't look up ntdll.dll; lookups go straight to the system
// message table.
var ntModuleLocator func() (Module, bool)
