// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package winmsg

import (
	"errors"
	"sync"
	"syscall"

	"golang.org/x/sys/windows"
)

// SystemFormatter calls FormatMessageW.
type SystemFormatter struct{}

func (SystemFormatter) FormatMessage(flags uint32, module Module, code uint32, buf []uint16) (uint32, error) {
	return windows.FormatMessage(flags, uintptr(module), code, 0, buf, nil)
}

// LastError returns the calling thread's last error code.
func LastError() uint32 {
	var errno syscall.Errno
	if errors.As(windows.GetLastError(), &errno) {
		return uint32(errno)
	}
	return 0
}

// Default returns the resolver backed by FormatMessageW. Whether it applies
// the NT heuristic depends on the build: it is left out with the uwp tag.
var Default = sync.OnceValue(func() *Resolver {
	return &Resolver{
		Formatter: SystemFormatter{},
		LastError: LastError,
		NTModule:  ntModuleLocator,
	}
})

// FromHandle converts a module handle obtained from x/sys/windows.
func FromHandle(h windows.Handle) Module {
	return Module(h)
}

// LoadMessageModule maps a DLL as a data file so its message table can be
// passed to ResolveWithModules. The caller owns the module and must call
// release once it is no longer used.
func LoadMessageModule(name string) (module Module, release func() error, err error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_AS_DATAFILE)
	if err != nil {
		return 0, nil, err
	}
	return Module(h), func() error { return windows.FreeLibrary(h) }, nil
}
