// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

// Package oserror provides human-readable descriptions of platform error
// codes: errno values on Unix, system error codes on Windows.
//
// Describing an error never fails. When the platform has no message for a
// code, or returns one that can't be decoded, the description is a
// placeholder of the form "OS Error <code> (<reason>)".
package oserror

import (
	"errors"
	"fmt"
	"syscall"
)

// OSError is a platform error code together with its description.
type OSError struct {
	code int32
	desc string
}

// LastErrorFunc returns the calling thread's most recent OS error code.
type LastErrorFunc func() int32

// Last describes the calling thread's most recent OS error.
//
// On Windows this is GetLastError. The Go runtime does not keep the C errno
// around on Unix, so there the default source always reports 0; use
// LastFrom or FromError with an errno captured by the caller instead.
func Last() OSError {
	return LastFrom(lastError)
}

// LastFrom describes the code returned by source.
func LastFrom(source LastErrorFunc) OSError {
	return FromCode(source())
}

// FromCode describes an explicit error code. It doesn't read or modify any
// thread-local OS state.
func FromCode(code int32) OSError {
	return OSError{
		code: code,
		desc: describe(code),
	}
}

// FromError describes the first syscall.Errno found in err's chain. It
// returns false if there is none.
func FromError(err error) (OSError, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return OSError{}, false
	}
	return FromCode(int32(errno)), true
}

// Code returns the raw platform error code.
func (e OSError) Code() int32 {
	return e.code
}

// Description returns the human-readable description of the error.
func (e OSError) Description() string {
	if e.desc == "" {
		return placeholder(e.code, "no description")
	}
	return e.desc
}

// Error implements the error interface. It returns the description only.
func (e OSError) Error() string {
	return e.Description()
}

func (e OSError) String() string {
	return e.Description()
}

// Unwrap returns the code as a syscall.Errno, so that errors.Is matches the
// platform's errno constants.
func (e OSError) Unwrap() error {
	return syscall.Errno(uint32(e.code))
}

func placeholder(code int32, reason string) string {
	return fmt.Sprintf("OS Error %d (%s)", code, reason)
}
