// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build unix

package strerror

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// SystemLookup implements LookupFunc over the errno table of the running
// platform. Unknown codes report EINVAL, as the XSI strerror_r does, and
// messages that don't fit are silently truncated to len(buf)-1 bytes.
//
// The text is Go's errno string, not libc's: there is no strerror_r without
// cgo, so ENOENT reads "no such file or directory" rather than
// "No such file or directory".
func SystemLookup(code int32, buf []byte) error {
	if len(buf) == 0 {
		return unix.ERANGE
	}
	errno := syscall.Errno(code)
	if code < 0 || unix.ErrnoName(errno) == "" {
		return unix.EINVAL
	}
	n := copy(buf[:len(buf)-1], errno.Error())
	buf[n] = 0
	return nil
}

// Resolve describes code using the platform errno table.
func Resolve(code int32) string {
	return Describe(code, SystemLookup)
}
