// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

// Package winmsg resolves Windows error codes to text through FormatMessageW
// message tables.
//
// Windows error codes are not unique across subsystems: the same value can
// be defined by different drivers or DLLs with different meanings. A
// Resolver therefore searches caller-supplied modules in order and only then
// falls back to the system message table.
//
// The search itself is platform independent; the native FormatMessageW call
// is injected through the Formatter interface. Default, available on Windows
// builds, wires it to golang.org/x/sys/windows.
package winmsg

import (
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/multierr"

	"github.com/cilium/oserror/pkg/logger"
	"github.com/cilium/oserror/pkg/logger/logfields"
	"github.com/cilium/oserror/pkg/metrics/resolvemetrics"
)

// FormatMessageW flags, see winbase.h.
const (
	FormatMessageIgnoreInserts = 0x00000200
	FormatMessageFromHModule   = 0x00000800
	FormatMessageFromSystem    = 0x00001000
)

// FacilityNTBit marks an HRESULT as carrying an NTSTATUS value.
const FacilityNTBit = 0x10000000

// BufferSize is the size, in UTF-16 units, of the message buffer. Longer
// messages are truncated by FormatMessageW itself.
const BufferSize = 2048

// Module is an opaque module handle (HMODULE). The resolver only passes it
// to the Formatter; it never loads or frees it.
type Module uintptr

// Formatter is the FormatMessageW primitive. It writes the message for code
// into buf and returns the number of UTF-16 units written. A zero length
// means no message was found, and err then carries the reason.
type Formatter interface {
	FormatMessage(flags uint32, module Module, code uint32, buf []uint16) (uint32, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(flags uint32, module Module, code uint32, buf []uint16) (uint32, error)

func (f FormatterFunc) FormatMessage(flags uint32, module Module, code uint32, buf []uint16) (uint32, error) {
	return f(flags, module, code, buf)
}

// Resolver turns error codes into descriptions. It is safe for concurrent
// use as long as its fields are not modified.
type Resolver struct {
	Formatter Formatter
	// LastError returns the calling thread's last error. It is consulted
	// when a failed lookup did not report an errno of its own.
	LastError func() uint32
	// NTModule locates the module holding NT status messages. A nil
	// NTModule disables the NT heuristic in Resolve.
	NTModule func() (Module, bool)
	// Log defaults to logger.GetLogger() when nil.
	Log logger.FieldLogger
}

// lookupResult describes how a single resolution ended.
type lookupResult struct {
	desc    string
	outcome resolvemetrics.Outcome
}

// ResolveWithModules looks code up in each of modules, in order, and returns
// the first message found. If none of them has one the system message table
// is used. It never fails: lookup failures are folded into the returned
// text.
func (r *Resolver) ResolveWithModules(code int32, modules []Module) string {
	var buf [BufferSize]uint16
	var errs error

	for _, module := range modules {
		res, ok, err := r.lookup(code, uint32(code), FormatMessageFromHModule|FormatMessageIgnoreInserts, module, buf[:], resolvemetrics.Module)
		if ok {
			return r.finish(res)
		}
		errs = multierr.Append(errs, fmt.Errorf("module %#x: %w", uintptr(module), err))
	}

	return r.system(code, buf[:], errs)
}

// Resolve looks code up without caller-supplied modules.
//
// When the NT heuristic is enabled and the NT message module can be located,
// the code is first looked up there with the NT facility bit flipped: many
// codes reported with Win32 numbering originate from NTSTATUS values. This
// is an approximation that only holds for a subset of codes, so the
// unmodified code is still looked up in the system table when it finds
// nothing.
func (r *Resolver) Resolve(code int32) string {
	var buf [BufferSize]uint16
	var errs error

	if r.NTModule != nil {
		if module, located := r.NTModule(); located {
			flags := uint32(FormatMessageFromHModule | FormatMessageFromSystem | FormatMessageIgnoreInserts)
			res, ok, err := r.lookup(code, uint32(code)^FacilityNTBit, flags, module, buf[:], resolvemetrics.NTModule)
			if ok {
				return r.finish(res)
			}
			errs = multierr.Append(errs, fmt.Errorf("nt module %#x: %w", uintptr(module), err))
		}
	}

	return r.system(code, buf[:], errs)
}

func (r *Resolver) system(code int32, buf []uint16, errs error) string {
	res, ok, err := r.lookup(code, uint32(code), FormatMessageFromSystem|FormatMessageIgnoreInserts, 0, buf, resolvemetrics.System)
	if ok {
		return r.finish(res)
	}
	errs = multierr.Append(errs, fmt.Errorf("system: %w", err))

	r.log().Debug("No message found for error code",
		logfields.Code, code, logfields.Error, errs)
	return r.finish(lookupResult{
		desc:    fmt.Sprintf("OS Error %d (FormatMessageW() returned error %d)", code, r.failureCode(err)),
		outcome: resolvemetrics.LookupFailed,
	})
}

// lookup performs a single FormatMessageW call. ok reports whether the
// candidate produced a message, in which case no further candidates are
// tried, even if the message turned out not to be valid UTF-16.
func (r *Resolver) lookup(code int32, msgID, flags uint32, module Module, buf []uint16, outcome resolvemetrics.Outcome) (lookupResult, bool, error) {
	n, err := r.Formatter.FormatMessage(flags, module, msgID, buf)
	if n == 0 {
		if err == nil {
			err = errNoMessage
		}
		return lookupResult{}, false, err
	}
	if int(n) > len(buf) {
		n = uint32(len(buf))
	}

	msg, err := decodeUTF16(buf[:n])
	if err != nil {
		r.log().Debug("Message is not valid UTF-16",
			logfields.Code, code, logfields.Module, uintptr(module), logfields.Error, err)
		return lookupResult{
			desc:    fmt.Sprintf("OS Error %d (FormatMessageW() returned invalid wide string)", code),
			outcome: resolvemetrics.InvalidText,
		}, true, nil
	}
	msg = trimTrailingSpace(msg)
	if msg == "" {
		return lookupResult{
			desc:    fmt.Sprintf("OS Error %d (FormatMessageW() returned blank message)", code),
			outcome: resolvemetrics.InvalidText,
		}, true, nil
	}
	return lookupResult{desc: msg, outcome: outcome}, true, nil
}

var errNoMessage = errors.New("no message")

// failureCode returns the error code of a failed FormatMessageW call: the
// errno it reported, or the thread's last error otherwise.
func (r *Resolver) failureCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	if r.LastError != nil {
		return r.LastError()
	}
	return 0
}

func (r *Resolver) finish(res lookupResult) string {
	resolvemetrics.ResolutionsTotalInc(res.outcome)
	return res.desc
}

func (r *Resolver) log() logger.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logger.GetLogger().With(logfields.LogSubsys, "winmsg")
}
