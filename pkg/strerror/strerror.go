// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

// Package strerror turns errno values into text the way strerror_r(3) does:
// a fixed 128-byte buffer, no retries, and a placeholder when the lookup
// fails or returns something that isn't UTF-8.
package strerror

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/cilium/oserror/pkg/logger"
	"github.com/cilium/oserror/pkg/logger/logfields"
	"github.com/cilium/oserror/pkg/metrics/resolvemetrics"
)

// BufferSize is the size of the message buffer handed to the lookup.
// Longer messages are truncated by the lookup itself.
const BufferSize = 128

// ErrEmptyMessage is reported when a lookup succeeds without writing any text.
var ErrEmptyMessage = errors.New("empty message")

// LookupFunc fills buf with the NUL-terminated message for code. It follows
// the XSI strerror_r contract: a non-nil error means buf holds nothing useful.
type LookupFunc func(code int32, buf []byte) error

// Describe resolves code through lookup. It never fails: lookup errors and
// invalid text are folded into a placeholder that carries the code.
func Describe(code int32, lookup LookupFunc) string {
	var buf [BufferSize]byte
	err := lookup(code, buf[:])

	var msg []byte
	if err == nil {
		msg = buf[:]
		if i := bytes.IndexByte(msg, 0); i >= 0 {
			msg = msg[:i]
		}
		if len(msg) == 0 {
			err = ErrEmptyMessage
		}
	}
	if err != nil {
		logger.GetLogger().Debug("strerror_r lookup failed",
			logfields.LogSubsys, "strerror", logfields.Code, code, logfields.Error, err)
		resolvemetrics.ResolutionsTotalInc(resolvemetrics.LookupFailed)
		return fmt.Sprintf("OS Error %d (strerror_r() failed)", code)
	}

	s, _, err := transform.Bytes(encoding.UTF8Validator, msg)
	if err != nil {
		resolvemetrics.ResolutionsTotalInc(resolvemetrics.InvalidText)
		return fmt.Sprintf("OS Error %d (strerror_r() returned invalid UTF-8)", code)
	}
	resolvemetrics.ResolutionsTotalInc(resolvemetrics.Strerror)
	return string(s)
}
