// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package winmsg

import (
	"regexp"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

var fallbackPattern = regexp.MustCompile(`^OS Error -?\d+ \(FormatMessageW\(\) returned (error \d+|invalid wide string|blank message)\)$`)

func TestFlagsMatchWinbase(t *testing.T) {
	assert.EqualValues(t, windows.FORMAT_MESSAGE_IGNORE_INSERTS, FormatMessageIgnoreInserts)
	assert.EqualValues(t, windows.FORMAT_MESSAGE_FROM_HMODULE, FormatMessageFromHModule)
	assert.EqualValues(t, windows.FORMAT_MESSAGE_FROM_SYSTEM, FormatMessageFromSystem)
}

func TestDefaultResolveKnownCode(t *testing.T) {
	for _, code := range []syscall.Errno{windows.ERROR_FILE_NOT_FOUND, windows.ERROR_ACCESS_DENIED} {
		desc := Default().ResolveWithModules(int32(code), nil)
		assert.NotEmpty(t, desc)
		assert.NotRegexp(t, fallbackPattern, desc)
		assert.Equal(t, strings.TrimRight(desc, " \r\n\t"), desc)
	}
}

func TestDefaultResolveUnknownCode(t *testing.T) {
	desc := Default().ResolveWithModules(999999, nil)
	assert.Regexp(t, `^OS Error 999999 \(FormatMessageW\(\) returned error \d+\)$`, desc)
}

func TestDefaultResolveNeverEmpty(t *testing.T) {
	for _, code := range []int32{0, 2, -1, 999999, -2147483648, 2147483647} {
		assert.NotEmpty(t, Default().Resolve(code))
	}
}

func TestLoadMessageModule(t *testing.T) {
	module, release, err := LoadMessageModule("kernel32.dll")
	require.NoError(t, err)
	defer func() { assert.NoError(t, release()) }()

	desc := Default().ResolveWithModules(int32(windows.ERROR_FILE_NOT_FOUND), []Module{module})
	assert.NotRegexp(t, fallbackPattern, desc)
}
