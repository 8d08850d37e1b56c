// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package strerror

import (
	"errors"
	"math"
	"strings"
	"syscall"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cilium/oserror/pkg/logger"
	"github.com/cilium/oserror/pkg/metrics/resolvemetrics"
)

func fixedLookup(msg string) LookupFunc {
	return func(_ int32, buf []byte) error {
		n := copy(buf[:len(buf)-1], msg)
		buf[n] = 0
		return nil
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		code   int32
		lookup LookupFunc
		want   string
	}{
		{
			name:   "message",
			code:   2,
			lookup: fixedLookup("No such file or directory"),
			want:   "No such file or directory",
		},
		{
			name:   "whitespace kept",
			code:   5,
			lookup: fixedLookup("  I/O  error \n"),
			want:   "  I/O  error \n",
		},
		{
			name:   "lookup failure",
			code:   -7,
			lookup: func(int32, []byte) error { return syscall.EINVAL },
			want:   "OS Error -7 (strerror_r() failed)",
		},
		{
			name:   "empty message",
			code:   0,
			lookup: fixedLookup(""),
			want:   "OS Error 0 (strerror_r() failed)",
		},
		{
			name:   "multibyte utf-8",
			code:   2,
			lookup: fixedLookup("Fichier ou répertoire inexistant"),
			want:   "Fichier ou répertoire inexistant",
		},
		{
			name:   "truncated sequence",
			code:   3,
			lookup: fixedLookup("r\xc3"),
			want:   "OS Error 3 (strerror_r() returned invalid UTF-8)",
		},
		{
			name:   "invalid utf-8",
			code:   math.MaxInt32,
			lookup: fixedLookup("bad \xff\xfe byte"),
			want:   "OS Error 2147483647 (strerror_r() returned invalid UTF-8)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.code, tt.lookup))
		})
	}
}

func TestDescribeBufferSize(t *testing.T) {
	var got int
	Describe(1, func(_ int32, buf []byte) error {
		got = len(buf)
		return errors.New("unused")
	})
	assert.Equal(t, BufferSize, got)
}

func TestDescribeUnterminated(t *testing.T) {
	// A lookup that fills the whole buffer without a terminator is taken
	// as-is rather than read past.
	got := Describe(1, func(_ int32, buf []byte) error {
		for i := range buf {
			buf[i] = 'x'
		}
		return nil
	})
	assert.Equal(t, strings.Repeat("x", BufferSize), got)
}

func TestDescribeCountsOutcomes(t *testing.T) {
	failed := testutil.ToFloat64(resolvemetrics.GetResolutionsTotal(resolvemetrics.LookupFailed))
	invalid := testutil.ToFloat64(resolvemetrics.GetResolutionsTotal(resolvemetrics.InvalidText))
	found := testutil.ToFloat64(resolvemetrics.GetResolutionsTotal(resolvemetrics.Strerror))

	Describe(1, fixedLookup("ok"))
	Describe(1, fixedLookup("\xff"))
	Describe(1, func(int32, []byte) error { return syscall.ERANGE })

	assert.InDelta(t, failed+1, testutil.ToFloat64(resolvemetrics.GetResolutionsTotal(resolvemetrics.LookupFailed)), 0)
	assert.InDelta(t, invalid+1, testutil.ToFloat64(resolvemetrics.GetResolutionsTotal(resolvemetrics.InvalidText)), 0)
	assert.InDelta(t, found+1, testutil.ToFloat64(resolvemetrics.GetResolutionsTotal(resolvemetrics.Strerror)), 0)
}

func TestDescribeLogsFailure(t *testing.T) {
	saved := logger.DefaultSlogLogger
	t.Cleanup(func() { logger.DefaultSlogLogger = saved })

	var lines []string
	logger.InitializeLogr(funcr.New(func(_, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 4}))

	Describe(42, func(int32, []byte) error { return syscall.EINVAL })
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "strerror_r lookup failed")
	assert.Contains(t, lines[0], "42")

	Describe(42, fixedLookup("fine"))
	assert.Len(t, lines, 1)
}
