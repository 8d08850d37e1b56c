// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build unix

package strerror

import (
	"fmt"
	"math"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSystemLookup(t *testing.T) {
	buf := make([]byte, BufferSize)
	require.NoError(t, SystemLookup(int32(unix.ENOENT), buf))
	assert.Equal(t, unix.ENOENT.Error()+"\x00", string(buf[:len(unix.ENOENT.Error())+1]))

	assert.ErrorIs(t, SystemLookup(-1, buf), unix.EINVAL)
	assert.ErrorIs(t, SystemLookup(999999, buf), unix.EINVAL)
	assert.ErrorIs(t, SystemLookup(1, nil), unix.ERANGE)
}

func TestSystemLookupTruncates(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, SystemLookup(int32(unix.ENOENT), buf))
	assert.Equal(t, unix.ENOENT.Error()[:3]+"\x00", string(buf))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, syscall.EACCES.Error(), Resolve(int32(syscall.EACCES)))

	for _, code := range []int32{0, -1, 999999, math.MinInt32, math.MaxInt32} {
		assert.Equal(t, fmt.Sprintf("OS Error %d (strerror_r() failed)", code), Resolve(code))
	}
}

func TestResolveIdempotent(t *testing.T) {
	for code := int32(1); code < 64; code++ {
		assert.Equal(t, Resolve(code), Resolve(code))
	}
}
