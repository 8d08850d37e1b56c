// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

//go:build windows && !uwp

package winmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The NT heuristic is a best-effort approximation; only check that it is
// wired in and that ntdll.dll, which every process maps, is found.
func TestNtdllLocated(t *testing.T) {
	module, ok := locateNtdll()
	assert.True(t, ok)
	assert.NotZero(t, module)
	assert.NotNil(t, Default().NTModule)
}
