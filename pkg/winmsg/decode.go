// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Tetragon

package winmsg

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// decodeUTF16 converts s to UTF-8. Unlike utf16.Decode it rejects unpaired
// surrogates instead of replacing them with U+FFFD.
func decodeUTF16(s []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		if utf16.IsSurrogate(r) {
			if i+1 >= len(s) {
				return "", fmt.Errorf("unpaired surrogate %#04x at offset %d", s[i], i)
			}
			r = utf16.DecodeRune(r, rune(s[i+1]))
			if r == utf8.RuneError {
				return "", fmt.Errorf("unpaired surrogate %#04x at offset %d", s[i], i)
			}
			i++
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// trimTrailingSpace strips the line terminators and blanks FormatMessageW
// appends to most messages. Leading and inner whitespace is kept.
func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
