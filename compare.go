package nanoid

import (
	"crypto/subtle"
	"unicode/utf8"
)

// ConstantTimeEqual reports whether a and b are the same string. It walks
// both by code point over the longer length without exiting early, so the
// running time does not reveal where they first differ. The total length is
// not secret.
//
// Invalid UTF-8 bytes are compared as raw bytes, so "\xff" never equals
// "\uFFFD" or "\xfe".
func ConstantTimeEqual(a, b string) bool {
	var diff int32
	var na, nb int32
	for len(a) > 0 || len(b) > 0 {
		x, wa := codePoint(a)
		y, wb := codePoint(b)
		diff |= x ^ y
		if wa > 0 {
			na++
		}
		if wb > 0 {
			nb++
		}
		a, b = a[wa:], b[wb:]
	}

	same := subtle.ConstantTimeEq(diff, 0)
	same &= subtle.ConstantTimeEq(na, nb)
	return same == 1
}

// codePoint decodes the first character of s and its width. Exhausted input
// yields 0; an invalid byte yields a negative value unique to that byte.
func codePoint(s string) (int32, int) {
	if s == "" {
		return 0, 0
	}
	r, w := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && w == 1 {
		return -1 - int32(s[0]), 1
	}
	return r, w
}
