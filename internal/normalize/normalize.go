// Package normalize prepares user-supplied alphabets for validation.
package normalize

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NFC returns s in Unicode normalization form C. Composing sequences such
// as "é" into one code point keeps an alphabet typed on different
// keyboards from counting the same visible character twice.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// IsNFC reports whether s is already in normalization form C.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}

// CombiningMarks returns the combining (Mn) code points in s, in order.
// Combining marks in an alphabet render on top of their neighbour in
// generated IDs.
func CombiningMarks(s string) []rune {
	var marks []rune
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			marks = append(marks, r)
		}
	}
	return marks
}
