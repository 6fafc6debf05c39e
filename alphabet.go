package nanoid

import "unicode/utf8"

// MaxAlphabetLen is the largest supported alphabet. Candidate indices come
// from single random bytes, so 256 characters is the hard ceiling.
const MaxAlphabetLen = 256

// Alphabet is an ordered set of unique code points. The position of a
// character is its index when sampling.
type Alphabet []rune

// Len returns the number of characters.
func (a Alphabet) Len() int { return len(a) }

// String returns the alphabet as a string.
func (a Alphabet) String() string { return string(a) }

// Contains reports whether r is one of the characters.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a {
		if c == r {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with a.
func (a Alphabet) Clone() Alphabet {
	if a == nil {
		return nil
	}
	out := make(Alphabet, len(a))
	copy(out, a)
	return out
}

// ValidateAlphabet converts raw into an Alphabet. It counts code points,
// not bytes, and reports the first repeated character found in a single
// forward pass. Length limits are checked before duplicates.
func ValidateAlphabet(raw string) (Alphabet, error) {
	n := utf8.RuneCountInString(raw)
	if n == 0 {
		return nil, &Error{Kind: KindEmptyAlphabet}
	}
	if n > MaxAlphabetLen {
		return nil, errOversizedAlphabet(n)
	}

	seen := make(map[rune]int, n)
	chars := make(Alphabet, 0, n)
	for _, r := range raw {
		idx := len(chars)
		if first, ok := seen[r]; ok {
			return nil, errDuplicateCharacter(r, first, idx)
		}
		seen[r] = idx
		chars = append(chars, r)
	}
	return chars, nil
}
