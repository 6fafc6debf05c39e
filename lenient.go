package nanoid

import "github.com/hustcer/nanoid/alphabet"

// GenerateOrDefault is the forgiving counterpart of Generate. An empty
// alphabet becomes alphabet.URLSafe, a size below 1 becomes DefaultSize and
// a size above MaxSize is clamped. Any error that remains, such as a
// duplicate character or a failing random source, yields "".
//
// Use Generate when silently corrected input is not acceptable.
func GenerateOrDefault(chars string, size int) string {
	if chars == "" {
		chars = alphabet.URLSafe
	}
	switch {
	case size < 1:
		size = DefaultSize
	case size > MaxSize:
		size = MaxSize
	}
	id, err := Generate(chars, size, nil)
	if err != nil {
		return ""
	}
	return id
}

// MustGenerate is like Generate with the default source but panics on
// error. Use it only with constant, known-good input.
func MustGenerate(chars string, size int) string {
	id, err := Generate(chars, size, nil)
	if err != nil {
		panic(err)
	}
	return id
}
