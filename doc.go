// Package nanoid generates short random identifiers drawn uniformly from a
// configurable alphabet.
//
// Characters are chosen by bitmask rejection sampling: each random byte is
// masked down to the smallest power-of-two range covering the alphabet and
// discarded when it falls outside it. Every character is therefore exactly
// equally likely, with no modulo bias.
//
// Alphabets are handled as Unicode code points, so multi-byte characters
// such as emoji or CJK ideographs count as one character each. An alphabet
// holds between 1 and 256 unique characters.
//
// All failures are returned as *Error values whose Kind says what went
// wrong:
//
//	id, err := nanoid.Generate(alphabet.URLSafe, nanoid.DefaultSize, nil)
//	if errors.Is(err, nanoid.ErrDuplicateCharacter) {
//		// fix the alphabet
//	}
//
// Generate never substitutes defaults for invalid input. GenerateOrDefault
// exists for callers who prefer that behaviour.
package nanoid
