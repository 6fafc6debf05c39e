package nanoid

import (
	"fmt"
)

// Kind identifies one failure reason of the generator.
type Kind int

const (
	// KindEmptyAlphabet means the alphabet has no characters.
	KindEmptyAlphabet Kind = iota + 1
	// KindOversizedAlphabet means the alphabet has more than MaxAlphabetLen characters.
	KindOversizedAlphabet
	// KindDuplicateCharacter means a character appears twice in the alphabet.
	KindDuplicateCharacter
	// KindSizeTooSmall means the requested ID size is zero or negative.
	KindSizeTooSmall
	// KindSizeTooLarge means the requested ID size exceeds MaxSize.
	KindSizeTooLarge
	// KindRandomGeneration means the random source failed to produce bytes.
	KindRandomGeneration
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmptyAlphabet:
		return "empty_alphabet"
	case KindOversizedAlphabet:
		return "oversized_alphabet"
	case KindDuplicateCharacter:
		return "duplicate_character"
	case KindSizeTooSmall:
		return "size_too_small"
	case KindSizeTooLarge:
		return "size_too_large"
	case KindRandomGeneration:
		return "random_generation"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the single error type returned by this package. Only the fields
// relevant to Kind are set.
type Error struct {
	Kind Kind

	// Len is the alphabet length for KindOversizedAlphabet.
	Len int

	// Char, FirstIndex and DupIndex describe a KindDuplicateCharacter
	// failure. Indices count code points, not bytes.
	Char       rune
	FirstIndex int
	DupIndex   int

	// Size is the rejected ID size for KindSizeTooSmall and KindSizeTooLarge.
	Size int

	// Reason and Err describe a KindRandomGeneration failure.
	Reason string
	Err    error
}

// Sentinels for use with errors.Is. They match any *Error of the same Kind.
var (
	ErrEmptyAlphabet      = &Error{Kind: KindEmptyAlphabet}
	ErrOversizedAlphabet  = &Error{Kind: KindOversizedAlphabet}
	ErrDuplicateCharacter = &Error{Kind: KindDuplicateCharacter}
	ErrSizeTooSmall       = &Error{Kind: KindSizeTooSmall}
	ErrSizeTooLarge       = &Error{Kind: KindSizeTooLarge}
	ErrRandomGeneration   = &Error{Kind: KindRandomGeneration}
)

// Error returns a message that tells the caller how to fix the input.
func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyAlphabet:
		return "nanoid: alphabet is empty; provide at least 1 unique character"
	case KindOversizedAlphabet:
		return fmt.Sprintf("nanoid: alphabet has %d characters; the maximum is %d unique characters",
			e.Len, MaxAlphabetLen)
	case KindDuplicateCharacter:
		return fmt.Sprintf("nanoid: alphabet repeats %q at positions %d and %d; every character must be unique",
			e.Char, e.FirstIndex, e.DupIndex)
	case KindSizeTooSmall:
		return fmt.Sprintf("nanoid: size %d is too small; size must be at least 1", e.Size)
	case KindSizeTooLarge:
		return fmt.Sprintf("nanoid: size %d is too large; size must be at most %d", e.Size, MaxSize)
	case KindRandomGeneration:
		msg := "nanoid: random source failed"
		if e.Reason != "" {
			msg += ": " + e.Reason
		}
		return msg + "; no identifier was produced"
	default:
		return "nanoid: " + e.Kind.String()
	}
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Unwrap returns the random source error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func errOversizedAlphabet(n int) *Error {
	return &Error{Kind: KindOversizedAlphabet, Len: n}
}

func errDuplicateCharacter(r rune, first, dup int) *Error {
	return &Error{Kind: KindDuplicateCharacter, Char: r, FirstIndex: first, DupIndex: dup}
}

func errSizeTooSmall(size int) *Error {
	return &Error{Kind: KindSizeTooSmall, Size: size}
}

func errSizeTooLarge(size int) *Error {
	return &Error{Kind: KindSizeTooLarge, Size: size}
}

func errRandomGeneration(err error) *Error {
	e := &Error{Kind: KindRandomGeneration, Err: err}
	if err != nil {
		e.Reason = err.Error()
	}
	return e
}
