package nanoid

import "math"

// stepFactor over-draws random bytes so that one batch usually covers the
// rejected ones.
const stepFactor = 1.6

// MaskFor returns the smallest mask of the form 2^k-1 that covers every
// index of an alphabet with n characters. A byte b is accepted as index
// b&mask only when b&mask < n, which keeps every index equally likely.
//
// n must be in [1, MaxAlphabetLen].
func MaskFor(n int) byte {
	var mask byte
	for int(mask) < n-1 {
		mask = mask<<1 | 1
	}
	return mask
}

// StepFor returns how many random bytes to draw per round when building an
// ID of size characters from an alphabet of n characters. It follows the
// usual nanoid estimate ceil(1.6*mask*size/n) and never returns less than
// size, because a round cannot yield more than one character per byte.
func StepFor(n int, mask byte, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	step := int(math.Ceil(stepFactor * float64(mask) * float64(size) / float64(n)))
	if step < size {
		step = size
	}
	return step
}
