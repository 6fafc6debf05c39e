package nanoid

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSize gives roughly the collision resistance of a UUIDv4 with
	// the 64-character URL-safe alphabet.
	DefaultSize = 21
	// MaxSize bounds the memory and time a single call may use.
	MaxSize = 1_000_000
)

// Generate returns a random string of size characters drawn uniformly from
// alphabet, reading entropy from src. A nil src uses DefaultSource.
//
// Invalid sizes and alphabets are reported before any entropy is read.
// A failing source aborts the call; no partial ID is returned.
func Generate(alphabet string, size int, src RandomSource) (string, error) {
	if err := checkSize(size); err != nil {
		return "", err
	}
	ca, err := defaultCache.Get(alphabet)
	if err != nil {
		return "", err
	}
	if src == nil {
		src = DefaultSource()
	}
	return generate(ca.Alphabet, ca.Mask, size, src)
}

func checkSize(size int) error {
	if size <= 0 {
		return errSizeTooSmall(size)
	}
	if size > MaxSize {
		return errSizeTooLarge(size)
	}
	return nil
}

// generate runs the rejection-sampling loop. chars, mask and size must
// already be valid.
func generate(chars Alphabet, mask byte, size int, src RandomSource) (string, error) {
	n := len(chars)
	step := StepFor(n, mask, size)
	buf := make([]byte, step)

	var b strings.Builder
	b.Grow(size * maxRuneLen(chars))

	count := 0
	for {
		if err := src.Fill(buf); err != nil {
			return "", errRandomGeneration(err)
		}
		for _, rb := range buf {
			idx := int(rb & mask)
			if idx >= n {
				continue
			}
			b.WriteRune(chars[idx])
			count++
			if count == size {
				return b.String(), nil
			}
		}
	}
}

func maxRuneLen(chars Alphabet) int {
	m := 1
	for _, r := range chars {
		if l := utf8.RuneLen(r); l > m {
			m = l
		}
	}
	return m
}

// Generator produces IDs of a fixed size from a fixed, pre-validated
// alphabet. It is safe for concurrent use when its source is.
type Generator struct {
	chars  Alphabet
	mask   byte
	size   int
	source RandomSource
	cache  *Cache
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. The default is DefaultSource.
func WithSource(src RandomSource) Option {
	return func(g *Generator) {
		g.source = src
	}
}

// WithCache resolves the alphabet through c instead of the package cache.
func WithCache(c *Cache) Option {
	return func(g *Generator) {
		g.cache = c
	}
}

// New validates alphabet and size once and returns a Generator for them.
func New(alphabet string, size int, opts ...Option) (*Generator, error) {
	g := &Generator{size: size}
	for _, opt := range opts {
		opt(g)
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if g.cache == nil {
		g.cache = defaultCache
	}
	ca, err := g.cache.Get(alphabet)
	if err != nil {
		return nil, err
	}
	g.chars = ca.Alphabet
	g.mask = ca.Mask
	if g.source == nil {
		g.source = DefaultSource()
	}
	return g, nil
}

// Generate returns a new ID.
func (g *Generator) Generate() (string, error) {
	return generate(g.chars, g.mask, g.size, g.source)
}

// Alphabet returns a copy of the generator's alphabet.
func (g *Generator) Alphabet() Alphabet { return g.chars.Clone() }

// Size returns the length of generated IDs in characters.
func (g *Generator) Size() int { return g.size }

// Mask returns the sampling mask.
func (g *Generator) Mask() byte { return g.mask }
