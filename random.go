package nanoid

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
)

// RandomSource produces random bytes on demand. Fill must either fill all
// of p or return an error; it must never hand back partially filled or
// zeroed output as success.
type RandomSource interface {
	Fill(p []byte) error
}

// SourceFunc adapts a function to RandomSource.
type SourceFunc func(p []byte) error

// Fill calls f(p).
func (f SourceFunc) Fill(p []byte) error { return f(p) }

// errNilReader is returned by a ReaderSource built around a nil reader.
var errNilReader = errors.New("nil reader")

// readerSource reads from an io.Reader. Short reads are errors.
type readerSource struct {
	r io.Reader
}

// ReaderSource returns a RandomSource that reads from r. It does not
// synchronize access to r.
func ReaderSource(r io.Reader) RandomSource {
	return &readerSource{r: r}
}

func (s *readerSource) Fill(p []byte) error {
	if s.r == nil {
		return errNilReader
	}
	if _, err := io.ReadFull(s.r, p); err != nil {
		return fmt.Errorf("reading %d random bytes: %w", len(p), err)
	}
	return nil
}

// CryptoSource returns a RandomSource that reads directly from crypto/rand.
// It is safe for concurrent use.
func CryptoSource() RandomSource {
	return ReaderSource(crand.Reader)
}

// chachaSource is a ChaCha8 stream guarded by a mutex, so a single stream
// can be shared by concurrent generators without losing or repeating state.
type chachaSource struct {
	mu  sync.Mutex
	gen *rand.ChaCha8
}

// NewChaCha8Source returns a RandomSource that draws from a ChaCha8 stream
// initialised with seed. Equal seeds yield equal byte streams, which makes
// it suitable for reproducible runs. It is safe for concurrent use.
func NewChaCha8Source(seed [32]byte) RandomSource {
	return &chachaSource{gen: rand.NewChaCha8(seed)}
}

func (s *chachaSource) Fill(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.gen.Read(p); err != nil {
		return fmt.Errorf("reading chacha8 stream: %w", err)
	}
	return nil
}

// seedError keeps reporting a failed process seed on every Fill.
type seedError struct {
	err error
}

func (s seedError) Fill(_ []byte) error { return s.err }

var defaultSource = sync.OnceValue(func() RandomSource {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return seedError{err: fmt.Errorf("seeding default source: %w", err)}
	}
	return NewChaCha8Source(seed)
})

// DefaultSource returns the process-wide random source: a ChaCha8 stream
// seeded once from crypto/rand and serialized by a mutex. It is created on
// first use and lives for the rest of the process.
func DefaultSource() RandomSource {
	return defaultSource()
}
