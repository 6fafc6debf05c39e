package nanoid

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachedAlphabet is a validated alphabet together with its sampling mask.
type CachedAlphabet struct {
	Alphabet Alphabet
	Mask     byte
}

// Cache memoizes validated alphabets by their raw string. Entries are
// never modified after insertion and every read hands out a copy, so
// callers cannot corrupt the stored alphabet. A Cache is safe for
// concurrent use; the zero value is ready to use.
type Cache struct {
	entries sync.Map // raw string -> *CachedAlphabet
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// defaultCache backs Generate and New when no cache is supplied.
var defaultCache = NewCache()

// Get returns the validated form of raw, validating and storing it on the
// first request. Validation errors are returned as is and are not cached.
func (c *Cache) Get(raw string) (CachedAlphabet, error) {
	if v, ok := c.entries.Load(raw); ok {
		return v.(*CachedAlphabet).copy(), nil
	}

	// Concurrent first requests for the same alphabet share one validation.
	v, err, _ := c.group.Do(raw, func() (any, error) {
		if v, ok := c.entries.Load(raw); ok {
			return v, nil
		}
		chars, err := ValidateAlphabet(raw)
		if err != nil {
			return nil, err
		}
		entry := &CachedAlphabet{Alphabet: chars, Mask: MaskFor(len(chars))}
		actual, _ := c.entries.LoadOrStore(raw, entry)
		return actual, nil
	})
	if err != nil {
		return CachedAlphabet{}, err
	}
	return v.(*CachedAlphabet).copy(), nil
}

// Len returns the number of cached alphabets.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (ca *CachedAlphabet) copy() CachedAlphabet {
	return CachedAlphabet{Alphabet: ca.Alphabet.Clone(), Mask: ca.Mask}
}
