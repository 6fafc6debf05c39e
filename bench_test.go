package nanoid_test

import (
	"testing"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/hustcer/nanoid"
	"github.com/hustcer/nanoid/alphabet"
)

func BenchmarkGenerate(b *testing.B) {
	for b.Loop() {
		if _, err := nanoid.Generate(alphabet.URLSafe, nanoid.DefaultSize, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Crypto(b *testing.B) {
	src := nanoid.CryptoSource()
	for b.Loop() {
		if _, err := nanoid.Generate(alphabet.URLSafe, nanoid.DefaultSize, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerator(b *testing.B) {
	g, err := nanoid.New(alphabet.NoLookAlikes, nanoid.DefaultSize)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := nanoid.Generate(alphabet.URLSafe, nanoid.DefaultSize, nil); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkGoNanoid is the reference implementation at the same settings.
func BenchmarkGoNanoid(b *testing.B) {
	for b.Loop() {
		if _, err := gonanoid.Generate(alphabet.URLSafe, nanoid.DefaultSize); err != nil {
			b.Fatal(err)
		}
	}
}

// TestGoNanoidAgreesOnShape cross-checks output length and membership
// against the go-nanoid package for the same alphabet.
func TestGoNanoidAgreesOnShape(t *testing.T) {
	ref, err := gonanoid.Generate(alphabet.NoLookAlikesSafe, 16)
	if err != nil {
		t.Fatalf("gonanoid.Generate: %v", err)
	}
	ours, err := nanoid.Generate(alphabet.NoLookAlikesSafe, 16, nil)
	if err != nil {
		t.Fatalf("nanoid.Generate: %v", err)
	}
	if len(ref) != len(ours) {
		t.Errorf("length mismatch: go-nanoid %d, ours %d", len(ref), len(ours))
	}
	want := nanoid.Alphabet([]rune(alphabet.NoLookAlikesSafe))
	for _, id := range []string{ref, ours} {
		for _, r := range id {
			if !want.Contains(r) {
				t.Errorf("%q contains %q outside the alphabet", id, r)
			}
		}
	}
}
