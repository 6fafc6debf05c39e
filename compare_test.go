package nanoid_test

import (
	"testing"

	"github.com/hustcer/nanoid"
)

func TestConstantTimeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal ascii", "V1StGXR8_Z5jdHi6B-myT", "V1StGXR8_Z5jdHi6B-myT", true},
		{"both empty", "", "", true},
		{"last character differs", "abc", "abd", false},
		{"first character differs", "xbc", "abc", false},
		{"prefix", "abc", "abcd", false},
		{"empty versus non-empty", "", "a", false},
		{"trailing nul is not padding", "a", "a\x00", false},
		{"equal emoji", "😀abc", "😀abc", true},
		{"emoji then difference", "😀abc", "😀abd", false},
		{"same bytes count, different runes", "é", "ab", false},
		{"case matters", "ABC", "abc", false},
		{"different invalid bytes", "tok\xff", "tok\xfe", false},
		{"invalid byte versus replacement character", "\xff", "\uFFFD", false},
		{"same invalid bytes", "tok\xff\xfe", "tok\xff\xfe", true},
		{"truncated emoji versus whole", "\xf0\x9f\x98", "\U0001F600", false},
		{"replacement characters", "\uFFFD\uFFFD", "\uFFFD\uFFFD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nanoid.ConstantTimeEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("ConstantTimeEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := nanoid.ConstantTimeEqual(tt.b, tt.a); got != tt.want {
				t.Errorf("ConstantTimeEqual(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestConstantTimeEqual_GeneratedIDs(t *testing.T) {
	id := nanoid.MustGenerate("0123456789abcdef", 32)
	if !nanoid.ConstantTimeEqual(id, id) {
		t.Errorf("ID %q not equal to itself", id)
	}
	other := nanoid.MustGenerate("0123456789abcdef", 32)
	if id != other && nanoid.ConstantTimeEqual(id, other) {
		t.Errorf("distinct IDs %q and %q reported equal", id, other)
	}
}
