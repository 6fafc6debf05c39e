// Package alphabet lists commonly used nanoid alphabets.
package alphabet

import "sort"

const (
	// Numbers is the ten decimal digits.
	Numbers = "0123456789"
	// Lowercase is the ASCII lowercase letters.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	// Uppercase is the ASCII uppercase letters.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Alphanumeric is digits followed by lowercase and uppercase letters.
	Alphanumeric = Numbers + Lowercase + Uppercase
	// Hex is lowercase hexadecimal.
	Hex = "0123456789abcdef"
	// HexUpper is uppercase hexadecimal.
	HexUpper = "0123456789ABCDEF"
	// URLSafe is the 64-character default nanoid alphabet. Its order is
	// shuffled so that generated IDs compress poorly as text.
	URLSafe = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"
	// NoLookAlikes drops characters that are easy to confuse: 1, l, I, 0,
	// O, o, u, v, 5, S, s, 2, Z.
	NoLookAlikes = "346789ABCDEFGHJKLMNPQRTUVWXYabcdefghijkmnopqrtwxyz"
	// NoLookAlikesSafe additionally drops vowels and a few more letters so
	// that IDs cannot spell words.
	NoLookAlikesSafe = "6789BCDFGHJKLMNPQRTWbcdfghjkmnpqrtwz"
	// Base58 is the Bitcoin base58 alphabet.
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	// Base62 is digits, uppercase, then lowercase letters.
	Base62 = Numbers + Uppercase + Lowercase
)

var presets = map[string]string{
	"numbers":             Numbers,
	"lowercase":           Lowercase,
	"uppercase":           Uppercase,
	"alphanumeric":        Alphanumeric,
	"hex":                 Hex,
	"hex-upper":           HexUpper,
	"url-safe":            URLSafe,
	"no-look-alikes":      NoLookAlikes,
	"no-look-alikes-safe": NoLookAlikesSafe,
	"base58":              Base58,
	"base62":              Base62,
}

// Lookup returns the alphabet registered under name.
func Lookup(name string) (string, bool) {
	a, ok := presets[name]
	return a, ok
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
