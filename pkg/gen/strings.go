package gen

import (
	"fmt"
	mathrand "math/rand/v2"
)

// Character sets for the string generators.
const (
	charsetAlphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	charsetLowerSnake   = "abcdefghijklmnopqrstuvwxyz_"
)

// String returns a generator of strings drawn from the given alphabet with a
// length uniform over [minLen, maxLen]. Panics on an empty alphabet or
// inverted bounds.
func String(alphabet string, minLen, maxLen int) Gen[string] {
	if alphabet == "" {
		panic("gen: String requires a non-empty alphabet")
	}
	if maxLen < minLen || minLen < 0 {
		panic(fmt.Sprintf("gen: String length bounds invalid: [%d, %d]", minLen, maxLen))
	}
	return New(func(r *mathrand.Rand) (string, error) {
		n := minLen + r.IntN(maxLen-minLen+1)
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[r.IntN(len(alphabet))]
		}
		return string(b), nil
	})
}

// Alphanumeric returns a generator of mixed-case alphanumeric strings with a
// length uniform over [minLen, maxLen].
func Alphanumeric(minLen, maxLen int) Gen[string] {
	return String(charsetAlphanumeric, minLen, maxLen)
}

// LowerSnake returns a generator of lowercase-letter-and-underscore tokens
// with a length uniform over [minLen, maxLen].
func LowerSnake(minLen, maxLen int) Gen[string] {
	return String(charsetLowerSnake, minLen, maxLen)
}

// ASCII returns a generator of printable ASCII text (space through tilde)
// with a length uniform over [minLen, maxLen].
func ASCII(minLen, maxLen int) Gen[string] {
	if maxLen < minLen || minLen < 0 {
		panic(fmt.Sprintf("gen: ASCII length bounds invalid: [%d, %d]", minLen, maxLen))
	}
	return New(func(r *mathrand.Rand) (string, error) {
		n := minLen + r.IntN(maxLen-minLen+1)
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(' ' + r.IntN('~'-' '+1))
		}
		return string(b), nil
	})
}
