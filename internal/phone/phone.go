// Package phone derives the canonical comparison key used to decide whether
// two phone numbers belong to the same person.
//
// The key is the last 10 significant digits of a number after removing every
// non-digit and every leading zero. It tolerates country-code prefixes and
// trunk zeros but it is not an E.164 parser: two international numbers that
// share a trailing subscriber number normalize to the same key.
package phone

import "strings"

const (
	// KeyLength is the maximum number of digits kept in a key.
	KeyLength = 10

	// MaxDigits is the longest digits-only number accepted for storage.
	MaxDigits = 15
)

// Normalize returns the comparison key of raw. Empty or digit-free input
// yields an empty key, which never matches anything.
func Normalize(raw string) string {
	digits := strings.TrimLeft(Digits(raw), "0")
	if len(digits) > KeyLength {
		digits = digits[len(digits)-KeyLength:]
	}
	return digits
}

// Digits returns raw with every non-digit character removed. This is the
// storage form of a phone number.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Same reports whether a and b normalize to the same non-empty key.
func Same(a, b string) bool {
	ka := Normalize(a)
	return ka != "" && ka == Normalize(b)
}

// IsComplete reports whether raw normalizes to a full-length key.
func IsComplete(raw string) bool {
	return len(Normalize(raw)) >= KeyLength
}
