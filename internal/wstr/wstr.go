// Package wstr converts between Go strings and the NUL-terminated
// UTF-16 sequences the registry API takes for key paths and value
// names. Conversion failures are reported before any system call is
// made with the result.
package wstr

import (
	"errors"
	"unicode/utf16"
)

// ErrEmbeddedNUL reports a string that cannot be represented as a
// NUL-terminated UTF-16 sequence.
var ErrEmbeddedNUL = errors.New("string contains embedded NUL")

// FromString converts s to UTF-16 with a trailing NUL. Strings with
// interior NUL characters would silently truncate at the system
// boundary and are rejected instead.
func FromString(s string) ([]uint16, error) {
	for _, r := range s {
		if r == 0 {
			return nil, ErrEmbeddedNUL
		}
	}
	return utf16.Encode([]rune(s + "\x00")), nil
}

// ToString decodes a UTF-16 sequence, stopping at the first NUL.
// Unpaired surrogates decode to the replacement character.
func ToString(u []uint16) string {
	for i, c := range u {
		if c == 0 {
			u = u[:i]
			break
		}
	}
	return string(utf16.Decode(u))
}
