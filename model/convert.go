package model

import (
	"fmt"
	"unicode/utf8"
)

// DecodePolicy selects how malformed UTF-8 input is handled.
type DecodePolicy uint8

const (
	// DecodeStrict rejects malformed input with ErrInvalidUTF8.
	DecodeStrict DecodePolicy = iota
	// DecodeReplace substitutes U+FFFD for each invalid byte.
	DecodeReplace
)

func (p DecodePolicy) String() string {
	switch p {
	case DecodeStrict:
		return "strict"
	case DecodeReplace:
		return "replace"
	default:
		return fmt.Sprintf("DecodePolicy(%d)", uint8(p))
	}
}

// ParseDecodePolicy maps "strict" and "replace" to their policies.
// The empty string selects DecodeStrict.
func ParseDecodePolicy(s string) (DecodePolicy, bool) {
	switch s {
	case "", "strict":
		return DecodeStrict, true
	case "replace":
		return DecodeReplace, true
	default:
		return DecodeStrict, false
	}
}

func validDecodePolicy(p DecodePolicy) bool {
	return p == DecodeStrict || p == DecodeReplace
}

// Decode converts UTF-8 text into codepoints.
func Decode(s string, p DecodePolicy) ([]rune, error) {
	if utf8.ValidString(s) {
		return []rune(s), nil
	}
	if p == DecodeReplace {
		// Conversion yields utf8.RuneError for every invalid byte.
		return []rune(s), nil
	}
	return nil, fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, invalidOffset(s))
}

// Encode converts codepoints back to UTF-8. Non-BMP scalar values are
// encoded as single 4-byte sequences.
func Encode(r []rune) string {
	return string(r)
}

func invalidOffset(s string) int {
	for off := 0; off < len(s); {
		r, size := utf8.DecodeRuneInString(s[off:])
		if r == utf8.RuneError && size <= 1 {
			return off
		}
		off += size
	}
	return len(s)
}

// validRune reports whether r is a Unicode scalar value.
func validRune(r rune) bool {
	return utf8.ValidRune(r)
}
