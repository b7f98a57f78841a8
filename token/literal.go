package token

import (
	"fmt"
	"strings"
)

// ValidBare reports whether s can stand unquoted as a string scalar:
// non-empty, no structural or control characters, and no whitespace at either
// end. Collisions with reserved words and numbers are not checked here;
// readers try those readings first.
func ValidBare(s string) bool {
	if s == "" {
		return false
	}
	if c := s[0]; c == ' ' || c == '\t' {
		return false
	}
	if c := s[len(s)-1]; c == ' ' || c == '\t' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || strings.IndexByte(structuralChars, c) != -1 {
			return false
		}
	}
	return true
}

// DecodeKey decodes a key or column name: a quoted literal, or a bare string
// that would not have needed quoting.
func DecodeKey(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrBadKey)
	}
	if s[0] == QuoteChar {
		return Unquote(s)
	}
	if NeedsQuote(s) {
		return "", fmt.Errorf("%w: %q must be quoted", ErrBadKey, s)
	}
	return s, nil
}

// FormatKey renders a key or column name, quoting only when necessary.
func FormatKey(k string) string {
	if NeedsQuote(k) {
		return Quote(k)
	}
	return k
}

// FormatString renders a string scalar, quoting only when necessary.
func FormatString(s string) string {
	if NeedsQuote(s) {
		return Quote(s)
	}
	return s
}
