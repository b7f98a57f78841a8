package token

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// structuralChars are the bytes that give a bare string a second reading, so
// any string containing one of them must be quoted.
const structuralChars = `"\,:[]{}`

// NeedsQuote reports whether s must be quoted to survive a round trip. The
// decoder recovers scalars in the order quoted string, reserved word, number,
// bare string; NeedsQuote is true exactly when the bare rendering of s would
// be read back as something else, or would collide with the line structure.
func NeedsQuote(s string) bool {
	switch {
	case s == "":
		return true
	case s == Null || s == True || s == False:
		return true
	case IsNumber(s):
		return true
	case s == "-" || strings.HasPrefix(s, ItemMarker):
		return true
	}
	c := s[0]
	if c == ' ' || c == '\t' {
		return true
	}
	c = s[len(s)-1]
	if c == ' ' || c == '\t' {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || strings.IndexByte(structuralChars, c) != -1 {
			return true
		}
	}
	return false
}

// Quote renders s as a quoted string literal with JSON-style escapes.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(QuoteChar)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case QuoteChar:
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, c)
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(QuoteChar)
	return sb.String()
}

// QuotedEnd returns the index just past the closing quote of the quoted
// literal beginning at s[0], which must be QuoteChar.
func QuotedEnd(s string) (int, error) {
	if len(s) == 0 || s[0] != QuoteChar {
		return 0, fmt.Errorf("%w: not a quoted string", ErrUnterminatedQuote)
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case QuoteChar:
			return i + 1, nil
		}
	}
	return 0, ErrUnterminatedQuote
}

// Unquote decodes a complete quoted literal, including its delimiters.
func Unquote(s string) (string, error) {
	end, err := QuotedEnd(s)
	if err != nil {
		return "", err
	}
	if end != len(s) {
		return "", fmt.Errorf("%w: %q after closing quote", ErrInvalidLiteral, s[end:])
	}
	return unescape(s[1 : len(s)-1])
}

func unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') == -1 {
		return s, nil
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i == len(s) {
			return "", fmt.Errorf("%w: dangling backslash", ErrBadEscape)
		}
		switch s[i] {
		case QuoteChar:
			sb.WriteByte(QuoteChar)
		case '\\':
			sb.WriteByte('\\')
		case '/':
			sb.WriteByte('/')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'u':
			r, n, err := unescapeUnicode(s[i+1:])
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += n
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, s[i])
		}
	}
	return sb.String(), nil
}

// unescapeUnicode decodes the hex digits of a \uXXXX escape, pairing
// surrogates when a second escape follows. s starts after the 'u'; n is the
// number of bytes consumed beyond it.
func unescapeUnicode(s string) (r rune, n int, err error) {
	u, err := hex4(s)
	if err != nil {
		return 0, 0, err
	}
	r, n = rune(u), 4
	if !utf16.IsSurrogate(r) {
		return r, n, nil
	}
	if len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		u2, err := hex4(s[6:])
		if err != nil {
			return 0, 0, err
		}
		if dec := utf16.DecodeRune(r, rune(u2)); dec != utf8.RuneError {
			return dec, 10, nil
		}
	}
	return utf8.RuneError, n, nil
}

func hex4(s string) (uint32, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("%w: short \\u escape", ErrBadEscape)
	}
	var u uint32
	for i := 0; i < 4; i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			u = u<<4 | uint32(c-'0')
		case 'a' <= c && c <= 'f':
			u = u<<4 | uint32(c-'a'+10)
		case 'A' <= c && c <= 'F':
			u = u<<4 | uint32(c-'A'+10)
		default:
			return 0, fmt.Errorf("%w: non-hex digit %q in \\u escape", ErrBadEscape, c)
		}
	}
	return u, nil
}
