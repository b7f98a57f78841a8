package token

import (
	"fmt"
	"strconv"
	"strings"
)

// IsNumber reports whether s is, in its entirety, a number literal:
// an optional minus sign, an integer part with no leading zero, an optional
// fraction, and an optional exponent. Strings for which this returns true
// must be quoted to be read back as strings.
func IsNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	if i >= len(s) || !isDigit(s[i]) {
		return false
	}
	if s[i] == '0' {
		i++
	} else {
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ParseNumber parses a complete number literal. isInt reports that the
// literal had no fraction or exponent and fits int64; otherwise f holds the
// value. Integer literals beyond the int64 range degrade to float64.
func ParseNumber(s string) (i int64, f float64, isInt bool, err error) {
	if !IsNumber(s) {
		return 0, 0, false, fmt.Errorf("%w: %q is not a number", ErrInvalidLiteral, s)
	}
	if !strings.ContainsAny(s, ".eE") {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v, 0, true, nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: %q: %v", ErrInvalidLiteral, s, err)
	}
	return 0, v, false, nil
}

// FormatInt renders an integer literal.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatFloat renders a float literal in shortest form, appending ".0" when
// the result would otherwise read back as an integer. NaN and infinities are
// not renderable; the encoder rejects them before reaching here.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
