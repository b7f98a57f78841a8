package token

import (
	"fmt"
	"strconv"
	"strings"
)

// CutKey lexes the key at the start of a line's content, returning the
// decoded key and the rest starting at ':' or '['. ok is false when the
// content is not a key line at all (a bare or quoted scalar), which is only
// legal at the document root. An anonymous array header ("[N]...") comes back
// with ok true, an empty key, and rest equal to content.
func CutKey(content string) (key, rest string, ok bool, err error) {
	if content == "" {
		return "", "", false, nil
	}
	switch content[0] {
	case '[':
		return "", content, true, nil
	case QuoteChar:
		end, err := QuotedEnd(content)
		if err != nil {
			return "", "", false, err
		}
		if end == len(content) {
			// a quoted scalar, not a key
			return "", "", false, nil
		}
		r := content[end:]
		if r[0] != ':' && r[0] != '[' {
			return "", "", false, fmt.Errorf("%w: expected ':' or '[' after quoted key", ErrBadKey)
		}
		k, err := unescape(content[1 : end-1])
		if err != nil {
			return "", "", false, err
		}
		return k, r, true, nil
	}
	i := strings.IndexAny(content, ":[")
	if i == -1 {
		return "", "", false, nil
	}
	key = content[:i]
	if NeedsQuote(key) {
		return "", "", false, fmt.Errorf("%w: %q must be quoted", ErrBadKey, key)
	}
	return key, content[i:], true, nil
}

// ParseHeader parses an array header from rest, which starts at '['. cols is
// nil for a list or inline header and non-nil for a tabular one. inline is
// the text after ": ", empty when the header ends at the colon.
func ParseHeader(rest string) (count int, cols []string, inline string, err error) {
	if rest == "" || rest[0] != '[' {
		return 0, nil, "", fmt.Errorf("%w: expected '['", ErrBadHeader)
	}
	i := strings.IndexByte(rest, ']')
	if i == -1 {
		return 0, nil, "", fmt.Errorf("%w: missing ']'", ErrBadHeader)
	}
	ns := rest[1:i]
	if ns == "" {
		return 0, nil, "", fmt.Errorf("%w: missing length", ErrBadHeader)
	}
	if len(ns) > 1 && ns[0] == '0' {
		return 0, nil, "", fmt.Errorf("%w in length %q", ErrLeadingZero, ns)
	}
	for j := 0; j < len(ns); j++ {
		if !isDigit(ns[j]) {
			return 0, nil, "", fmt.Errorf("%w: bad length %q", ErrBadHeader, ns)
		}
	}
	count, err = strconv.Atoi(ns)
	if err != nil {
		return 0, nil, "", fmt.Errorf("%w: bad length %q", ErrBadHeader, ns)
	}
	r := rest[i+1:]
	if strings.HasPrefix(r, "{") {
		j, err := columnsEnd(r)
		if err != nil {
			return 0, nil, "", err
		}
		cols, err = splitColumns(r[1:j])
		if err != nil {
			return 0, nil, "", err
		}
		r = r[j+1:]
	}
	if r == "" || r[0] != ':' {
		return 0, nil, "", fmt.Errorf("%w: missing ':'", ErrBadHeader)
	}
	r = r[1:]
	switch {
	case r == "":
		return count, cols, "", nil
	case r[0] != ' ':
		return 0, nil, "", fmt.Errorf("%w: expected a space after ':'", ErrBadHeader)
	case r[1:] == "":
		return 0, nil, "", fmt.Errorf("%w: trailing space after ':'", ErrBadHeader)
	}
	return count, cols, r[1:], nil
}

// columnsEnd returns the index of the '}' closing the column list opened at
// r[0], skipping quoted column names.
func columnsEnd(r string) (int, error) {
	i := 1
	for i < len(r) {
		switch r[i] {
		case '}':
			return i, nil
		case QuoteChar:
			end, err := QuotedEnd(r[i:])
			if err != nil {
				return 0, err
			}
			i += end
		default:
			i++
		}
	}
	return 0, fmt.Errorf("%w: missing '}'", ErrBadHeader)
}

func splitColumns(s string) ([]string, error) {
	raw, err := SplitCells(s)
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(raw))
	for i, c := range raw {
		cols[i], err = DecodeKey(c)
		if err != nil {
			return nil, err
		}
	}
	return cols, nil
}

// HeaderSuffix renders the [N]{c1,c2}: part of an array header. The caller
// prepends the key, if any.
func HeaderSuffix(count int, cols []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d]", count)
	if cols != nil {
		sb.WriteByte('{')
		for i, c := range cols {
			if i > 0 {
				sb.WriteByte(Delim)
			}
			sb.WriteString(FormatKey(c))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte(':')
	return sb.String()
}

// SplitCells splits s on delimiters outside quoted regions and trims the
// whitespace around each cell, so "1, Pune" reads like "1,Pune".
func SplitCells(s string) ([]string, error) {
	var cells []string
	start, i := 0, 0
	for i < len(s) {
		switch s[i] {
		case Delim:
			cells = append(cells, strings.Trim(s[start:i], " \t"))
			i++
			start = i
		case QuoteChar:
			end, err := QuotedEnd(s[i:])
			if err != nil {
				return nil, err
			}
			i += end
		default:
			i++
		}
	}
	return append(cells, strings.Trim(s[start:], " \t")), nil
}
