package token

import (
	"fmt"
	"strings"
)

// Scan splits a document into significant lines, validating indentation.
// Lines that are empty or all-whitespace are dropped. A trailing "\r" is
// tolerated so CRLF input scans like LF input. Indentation must consist of
// spaces only and be an exact multiple of IndentUnit; the first significant
// line must start at depth zero.
func Scan(d []byte) ([]Line, error) {
	var res []Line
	for i, raw := range strings.Split(string(d), "\n") {
		num := i + 1
		raw = strings.TrimSuffix(raw, "\r")
		if strings.TrimRight(raw, " \t") == "" {
			continue
		}
		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		if raw[indent] == '\t' {
			return nil, NewError(fmt.Errorf("%w: tab in indentation", ErrIndentation), num)
		}
		if indent%IndentUnit != 0 {
			return nil, NewError(fmt.Errorf("%w: %d spaces is not a multiple of %d", ErrIndentation, indent, IndentUnit), num)
		}
		res = append(res, Line{Num: num, Depth: indent / IndentUnit, Content: raw[indent:]})
	}
	if len(res) == 0 {
		return nil, NewError(ErrEmptyDoc, 1)
	}
	if res[0].Depth != 0 {
		return nil, NewError(fmt.Errorf("%w: first line is indented", ErrIndentation), res[0].Num)
	}
	return res, nil
}
