package token

import (
	"errors"
	"reflect"
	"testing"
)

func TestCutKey(t *testing.T) {
	for _, tc := range []struct {
		in        string
		key, rest string
		ok        bool
	}{
		{"id: 1", "id", ": 1", true},
		{"meta:", "meta", ":", true},
		{"tags[2]: a,b", "tags", "[2]: a,b", true},
		{`"a,b": 1`, "a,b", ": 1", true},
		{`"": x`, "", ": x", true},
		{"[3]:", "", "[3]:", true},
		{"plain scalar", "", "", false},
		{`"all quoted"`, "", "", false},
		{"42", "", "", false},
	} {
		key, rest, ok, err := CutKey(tc.in)
		if err != nil {
			t.Errorf("CutKey(%q): %v", tc.in, err)
			continue
		}
		if key != tc.key || rest != tc.rest || ok != tc.ok {
			t.Errorf("CutKey(%q) = %q, %q, %v; want %q, %q, %v",
				tc.in, key, rest, ok, tc.key, tc.rest, tc.ok)
		}
	}
}

func TestCutKeyErrs(t *testing.T) {
	for _, in := range []string{
		": 1",          // empty bare key
		"123: 1",       // numeric key must be quoted
		"a b : 1",      // trailing space in key
		`"open: 1`,     // unterminated quoted key
		`"q" extra: 1`, // junk between quoted key and separator
	} {
		if _, _, _, err := CutKey(in); err == nil {
			t.Errorf("CutKey(%q) should fail", in)
		}
	}
}

func TestParseHeader(t *testing.T) {
	for _, tc := range []struct {
		in     string
		count  int
		cols   []string
		inline string
	}{
		{"[0]:", 0, nil, ""},
		{"[3]:", 3, nil, ""},
		{"[3]: 1,2,3", 3, nil, "1,2,3"},
		{"[2]{id,name}:", 2, []string{"id", "name"}, ""},
		{`[1]{"a,b",c}:`, 1, []string{"a,b", "c"}, ""},
	} {
		count, cols, inline, err := ParseHeader(tc.in)
		if err != nil {
			t.Errorf("ParseHeader(%q): %v", tc.in, err)
			continue
		}
		if count != tc.count || !reflect.DeepEqual(cols, tc.cols) || inline != tc.inline {
			t.Errorf("ParseHeader(%q) = %d, %v, %q; want %d, %v, %q",
				tc.in, count, cols, inline, tc.count, tc.cols, tc.inline)
		}
	}
}

func TestParseHeaderErrs(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"[]:", ErrBadHeader},
		{"[2:", ErrBadHeader},
		{"[02]:", ErrLeadingZero},
		{"[-1]:", ErrBadHeader},
		{"[2]", ErrBadHeader},
		{"[2]{id:", ErrBadHeader},
		{"[2]{}:", ErrBadKey},
		{"[2]:x", ErrBadHeader},
		{"[2]: ", ErrBadHeader},
	} {
		if _, _, _, err := ParseHeader(tc.in); !errors.Is(err, tc.want) {
			t.Errorf("ParseHeader(%q) = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestHeaderSuffix(t *testing.T) {
	if got := HeaderSuffix(2, []string{"id", "name"}); got != "[2]{id,name}:" {
		t.Errorf("got %q", got)
	}
	if got := HeaderSuffix(0, nil); got != "[0]:" {
		t.Errorf("got %q", got)
	}
	if got := HeaderSuffix(1, []string{"a,b"}); got != `[1]{"a,b"}:` {
		t.Errorf("got %q", got)
	}
}

func TestSplitCells(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{"1,Pune", []string{"1", "Pune"}},
		{"1, Pune", []string{"1", "Pune"}},
		{`"a,b",c`, []string{`"a,b"`, "c"}},
		{"solo", []string{"solo"}},
		{"a,,b", []string{"a", "", "b"}},
	} {
		got, err := SplitCells(tc.in)
		if err != nil {
			t.Errorf("SplitCells(%q): %v", tc.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitCells(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := SplitCells(`"open,`); !errors.Is(err, ErrUnterminatedQuote) {
		t.Errorf("unterminated cell quote: %v", err)
	}
}
