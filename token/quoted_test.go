package token

import (
	"errors"
	"testing"
)

func TestNeedsQuote(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true},
		{"null", true},
		{"true", true},
		{"false", true},
		{"nullish", false},
		{"42", true},
		{"-3.5", true},
		{"1e-9", true},
		{"012", false},
		{"4two", false},
		{"Pune", false},
		{"New York", false},
		{"#trending", false},
		{"# not a comment", false},
		{" padded", true},
		{"padded ", true},
		{"a,b", true},
		{"a:b", true},
		{`say "hi"`, true},
		{`back\slash`, true},
		{"[0]", true},
		{"{}", true},
		{"line\nbreak", true},
		{"tab\there", true},
		{"-", true},
		{"- item", true},
		{"-dash", false},
	} {
		if got := NeedsQuote(tc.in); got != tc.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, in := range []string{
		"",
		"plain",
		"with \"quotes\"",
		"back\\slash",
		"multi\nline\twith\rcontrols",
		"bell\x07end",
		"unicode: é世\U0001f600",
	} {
		q := Quote(in)
		got, err := Unquote(q)
		if err != nil {
			t.Fatalf("Unquote(%q): %v", q, err)
		}
		if got != in {
			t.Errorf("round trip %q -> %q -> %q", in, q, got)
		}
	}
}

func TestQuoteForm(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", `""`},
		{"a,b", `"a,b"`},
		{"line\nbreak", `"line\nbreak"`},
		{`say "hi"`, `"say \"hi\""`},
		{"bell\x07end", `"bell\u0007end"`},
	} {
		if got := Quote(tc.in); got != tc.want {
			t.Errorf("Quote(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestUnquoteErrs(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{`"open`, ErrUnterminatedQuote},
		{`"esc\`, ErrUnterminatedQuote},
		{`"a"b`, ErrInvalidLiteral},
		{`"\q"`, ErrBadEscape},
		{`"\u12"`, ErrBadEscape},
		{`"\uzzzz"`, ErrBadEscape},
	} {
		if _, err := Unquote(tc.in); !errors.Is(err, tc.want) {
			t.Errorf("Unquote(%q) = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestUnquoteSurrogatePair(t *testing.T) {
	got, err := Unquote(`"\ud83d\ude00"`)
	if err != nil {
		t.Fatal(err)
	}
	if got != "\U0001f600" {
		t.Errorf("got %q", got)
	}
}
