package token

import (
	"errors"
	"testing"
)

func TestScan(t *testing.T) {
	doc := "a: 1\nb:\n  c: 2\n\n  d: 3\n"
	lines, err := Scan([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{
		{Num: 1, Depth: 0, Content: "a: 1"},
		{Num: 2, Depth: 0, Content: "b:"},
		{Num: 3, Depth: 1, Content: "c: 2"},
		{Num: 5, Depth: 1, Content: "d: 3"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestScanCRLF(t *testing.T) {
	lines, err := Scan([]byte("a: 1\r\nb: 2\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1].Content != "b: 2" {
		t.Errorf("got %+v", lines)
	}
}

func TestScanErrs(t *testing.T) {
	for _, tc := range []struct {
		doc  string
		want error
		line int
	}{
		{"", ErrEmptyDoc, 1},
		{"\n  \n", ErrEmptyDoc, 1},
		{"a:\n\tb: 1\n", ErrIndentation, 2},
		{"a:\n   b: 1\n", ErrIndentation, 2},
		{"  a: 1\n", ErrIndentation, 1},
	} {
		_, err := Scan([]byte(tc.doc))
		if !errors.Is(err, tc.want) {
			t.Errorf("Scan(%q) = %v, want %v", tc.doc, err, tc.want)
			continue
		}
		var te *Error
		if !errors.As(err, &te) || te.Line != tc.line {
			t.Errorf("Scan(%q) reported %v, want line %d", tc.doc, err, tc.line)
		}
	}
}
