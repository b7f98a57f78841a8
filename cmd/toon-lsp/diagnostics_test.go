package main

import (
	"testing"

	"go.lsp.dev/protocol"
)

func change(sl, sc, el, ec uint32, text string) protocol.TextDocumentContentChangeEvent {
	return protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: protocol.Position{Line: sl, Character: sc},
			End:   protocol.Position{Line: el, Character: ec},
		},
		Text: text,
	}
}

func TestApplyChange(t *testing.T) {
	tests := []struct {
		name    string
		content string
		change  protocol.TextDocumentContentChangeEvent
		want    string
	}{
		{
			"insert at top keeps the rest",
			"b: 2\n",
			change(0, 0, 0, 0, "a: 1\n"),
			"a: 1\nb: 2\n",
		},
		{
			"replace on second line",
			"a: 1\nb: 2\n",
			change(1, 3, 1, 4, "7"),
			"a: 1\nb: 7\n",
		},
		{
			"delete across lines",
			"a: 1\nb: 2\nc: 3\n",
			change(0, 4, 1, 4, ""),
			"a: 1\nc: 3\n",
		},
		{
			"multi-byte rune before the edit",
			"k: héllo\n",
			change(0, 4, 0, 5, "e"),
			"k: hello\n",
		},
		{
			"astral rune counts two column units",
			"k: \U0001d50ax\n",
			change(0, 5, 0, 6, "y"),
			"k: \U0001d50ay\n",
		},
		{
			"append at end of file",
			"a: 1\n",
			change(1, 0, 1, 0, "b: 2\n"),
			"a: 1\nb: 2\n",
		},
		{
			"out of bounds range is ignored",
			"a: 1\n",
			change(9, 0, 0, 0, "junk"),
			"a: 1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyChange(tt.content, tt.change); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOffsetAt(t *testing.T) {
	content := "aé\U0001d50a\nb\n"
	tests := []struct {
		line, char uint32
		want       int
	}{
		{0, 0, 0},
		{0, 1, 1},  // after "a"
		{0, 2, 3},  // after "é" (two bytes, one unit)
		{0, 4, 7},  // after the astral rune (four bytes, two units)
		{0, 99, 7}, // clamped at end of line
		{1, 0, 8},
		{1, 1, 9},
	}
	for _, tt := range tests {
		got := offsetAt(content, protocol.Position{Line: tt.line, Character: tt.char})
		if got != tt.want {
			t.Errorf("offsetAt(%d:%d) = %d, want %d", tt.line, tt.char, got, tt.want)
		}
	}
}
