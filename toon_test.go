package toon

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/deccan-format/toon/encode"
	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/parse"
)

func TestMarshalTabular(t *testing.T) {
	got, err := Marshal([]any{
		map[string]any{"id": int64(1), "name": "Pune"},
		map[string]any{"id": int64(2), "name": "Mumbai"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "[2]{id,name}:\n  1,Pune\n  2,Mumbai\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnmarshal(t *testing.T) {
	got, err := Unmarshal("items[2]{id,name}:\n  1,Pune\n  2,Mumbai\n")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"items": []any{
			map[string]any{"id": int64(1), "name": "Pune"},
			map[string]any{"id": int64(2), "name": "Mumbai"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected value (-want +got):\n%s", diff)
	}
}

func TestRoundTripValues(t *testing.T) {
	for _, v := range []any{
		nil,
		true,
		int64(-42),
		3.5,
		"New York",
		"42",
		" padded ",
		"multi\nline",
		map[string]any{},
		[]any{},
		map[string]any{
			"cities": []any{
				map[string]any{"id": int64(1), "name": "Pune", "capital": false},
				map[string]any{"id": int64(2), "name": "Mumbai", "capital": false},
			},
			"meta": map[string]any{"version": int64(3), "tags": []any{"a", "b"}},
			"note": nil,
		},
	} {
		s, err := Marshal(v)
		if err != nil {
			t.Errorf("Marshal(%v): %v", v, err)
			continue
		}
		back, err := Unmarshal(s)
		if err != nil {
			t.Errorf("Unmarshal(%q): %v", s, err)
			continue
		}
		if diff := cmp.Diff(v, back); diff != "" {
			t.Errorf("round trip of %v via %q (-want +got):\n%s", v, s, diff)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	node := ir.Object().
		Field("b", ir.FromInt(2)).
		Field("a", ir.FromInt(1))
	first, err := Encode(node)
	if err != nil {
		t.Fatal(err)
	}
	// insertion order is preserved, not sorted
	if first != "b: 2\na: 1\n" {
		t.Errorf("got %q", first)
	}
	for i := 0; i < 3; i++ {
		again, err := Encode(node)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Errorf("encode not deterministic: %q vs %q", first, again)
		}
	}
}

func TestDecodeFrom(t *testing.T) {
	node, err := DecodeFrom(strings.NewReader("a: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "a"); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("got %+v", node)
	}
}

func TestDecodeErrLine(t *testing.T) {
	_, err := Decode("items[2]{id,name}:\n  1,Pune\n  2\n")
	if !errors.Is(err, parse.ErrFieldCount) {
		t.Fatalf("got %v", err)
	}
	var de *parse.DecodeError
	if !errors.As(err, &de) || de.Line != 3 {
		t.Errorf("got %v", err)
	}
}

func TestPatch(t *testing.T) {
	node, err := Decode("name: Pune\npop: 1\n")
	if err != nil {
		t.Fatal(err)
	}
	patched, err := Patch(node, []byte(`[
		{"op": "replace", "path": "/pop", "value": 3124458},
		{"op": "add", "path": "/state", "value": "MH"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(patched, "pop"); v == nil || v.Int64 == nil || *v.Int64 != 3124458 {
		t.Errorf("pop: %+v", v)
	}
	if v := ir.Get(patched, "state"); v == nil || v.String != "MH" {
		t.Errorf("state: %+v", v)
	}
}

func TestMerge(t *testing.T) {
	node, err := Decode("name: Pune\nmeta:\n  a: 1\n  b: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	mergeDoc, err := Decode("meta:\n  b: null\n  c: 3\n")
	if err != nil {
		t.Fatal(err)
	}
	merged, err := Merge(node, mergeDoc)
	if err != nil {
		t.Fatal(err)
	}
	meta := ir.Get(merged, "meta")
	if meta == nil {
		t.Fatal("no meta")
	}
	if v := ir.Get(meta, "b"); v != nil {
		t.Errorf("b survived merge: %+v", v)
	}
	if v := ir.Get(meta, "c"); v == nil || v.Int64 == nil || *v.Int64 != 3 {
		t.Errorf("c: %+v", v)
	}
}

func TestEncodeOptionsPassThrough(t *testing.T) {
	node := ir.Object().Field("tags", ir.FromSlice([]*ir.Node{
		ir.FromString("a"), ir.FromString("b"),
	}))
	got, err := Encode(node, encode.EncodeInlineScalars(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != "tags[2]: a,b\n" {
		t.Errorf("got %q", got)
	}
}
