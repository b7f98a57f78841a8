// Package toon implements TOON (Token-Oriented Object Notation), an
// indentation-based text format for JSON-shaped data. Uniform arrays of flat
// objects render as a header and rows, one line per element:
//
//	items[2]{id,name}:
//	  1,Pune
//	  2,Mumbai
//
// The package provides string-level Encode/Decode over ir trees, and
// Marshal/Unmarshal over native Go values. Lower-level control lives in the
// encode and parse packages.
package toon

import (
	"bytes"
	"io"

	"github.com/deccan-format/toon/debug"
	"github.com/deccan-format/toon/encode"
	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/parse"
)

// Encode renders node as TOON text. Output is deterministic and ends with a
// newline.
func Encode(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	if debug.Codec() {
		debug.Logf("encoded %d bytes\n", buf.Len())
	}
	return buf.String(), nil
}

// EncodeTo writes node to w as TOON.
func EncodeTo(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// Decode parses one TOON document.
func Decode(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	node, err := parse.Parse([]byte(s), opts...)
	if err != nil {
		return nil, err
	}
	if debug.Codec() {
		debug.Logf("decoded:\n%v", node)
	}
	return node, nil
}

// DecodeFrom reads r to the end and decodes it.
func DecodeFrom(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Marshal converts a native Go value (nil, bool, numbers, string, []any,
// map[string]any) to TOON. Map keys are ordered lexically.
func Marshal(v any, opts ...encode.EncodeOption) (string, error) {
	node, err := ir.FromAny(v)
	if err != nil {
		return "", err
	}
	return Encode(node, opts...)
}

// Unmarshal decodes TOON into native Go values, losing object key order.
func Unmarshal(s string) (any, error) {
	node, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return ir.ToAny(node), nil
}
