package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ToJSON marshals a node to compact JSON, preserving object key order.
// The stock json.Marshal over map[string]any would sort keys, so objects are
// written field by field.
func ToJSON(node *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, node *Node) error {
	switch node.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case NumberType:
		if node.Int64 != nil {
			buf.WriteString(strconv.FormatInt(*node.Int64, 10))
			return nil
		}
		d, err := json.Marshal(*node.Float64)
		if err != nil {
			return fmt.Errorf("at %s: %w", node.Path(), err)
		}
		buf.Write(d)
	case StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		panic("type")
	}
	return nil
}

// FromJSON unmarshals JSON into a node, preserving object key order by
// walking the decoder's token stream rather than round-tripping through
// map[string]any.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return node, nil
}

func jsonValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonValueFrom(dec, tok)
}

func jsonValueFrom(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch x := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromAny(x)
	case json.Delim:
		switch x {
		case '[':
			var vals []*Node
			for dec.More() {
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromSlice(vals), nil
		case '{':
			res := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				res.Field(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", x)
		}
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}
