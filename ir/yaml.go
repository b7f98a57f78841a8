package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML unmarshals YAML into a node. Decoding uses ordered maps so that
// mapping key order survives the conversion.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLAny(v)
}

func fromYAMLAny(v any) (*Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", item.Key)
			}
			val, err := fromYAMLAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Field(key, val)
		}
		return res, nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			y, err := fromYAMLAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	default:
		return FromAny(v)
	}
}

// ToYAML marshals a node to YAML, preserving object key order via
// yaml.MapSlice.
func ToYAML(node *Node) ([]byte, error) {
	return yaml.Marshal(toYAMLAny(node))
}

func toYAMLAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   f.String,
				Value: toYAMLAny(node.Values[i]),
			}
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAMLAny(v)
		}
		return res
	default:
		return ToAny(node)
	}
}
