package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// ToAny converts a node to the native Go tree representation:
// nil, bool, int64, float64, string, []any and map[string]any.
// Object key order is not representable in a Go map; callers that care about
// order should work with *Node directly.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		return *node.Float64
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts a native Go tree to a node. Map keys are ordered
// lexically, as map iteration order is unspecified.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return FromFloat(float64(x)), nil
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x.String(), err)
		}
		return FromFloat(f), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		res := Object()
		for _, k := range keys {
			y, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Field(k, y)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}
