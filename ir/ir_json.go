package ir

import (
	"encoding/json"
	"fmt"
)

// The JSON here is the structural encoding of the ir itself, used by the
// dump/load tooling. For the value-level JSON of a document, see ToJSON and
// FromJSON.

type irBase struct {
	Type   Type    `json:"type"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`

	Float64 *float64 `json:"float,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Float64: y.Float64,
		Int64:   y.Int64,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Values = tmp.Values
	y.Fields = tmp.Fields
	y.Bool = tmp.Bool
	y.String = tmp.String
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("object with %d fields and %d values", len(y.Fields), len(y.Values))
		}
		for i, f := range y.Fields {
			if f.Type != StringType {
				return fmt.Errorf("invalid field type %s", f.Type)
			}
			f.Parent = y
			f.ParentIndex = i
			f.ParentField = f.String
		}
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
			v.ParentField = y.Fields[i].String
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("array with fields")
		}
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
		}
	}
	return nil
}
