// Package ir provides the intermediate representation for TOON documents.
//
// All TOON documents, whether parsed from text, converted from JSON or YAML,
// or created programmatically, are represented as trees of ir.Node.
//
// A Node is a closed tagged union over the six value kinds of the tree data
// model: null, bool, number, string, object and array. The Type field selects
// the kind; the value lives in the field matching the kind:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: exactly one of Int64 or Float64 (the distinction is
//     preserved through encode/decode round trips)
//   - StringType: String
//   - ObjectType: Fields[i] is the string-typed key for Values[i]; key order
//     is insertion order and is preserved through round trips; keys are unique
//   - ArrayType: Values in order
//
// Nodes carry parent links (Parent, ParentIndex, ParentField) so that a node
// can report its path (see Path) in error messages.
//
// Use the constructors to build nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
package ir
