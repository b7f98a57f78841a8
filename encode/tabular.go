package encode

import "github.com/deccan-format/toon/ir"

// tabularColumns returns the shared key list when arr's elements can be laid
// out as header and rows: at least one element, every element an object with
// the same keys in the same order, and every value a scalar. Any deviation
// returns nil and the array falls back to list form.
func tabularColumns(arr *ir.Node) []string {
	first := arr.Values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return nil
	}
	cols := make([]string, len(first.Fields))
	seen := make(map[string]bool, len(first.Fields))
	for i, f := range first.Fields {
		if seen[f.String] {
			return nil
		}
		seen[f.String] = true
		cols[i] = f.String
	}
	for _, elt := range arr.Values {
		if elt.Type != ir.ObjectType || len(elt.Fields) != len(cols) {
			return nil
		}
		for i, f := range elt.Fields {
			if f.String != cols[i] || !elt.Values[i].Type.IsLeaf() {
				return nil
			}
		}
	}
	return cols
}

func allScalars(arr *ir.Node) bool {
	for _, v := range arr.Values {
		if !v.Type.IsLeaf() {
			return false
		}
	}
	return true
}
