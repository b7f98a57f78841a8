package parse

import (
	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/token"
)

type parseOpts struct {
	positions map[*ir.Node]token.Pos
}

type ParseOption func(o *parseOpts)

// Positions asks the parser to record, for every node defined by a line of
// input, the position of that line in m. Used by tooling that maps source
// locations back to nodes.
func Positions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
