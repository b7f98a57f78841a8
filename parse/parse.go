package parse

import (
	"fmt"
	"strings"

	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/token"
)

// Parse decodes a TOON document into an ir tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	var po parseOpts
	for _, opt := range opts {
		opt(&po)
	}
	lines, err := token.Scan(d)
	if err != nil {
		return nil, err
	}
	p := &parser{opts: &po}
	return p.doc(lines)
}

type parser struct {
	opts *parseOpts
}

// at records the source position of n when the caller asked for positions.
func (p *parser) at(n *ir.Node, ln token.Line) *ir.Node {
	if p.opts.positions != nil {
		p.opts.positions[n] = token.Pos{Line: ln.Num, Col: ln.Depth * token.IndentUnit}
	}
	return n
}

func (p *parser) doc(lines []token.Line) (*ir.Node, error) {
	first := lines[0]
	if first.Content == "-" || strings.HasPrefix(first.Content, token.ItemMarker) {
		return nil, errAt(fmt.Errorf("%w: list item without an array header", ErrStructure), first.Num)
	}
	key, rest, ok, err := token.CutKey(first.Content)
	if err != nil {
		return nil, errAt(err, first.Num)
	}
	if !ok {
		// a scalar document, or the bare empty object
		if len(lines) > 1 {
			return nil, errAt(fmt.Errorf("%w: content after scalar document", ErrStructure), lines[1].Num)
		}
		if first.Content == token.EmptyObject {
			return p.at(ir.Object(), first), nil
		}
		n, err := p.scalar(first.Content, first.Num)
		if err != nil {
			return nil, err
		}
		return p.at(n, first), nil
	}
	if key == "" && first.Content[0] == '[' {
		sub := lines[1:]
		for _, ln := range sub {
			if ln.Depth == 0 {
				return nil, errAt(fmt.Errorf("%w: content after document array", ErrStructure), ln.Num)
			}
		}
		count, cols, inline, err := token.ParseHeader(rest)
		if err != nil {
			return nil, errAt(err, first.Num)
		}
		return p.array(count, cols, inline, sub, 1, first)
	}
	return p.object(lines, 0)
}

// object parses a block of fields whose key lines sit at depth. The caller
// guarantees the block is self-contained: every line is at depth or deeper,
// and the first line is at depth.
func (p *parser) object(ls []token.Line, depth int) (*ir.Node, error) {
	res := p.at(ir.Object(), ls[0])
	seen := map[string]bool{}
	i := 0
	for i < len(ls) {
		ln := ls[i]
		if ln.Depth != depth {
			return nil, errAt(fmt.Errorf("%w: expected depth %d, got %d", token.ErrIndentation, depth, ln.Depth), ln.Num)
		}
		key, rest, ok, err := token.CutKey(ln.Content)
		if err != nil {
			return nil, errAt(err, ln.Num)
		}
		if !ok {
			return nil, errAt(fmt.Errorf("%w: expected a key", ErrStructure), ln.Num)
		}
		if ln.Content[0] == '[' {
			return nil, errAt(fmt.Errorf("%w: array header without a key", ErrStructure), ln.Num)
		}
		if seen[key] {
			return nil, errAt(fmt.Errorf("%w: %q", ErrDuplicateKey, key), ln.Num)
		}
		seen[key] = true
		j := i + 1
		for j < len(ls) && ls[j].Depth > depth {
			j++
		}
		val, err := p.value(key, rest, ln, ls[i+1:j], depth)
		if err != nil {
			return nil, err
		}
		res.Field(key, val)
		i = j
	}
	return res, nil
}

// value parses the right-hand side of one field: an inline scalar, an inline
// empty object, a nested object block, or an array.
func (p *parser) value(key, rest string, ln token.Line, sub []token.Line, depth int) (*ir.Node, error) {
	switch {
	case rest[0] == '[':
		count, cols, inline, err := token.ParseHeader(rest)
		if err != nil {
			return nil, errAt(err, ln.Num)
		}
		return p.array(count, cols, inline, sub, depth+1, ln)
	case rest == ":":
		if len(sub) == 0 {
			return nil, errAt(fmt.Errorf("%w: key %q has no value", ErrStructure, key), ln.Num)
		}
		return p.object(sub, depth+1)
	case strings.HasPrefix(rest, ": ") && len(rest) > 2:
		if len(sub) > 0 {
			return nil, errAt(fmt.Errorf("%w: inline value cannot have children", ErrStructure), sub[0].Num)
		}
		inline := rest[2:]
		if inline == token.EmptyObject {
			return p.at(ir.Object(), ln), nil
		}
		n, err := p.scalar(inline, ln.Num)
		if err != nil {
			return nil, err
		}
		return p.at(n, ln), nil
	default:
		return nil, errAt(fmt.Errorf("%w: expected a value after %q", ErrStructure, key+":"), ln.Num)
	}
}

// array parses an array given its parsed header: inline scalars after the
// colon, tabular rows when cols is set, list items otherwise. depth is where
// element lines must sit; header is the line carrying the [N] declaration.
func (p *parser) array(count int, cols []string, inline string, sub []token.Line, depth int, header token.Line) (*ir.Node, error) {
	if inline != "" {
		if cols != nil {
			return nil, errAt(fmt.Errorf("%w: tabular header with inline values", ErrStructure), header.Num)
		}
		if len(sub) > 0 {
			return nil, errAt(fmt.Errorf("%w: inline array cannot have children", ErrStructure), sub[0].Num)
		}
		cells, err := token.SplitCells(inline)
		if err != nil {
			return nil, errAt(err, header.Num)
		}
		if len(cells) != count {
			return nil, errAt(fmt.Errorf("%w: declared %d, got %d", ErrArrayLength, count, len(cells)), header.Num)
		}
		vals := make([]*ir.Node, len(cells))
		for i, c := range cells {
			v, err := p.scalar(c, header.Num)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return p.at(ir.FromSlice(vals), header), nil
	}
	if count == 0 {
		if len(sub) > 0 {
			return nil, errAt(fmt.Errorf("%w: declared 0, found elements", ErrArrayLength), sub[0].Num)
		}
		return p.at(ir.FromSlice(nil), header), nil
	}
	if len(sub) == 0 {
		return nil, errAt(fmt.Errorf("%w: declared %d, got 0", ErrArrayLength, count), header.Num)
	}
	if cols != nil {
		return p.rows(count, cols, sub, depth, header)
	}
	return p.list(count, sub, depth, header)
}

// rows parses the body of a tabular array: one row of cells per element, all
// values scalar, every row as wide as the header's column list.
func (p *parser) rows(count int, cols []string, sub []token.Line, depth int, header token.Line) (*ir.Node, error) {
	seen := map[string]bool{}
	for _, c := range cols {
		if seen[c] {
			return nil, errAt(fmt.Errorf("%w: column %q", ErrDuplicateKey, c), header.Num)
		}
		seen[c] = true
	}
	vals := make([]*ir.Node, 0, count)
	for _, ln := range sub {
		if ln.Depth != depth {
			return nil, errAt(fmt.Errorf("%w: expected depth %d, got %d", token.ErrIndentation, depth, ln.Depth), ln.Num)
		}
		cells, err := token.SplitCells(ln.Content)
		if err != nil {
			return nil, errAt(err, ln.Num)
		}
		if len(cells) != len(cols) {
			return nil, errAt(fmt.Errorf("%w: row has %d cells, header has %d columns", ErrFieldCount, len(cells), len(cols)), ln.Num)
		}
		obj := ir.Object()
		for i, c := range cells {
			v, err := p.scalar(c, ln.Num)
			if err != nil {
				return nil, err
			}
			obj.Field(cols[i], v)
		}
		vals = append(vals, p.at(obj, ln))
	}
	if len(vals) != count {
		return nil, errAt(fmt.Errorf("%w: declared %d, got %d", ErrArrayLength, count, len(vals)), header.Num)
	}
	return p.at(ir.FromSlice(vals), header), nil
}

// list parses the body of an array in list form, one "- " item per element.
func (p *parser) list(count int, sub []token.Line, depth int, header token.Line) (*ir.Node, error) {
	var vals []*ir.Node
	i := 0
	for i < len(sub) {
		ln := sub[i]
		if ln.Depth != depth {
			return nil, errAt(fmt.Errorf("%w: expected depth %d, got %d", token.ErrIndentation, depth, ln.Depth), ln.Num)
		}
		if !strings.HasPrefix(ln.Content, token.ItemMarker) {
			return nil, errAt(fmt.Errorf("%w: expected a %q item", ErrStructure, token.ItemMarker), ln.Num)
		}
		j := i + 1
		for j < len(sub) && sub[j].Depth > depth {
			j++
		}
		item, err := p.item(ln.Content[len(token.ItemMarker):], ln, sub[i+1:j], depth)
		if err != nil {
			return nil, err
		}
		vals = append(vals, item)
		i = j
	}
	if len(vals) != count {
		return nil, errAt(fmt.Errorf("%w: declared %d, got %d", ErrArrayLength, count, len(vals)), header.Num)
	}
	return p.at(ir.FromSlice(vals), header), nil
}

// item parses one list element. content is the text after the "- " marker on
// line ln; the marker counts as an indentation unit, so the item's own
// children sit one level below the marker's depth.
func (p *parser) item(content string, ln token.Line, sub []token.Line, depth int) (*ir.Node, error) {
	if content == "" {
		return nil, errAt(fmt.Errorf("%w: empty item", ErrStructure), ln.Num)
	}
	if content == token.EmptyObject {
		if len(sub) > 0 {
			return nil, errAt(fmt.Errorf("%w: empty object cannot have children", ErrStructure), sub[0].Num)
		}
		return p.at(ir.Object(), ln), nil
	}
	key, rest, ok, err := token.CutKey(content)
	if err != nil {
		return nil, errAt(err, ln.Num)
	}
	if !ok {
		if len(sub) > 0 {
			return nil, errAt(fmt.Errorf("%w: scalar item cannot have children", ErrStructure), sub[0].Num)
		}
		n, err := p.scalar(content, ln.Num)
		if err != nil {
			return nil, err
		}
		return p.at(n, ln), nil
	}
	if key == "" && content[0] == '[' {
		count, cols, inline, err := token.ParseHeader(rest)
		if err != nil {
			return nil, errAt(err, ln.Num)
		}
		return p.array(count, cols, inline, sub, depth+1, ln)
	}
	// an object element: treat the inline text as its first field line
	block := make([]token.Line, 0, len(sub)+1)
	block = append(block, token.Line{Num: ln.Num, Depth: depth + 1, Content: content})
	block = append(block, sub...)
	return p.object(block, depth+1)
}

// scalar recovers one scalar literal: quoted string, then reserved word,
// then number, then bare string.
func (p *parser) scalar(s string, line int) (*ir.Node, error) {
	if s == "" {
		return nil, errAt(fmt.Errorf("%w: empty cell", token.ErrInvalidLiteral), line)
	}
	if s[0] == token.QuoteChar {
		v, err := token.Unquote(s)
		if err != nil {
			return nil, errAt(err, line)
		}
		return ir.FromString(v), nil
	}
	switch s {
	case token.Null:
		return ir.Null(), nil
	case token.True:
		return ir.FromBool(true), nil
	case token.False:
		return ir.FromBool(false), nil
	}
	if token.IsNumber(s) {
		i, f, isInt, err := token.ParseNumber(s)
		if err != nil {
			return nil, errAt(err, line)
		}
		if isInt {
			return ir.FromInt(i), nil
		}
		return ir.FromFloat(f), nil
	}
	if !token.ValidBare(s) {
		return nil, errAt(fmt.Errorf("%w: %q must be quoted", token.ErrInvalidLiteral, s), line)
	}
	return ir.FromString(s), nil
}
