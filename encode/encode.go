package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/token"
)

// maxEncodeDepth bounds nesting for trees that share no nodes on a path and
// so evade the cycle check.
const maxEncodeDepth = 10000

type EncState struct {
	depth  int
	inline bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as TOON. Output always ends with a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	e := &encoder{w: w, es: es, onPath: map[*ir.Node]bool{}}
	return e.doc(node)
}

type encoder struct {
	w      io.Writer
	es     *EncState
	onPath map[*ir.Node]bool
}

func (e *encoder) doc(node *ir.Node) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrUnsupportedValue)
	}
	depth := e.es.depth
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return e.line(depth, e.color(ir.ObjectType, ValueColor, token.EmptyObject))
		}
		return e.fields(node, depth, false)
	case ir.ArrayType:
		return e.array(node, depth, depth+1, "", "")
	default:
		s, err := e.scalar(node)
		if err != nil {
			return err
		}
		return e.line(depth, s)
	}
}

// fields writes the fields of an object. With marker set the object is a
// list element: its first field shares the "- " line at depth, the remaining
// fields sit one level deeper, as does everything below them.
func (e *encoder) fields(node *ir.Node, depth int, marker bool) error {
	if e.onPath[node] {
		return fmt.Errorf("%w at %s", ErrCyclic, node.Path())
	}
	if depth > maxEncodeDepth {
		return fmt.Errorf("%w at %s", ErrTooDeep, node.Path())
	}
	e.onPath[node] = true
	defer delete(e.onPath, node)

	logical := depth
	if marker {
		logical++
	}
	for i, f := range node.Fields {
		lineDepth, pre := logical, ""
		if marker && i == 0 {
			lineDepth, pre = depth, e.marker()
		}
		if err := e.field(f.String, node.Values[i], lineDepth, logical+1, pre); err != nil {
			return err
		}
	}
	return nil
}

// field writes one key line at lineDepth, nesting any block value at
// childDepth.
func (e *encoder) field(key string, val *ir.Node, lineDepth, childDepth int, pre string) error {
	fk := e.color(ir.ObjectType, FieldColor, token.FormatKey(key))
	sep := e.color(ir.ObjectType, SepColor, ":")
	switch val.Type {
	case ir.ObjectType:
		if len(val.Fields) == 0 {
			return e.line(lineDepth, pre+fk+sep+" "+e.color(ir.ObjectType, ValueColor, token.EmptyObject))
		}
		if err := e.line(lineDepth, pre+fk+sep); err != nil {
			return err
		}
		return e.fields(val, childDepth, false)
	case ir.ArrayType:
		return e.array(val, lineDepth, childDepth, pre, fk)
	default:
		s, err := e.scalar(val)
		if err != nil {
			return err
		}
		return e.line(lineDepth, pre+fk+sep+" "+s)
	}
}

// array writes an array header at lineDepth and its elements at childDepth,
// picking tabular, inline, or list form.
func (e *encoder) array(node *ir.Node, lineDepth, childDepth int, pre, fk string) error {
	if e.onPath[node] {
		return fmt.Errorf("%w at %s", ErrCyclic, node.Path())
	}
	if lineDepth > maxEncodeDepth {
		return fmt.Errorf("%w at %s", ErrTooDeep, node.Path())
	}
	e.onPath[node] = true
	defer delete(e.onPath, node)

	n := len(node.Values)
	if n == 0 {
		return e.line(lineDepth, pre+fk+e.headerSuffix(0, nil))
	}
	delim := e.color(ir.ArrayType, SepColor, string(token.Delim))
	if cols := tabularColumns(node); cols != nil {
		if err := e.line(lineDepth, pre+fk+e.headerSuffix(n, cols)); err != nil {
			return err
		}
		for _, row := range node.Values {
			cells := make([]string, len(row.Values))
			for i, c := range row.Values {
				s, err := e.scalar(c)
				if err != nil {
					return err
				}
				cells[i] = s
			}
			if err := e.line(childDepth, strings.Join(cells, delim)); err != nil {
				return err
			}
		}
		return nil
	}
	if e.es.inline && allScalars(node) {
		cells := make([]string, n)
		for i, v := range node.Values {
			s, err := e.scalar(v)
			if err != nil {
				return err
			}
			cells[i] = s
		}
		return e.line(lineDepth, pre+fk+e.headerSuffix(n, nil)+" "+strings.Join(cells, delim))
	}
	if err := e.line(lineDepth, pre+fk+e.headerSuffix(n, nil)); err != nil {
		return err
	}
	for _, v := range node.Values {
		if err := e.item(v, childDepth); err != nil {
			return err
		}
	}
	return nil
}

// item writes one list element at depth. The "- " marker counts as an
// indentation unit, so nested content lands at depth+1.
func (e *encoder) item(v *ir.Node, depth int) error {
	switch v.Type {
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			return e.line(depth, e.marker()+e.color(ir.ObjectType, ValueColor, token.EmptyObject))
		}
		return e.fields(v, depth, true)
	case ir.ArrayType:
		return e.array(v, depth, depth+1, e.marker(), "")
	default:
		s, err := e.scalar(v)
		if err != nil {
			return err
		}
		return e.line(depth, e.marker()+s)
	}
}

// scalar renders one leaf value.
func (e *encoder) scalar(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.StringType:
		return e.color(ir.StringType, ValueColor, token.FormatString(node.String)), nil
	case ir.NumberType:
		if node.Int64 != nil {
			return e.color(ir.NumberType, ValueColor, token.FormatInt(*node.Int64)), nil
		}
		if node.Float64 != nil {
			f := *node.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return "", fmt.Errorf("%w: %v at %s", ErrUnsupportedValue, f, node.Path())
			}
			return e.color(ir.NumberType, ValueColor, token.FormatFloat(f)), nil
		}
		return "", fmt.Errorf("%w: number without a value at %s", ErrUnsupportedValue, node.Path())
	case ir.BoolType:
		return e.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)), nil
	case ir.NullType:
		return e.color(ir.NullType, ValueColor, token.Null), nil
	default:
		return "", fmt.Errorf("%w: %s at %s", ErrUnsupportedValue, node.Type, node.Path())
	}
}

// headerSuffix renders [N]{c1,c2}: with per-part coloring. Uncolored, the
// result matches what token.ParseHeader accepts.
func (e *encoder) headerSuffix(n int, cols []string) string {
	var sb strings.Builder
	sb.WriteString(e.color(ir.ArrayType, SepColor, "["))
	sb.WriteString(e.color(ir.ArrayType, ValueColor, strconv.Itoa(n)))
	sb.WriteString(e.color(ir.ArrayType, SepColor, "]"))
	if cols != nil {
		sb.WriteString(e.color(ir.ArrayType, SepColor, "{"))
		for i, c := range cols {
			if i > 0 {
				sb.WriteString(e.color(ir.ArrayType, SepColor, string(token.Delim)))
			}
			sb.WriteString(e.color(ir.ObjectType, FieldColor, token.FormatKey(c)))
		}
		sb.WriteString(e.color(ir.ArrayType, SepColor, "}"))
	}
	sb.WriteString(e.color(ir.ObjectType, SepColor, ":"))
	return sb.String()
}

func (e *encoder) marker() string {
	return e.color(ir.ArrayType, SepColor, "-") + " "
}

func (e *encoder) color(t ir.Type, a ColorAttr, s string) string {
	if e.es.Color == nil {
		return s
	}
	return e.es.Color(t, a, s)
}

func (e *encoder) line(depth int, content string) error {
	_, err := io.WriteString(e.w, strings.Repeat(" ", depth*token.IndentUnit)+content+"\n")
	return err
}
