package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/deccan-format/toon/ir"
	"github.com/deccan-format/toon/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	pos := params.Position
	// positions are recorded with 1-based lines
	line := int(pos.Line) + 1
	col := int(pos.Character)

	targetNode := findNodeAtPosition(doc.node, doc.positions, line, col)
	if targetNode == nil {
		return nil, nil
	}

	hoverText := buildHoverText(targetNode)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func findNodeAtPosition(root *ir.Node, positions map[*ir.Node]token.Pos, line, col int) *ir.Node {
	// the most specific node is the one on the same line closest in column
	var bestNode *ir.Node
	bestDist := -1

	var visit func(*ir.Node)
	visit = func(node *ir.Node) {
		if node == nil {
			return
		}

		if pos, ok := positions[node]; ok && pos.Line == line {
			d := abs(pos.Col - col)
			if bestDist < 0 || d < bestDist {
				bestNode = node
				bestDist = d
			}
		}

		for _, child := range node.Values {
			visit(child)
		}
		for _, field := range node.Fields {
			visit(field)
		}
	}

	visit(root)
	return bestNode
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func buildHoverText(node *ir.Node) string {
	if node == nil {
		return ""
	}

	var parts []string

	typeInfo := getTypeInfo(node)
	if typeInfo != "" {
		parts = append(parts, fmt.Sprintf("**Type:** %s", typeInfo))
	}

	if path := node.Path(); path != "" {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))
	}

	valueInfo := getValueInfo(node)
	if valueInfo != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", valueInfo))
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "\n\n")
}

func getTypeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.NumberType:
		if node.Int64 != nil {
			return "integer"
		}
		return "float"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return "array"
	case ir.ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

func getValueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "`null`"
	case ir.BoolType:
		if node.Bool {
			return "`true`"
		}
		return "`false`"
	case ir.NumberType:
		if node.Int64 != nil {
			return fmt.Sprintf("`%d`", *node.Int64)
		}
		if node.Float64 != nil {
			return fmt.Sprintf("`%g`", *node.Float64)
		}
	case ir.StringType:
		if node.String != "" {
			val := node.String
			if len(val) > 50 {
				val = val[:50] + "..."
			}
			return fmt.Sprintf("`%s`", val)
		}
	case ir.ArrayType:
		if cols := tabularHeader(node); cols != "" {
			return fmt.Sprintf("tabular array `%s`", cols)
		}
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Fields))
	}
	return ""
}

// tabularHeader reports the header suffix an array would render with,
// or "" when the array is not eligible for tabular form.
func tabularHeader(node *ir.Node) string {
	if len(node.Values) == 0 {
		return ""
	}
	first := node.Values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return ""
	}
	cols := make([]string, 0, len(first.Fields))
	for _, f := range first.Fields {
		cols = append(cols, f.String)
	}
	for _, elem := range node.Values {
		if elem.Type != ir.ObjectType || len(elem.Fields) != len(cols) {
			return ""
		}
		for i, f := range elem.Fields {
			if f.String != cols[i] {
				return ""
			}
			if !elem.Values[i].Type.IsLeaf() {
				return ""
			}
		}
	}
	return token.HeaderSuffix(len(node.Values), cols)
}
