// Package eval runs expressions against decoded documents.
package eval

import (
	"github.com/deccan-format/toon/debug"
	"github.com/deccan-format/toon/ir"

	"github.com/expr-lang/expr"
)

// Query compiles and runs src against node. The whole document is bound as
// "doc"; when the document is an object its top-level fields are bound
// directly as well. The result converts back to a node via ir.FromAny.
func Query(node *ir.Node, src string) (*ir.Node, error) {
	env := map[string]any{"doc": ir.ToAny(node)}
	if node.Type == ir.ObjectType {
		for i, f := range node.Fields {
			if _, ok := env[f.String]; !ok {
				env[f.String] = ir.ToAny(node.Values[i])
			}
		}
	}
	prg, err := expr.Compile(src, exprOpts(node, env)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", src, res)
	}
	return ir.FromAny(res)
}

func exprOpts(node *ir.Node, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := node.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			nodes, err := node.ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				res[i] = ir.ToAny(n)
			}
			return res, nil
		},
			new(func(string) []any)),
	}
}
