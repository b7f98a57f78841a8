package main

import (
	"fmt"

	"github.com/deccan-format/toon/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range stdinIfEmpty(args[1:]) {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := eval.Query(node, src)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
