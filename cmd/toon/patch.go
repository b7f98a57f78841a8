package main

import (
	"fmt"

	"github.com/deccan-format/toon"
	"github.com/deccan-format/toon/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchArg := args[0]
	for _, arg := range stdinIfEmpty(args[1:]) {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		var res *ir.Node
		if cfg.Merge {
			mergeDoc, err := readDoc(cfg.MainConfig, patchArg)
			if err != nil {
				return err
			}
			res, err = toon.Merge(node, mergeDoc)
			if err != nil {
				return fmt.Errorf("error merging %s into %s: %w", patchArg, arg, err)
			}
		} else {
			// RFC 6902 patches are JSON regardless of the i/o format
			ops, err := readArg(patchArg)
			if err != nil {
				return err
			}
			res, err = toon.Patch(node, ops)
			if err != nil {
				return fmt.Errorf("error patching %s with %s: %w", arg, patchArg, err)
			}
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
