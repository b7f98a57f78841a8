package main

import (
	"fmt"
	"io"

	"github.com/deccan-format/toon/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	for _, arg := range stdinIfEmpty(args) {
		if err := queryArg(cfg.MainConfig, cc.Out, arg, path, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg(args)
	if err != nil {
		return err
	}
	for _, arg := range stdinIfEmpty(args) {
		if err := queryArg(cfg.MainConfig, cc.Out, arg, path, true); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func pathArg(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return "", nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return path, args[1:], nil
}

func queryArg(cfg *MainConfig, w io.Writer, arg, path string, all bool) error {
	target, err := readDoc(cfg, arg)
	if err != nil {
		return err
	}
	if all {
		res, err := target.ListPath(nil, path)
		if err != nil {
			return err
		}
		return writeDoc(cfg, w, ir.FromSlice(res))
	}
	res, err := target.GetPath(path)
	if err != nil {
		return err
	}
	if res == nil {
		// absent is not an error, just no output
		return nil
	}
	return writeDoc(cfg, w, res)
}
