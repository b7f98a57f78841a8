package main

import (
	"encoding/json"
	"fmt"

	"github.com/deccan-format/toon/ir"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		cfg.Load.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range stdinIfEmpty(args) {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		node := &ir.Node{}
		if err := json.Unmarshal(d, node); err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}
