package main

import (
	"encoding/json"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range stdinIfEmpty(args) {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		d, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}
