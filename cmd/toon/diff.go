package main

import (
	"fmt"
	"io"

	"github.com/deccan-format/toon/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	text, err := libdiff.Text(from, to)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	if _, err := io.WriteString(cc.Out, text); err != nil {
		return err
	}
	// non-zero exit on difference, like diff(1)
	return cli.ExitCodeErr(1)
}
